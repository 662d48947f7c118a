package report

import (
	_ "embed"
	"fmt"
	"github.com/flosch/pongo2"
	"github.com/mitchellh/go-homedir"
	"io"
)

//go:embed templates/report.md
var defaultTemplate string

// Render executes the pongo2 template at templatePath against r and writes
// the result to w. The built-in Markdown template is used when templatePath
// is empty.
func Render(w io.Writer, r *Report, templatePath string) error {
	var (
		tpl *pongo2.Template
		e   error
	)
	if templatePath == "" {
		tpl, e = pongo2.FromString(defaultTemplate)
	} else {
		var path string
		path, e = homedir.Expand(templatePath)
		if e != nil {
			return e
		}
		tpl, e = pongo2.FromFile(path)
	}
	if e != nil {
		return fmt.Errorf("loading template: %w", e)
	}

	o, e := tpl.Execute(templateContext(r))
	if e != nil {
		return fmt.Errorf("rendering report: %w", e)
	}

	_, e = io.WriteString(w, o)
	return e
}

// templateContext flattens r into preformatted strings so templates need no filters.
func templateContext(r *Report) pongo2.Context {
	rows := make([]map[string]interface{}, len(r.Results))
	for i, res := range r.Results {
		rows[i] = row(res)
	}

	worst := r.Worst(5)
	worstRows := make([]map[string]interface{}, len(worst))
	for i, res := range worst {
		worstRows[i] = row(res)
	}

	ctxt := pongo2.Context{
		"title":        r.Title,
		"card":         r.Card,
		"engine":       r.Engine,
		"generated":    r.Generated.Format("Monday, 02 January 2006 15:04:05"),
		"threshold":    fmt.Sprintf("%.2f", r.Threshold),
		"color_status": Verdict(r.ColorPass),
		"status":       Verdict(r.Pass()),
		"rows":         rows,
		"worst":        worstRows,
		"extra":        r.Extra,
	}

	if r.Intensity != nil {
		ctxt["intensity"] = map[string]interface{}{
			"value":  fmt.Sprintf("%.2f", r.Intensity.Value),
			"min":    fmt.Sprintf("%.2f", r.Intensity.Min),
			"max":    fmt.Sprintf("%.2f", r.Intensity.Max),
			"status": Verdict(r.Intensity.Pass()),
		}
	}

	return ctxt
}

func row(res PatchResult) map[string]interface{} {
	return map[string]interface{}{
		"name":          res.Name,
		"sample":        res.Sample.String(),
		"reference":     res.Reference.String(),
		"sample_lab":    res.SampleLab.String(),
		"reference_lab": res.ReferenceLab.String(),
		"sample_hsv":    res.SampleHSV.String(),
		"reference_hsv": res.ReferenceHSV.String(),
		"delta":         fmt.Sprintf("%.2f", res.CappedDelta),
		"status":        Verdict(res.Pass),
		"placeholder":   res.Placeholder,
	}
}
