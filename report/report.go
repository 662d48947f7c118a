package report

import (
	"fmt"
	"github.com/mmuldo/colorcheck/ciede2000"
	"github.com/mmuldo/colorcheck/palette"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"
)

const (
	// DefaultThreshold is the largest ΔE00 that still fails; a patch passes
	// when its difference is strictly below it. Printing processes commonly
	// accept up to 5.
	DefaultThreshold = 5.0

	// DefaultCap bounds the difference shown for a patch.
	DefaultCap = 100.0

	// DefaultTitle is used when no title option is given.
	DefaultTitle = "Camera Calibration Report"
)

// Config controls how samples are judged.
type Config struct {
	Threshold float64
	Cap       float64
}

// DefaultConfig judges with DefaultThreshold and DefaultCap.
var DefaultConfig = Config{Threshold: DefaultThreshold, Cap: DefaultCap}

// Sample is a color measured off one patch of a card.
type Sample struct {
	Name string        `json:"name"`
	RGB  ciede2000.RGB `json:"rgb"`
}

// PatchResult is the comparison of one patch against its reference.
type PatchResult struct {
	Name         string
	Sample       ciede2000.RGB
	Reference    ciede2000.RGB
	SampleLab    ciede2000.Lab
	ReferenceLab ciede2000.Lab
	SampleHSV    HSV
	ReferenceHSV HSV
	Delta        float64
	CappedDelta  float64
	Pass         bool

	// Placeholder is set when no sample was supplied for the patch and black
	// was measured in its place.
	Placeholder bool
}

// Report is a color balance report.
type Report struct {
	Title     string
	Card      string
	Engine    string
	Threshold float64
	Generated time.Time
	Results   []PatchResult
	ColorPass bool
	Intensity *IntensityCheck

	// Extra holds options Create does not know about; templates may use them.
	Extra map[string]interface{}
}

// IntensityCheck is the mean light intensity of a capture and the range it
// has to fall in.
type IntensityCheck struct {
	Value    float64
	Min, Max float64
}

// Pass reports whether the intensity lies within [Min, Max].
func (c IntensityCheck) Pass() bool {
	return c.Value >= c.Min && c.Value <= c.Max
}

// Verdict renders a pass/fail decision.
func Verdict(pass bool) string {
	if pass {
		return "PASS"
	}
	return "FAIL"
}

type byDelta []PatchResult

func (rs byDelta) Len() int           { return len(rs) }
func (rs byDelta) Less(i, j int) bool { return rs[i].Delta > rs[j].Delta }
func (rs byDelta) Swap(i, j int)      { rs[i], rs[j] = rs[j], rs[i] }

//**exported functions**//
// Compare measures every patch of card against the matching sample. Patches
// without a sample are measured against black and flagged as placeholders;
// samples that name no patch of the card are ignored.
func Compare(card *palette.Card, samples []Sample, engine palette.Engine, cfg Config) []PatchResult {
	if engine == nil {
		engine = palette.Native
	}

	byName := make(map[string]ciede2000.RGB, len(samples))
	for _, s := range samples {
		if _, ok := card.Reference(s.Name); !ok {
			slog.Warn("sample does not match any patch", "sample", s.Name, "card", card.Name)
			continue
		}
		byName[strings.ToLower(s.Name)] = s.RGB
	}

	results := make([]PatchResult, 0, len(card.Patches))
	for _, p := range card.Patches {
		sample, ok := byName[strings.ToLower(p.Name)]
		if !ok {
			slog.Warn("no sample for patch, using placeholder", "patch", p.Name)
		}

		sLab := engine.Lab(sample)
		rLab := engine.Lab(p.RGB)
		delta := engine.Difference(sLab, rLab)

		results = append(results, PatchResult{
			Name:         p.Name,
			Sample:       sample,
			Reference:    p.RGB,
			SampleLab:    sLab,
			ReferenceLab: rLab,
			SampleHSV:    ToHSV(sample),
			ReferenceHSV: ToHSV(p.RGB),
			Delta:        delta,
			CappedDelta:  math.Min(delta, cfg.Cap),
			Pass:         delta < cfg.Threshold,
			Placeholder:  !ok,
		})
		slog.Debug("patch compared", "patch", p.Name, "sample", sample, "reference", p.RGB, "delta", delta)
	}

	return results
}

// Create creates a report from compared patches and options. Recognized
// options are "title" (string), "engine" (string), "threshold" (float64),
// "generated" (time.Time) and "intensity" (IntensityCheck); everything else is
// kept in Extra.
func Create(card *palette.Card, results []PatchResult, opts map[string]interface{}) (*Report, error) {
	r := &Report{
		Card:      card.Name,
		Results:   results,
		ColorPass: true,
		Extra:     make(map[string]interface{}),
	}
	for _, res := range results {
		if !res.Pass {
			r.ColorPass = false
		}
	}

	for k, v := range opts {
		var ok bool
		switch k {
		case "title":
			r.Title, ok = v.(string)
		case "engine":
			r.Engine, ok = v.(string)
		case "threshold":
			r.Threshold, ok = v.(float64)
		case "generated":
			r.Generated, ok = v.(time.Time)
		case "intensity":
			var c IntensityCheck
			c, ok = v.(IntensityCheck)
			r.Intensity = &c
		default:
			r.Extra[k], ok = v, true
		}
		if !ok {
			return nil, fmt.Errorf("option %q: unexpected type %T", k, v)
		}
	}

	setDefaults(r)

	return r, nil
}

// Pass is the overall verdict: every patch and, if measured, the intensity.
func (r *Report) Pass() bool {
	if r.Intensity != nil && !r.Intensity.Pass() {
		return false
	}
	return r.ColorPass
}

// Worst returns up to n failing patches, largest difference first.
func (r *Report) Worst(n int) []PatchResult {
	failed := make([]PatchResult, 0)
	for _, res := range r.Results {
		if !res.Pass {
			failed = append(failed, res)
		}
	}
	sort.Stable(byDelta(failed))
	if n >= 0 && len(failed) > n {
		failed = failed[:n]
	}
	return failed
}

//**helper functions**//
func setDefaults(r *Report) {
	if r.Title == "" {
		r.Title = DefaultTitle
	}

	if r.Engine == "" {
		r.Engine = palette.Native.Name()
	}

	if r.Threshold == 0 {
		r.Threshold = DefaultThreshold
	}

	if r.Generated.IsZero() {
		r.Generated = time.Now()
	}
}
