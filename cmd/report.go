package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/mitchellh/go-homedir"
	"github.com/mmuldo/colorcheck/image"
	"github.com/mmuldo/colorcheck/palette"
	"github.com/mmuldo/colorcheck/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"io"
	"log/slog"
	"os"
)

var (
	samplesPath    string
	intensityImage string
	templatePath   string
	outPath        string
	title          string
	strict         bool
)

// errFailed is returned by --strict runs whose report does not pass.
var errFailed = errors.New("calibration failed")

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Compares sampled patch colors against a color card",
	Long: `Compares the sampled patch colors in --samples (JSON as printed by
"colorcheck sample") against the reference colors of the configured card and
renders a PASS/FAIL report. Patches without a sample are measured as black.

The report is rendered with the built-in Markdown template unless --template
names a pongo2 template.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		setDefaults()

		card, e := palette.Lookup(viper.GetString("card"))
		if e != nil {
			return e
		}
		engine, e := palette.EngineByName(viper.GetString("engine"))
		if e != nil {
			return e
		}

		samples, e := readSamples(samplesPath)
		if e != nil {
			return e
		}

		cfg := report.Config{
			Threshold: viper.GetFloat64("threshold"),
			Cap:       viper.GetFloat64("cap"),
		}
		results := report.Compare(card, samples, engine, cfg)

		opts := map[string]interface{}{
			"title":     title,
			"engine":    engine.Name(),
			"threshold": cfg.Threshold,
		}
		if intensityImage != "" {
			check, e := measureIntensity(intensityImage)
			if e != nil {
				// the report is still useful without it
				slog.Error("intensity check skipped", "path", intensityImage, "err", e)
			} else {
				opts["intensity"] = check
			}
		}

		r, e := report.Create(card, results, opts)
		if e != nil {
			return e
		}

		var w io.Writer = cmd.OutOrStdout()
		if outPath != "" {
			path, e := homedir.Expand(outPath)
			if e != nil {
				return e
			}
			f, e := os.Create(path)
			if e != nil {
				return e
			}
			defer f.Close()
			w = f
		}

		if e := report.Render(w, r, templatePath); e != nil {
			return e
		}
		slog.Info("report generated", "card", card.Name, "pass", r.Pass(), "failed", len(r.Worst(-1)))

		if strict && !r.Pass() {
			return errFailed
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&samplesPath, "samples", "s", "", "JSON file of sampled patch colors")
	reportCmd.Flags().StringVar(&intensityImage, "intensity-image", "", "capture to check the light intensity of")
	reportCmd.Flags().StringVarP(&templatePath, "template", "t", "", "pongo2 template (default built-in Markdown)")
	reportCmd.Flags().StringVarP(&outPath, "out", "o", "", "write the report here instead of stdout")
	reportCmd.Flags().StringVar(&title, "title", "", "report title")
	reportCmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when the report fails")
	reportCmd.MarkFlagRequired("samples")
}

func setDefaults() {
	if templatePath == "" {
		templatePath = viper.GetString("template")
	}

	if title == "" {
		title = viper.GetString("title")
	}
}

func readSamples(path string) ([]report.Sample, error) {
	path, e := homedir.Expand(path)
	if e != nil {
		return nil, e
	}
	f, e := os.ReadFile(path)
	if e != nil {
		return nil, e
	}

	var samples []report.Sample
	if e := json.Unmarshal(f, &samples); e != nil {
		return nil, fmt.Errorf("reading samples from %s: %w", path, e)
	}
	return samples, nil
}

func measureIntensity(path string) (report.IntensityCheck, error) {
	check := report.IntensityCheck{
		Min: viper.GetFloat64("intensity.min"),
		Max: viper.GetFloat64("intensity.max"),
	}

	path, e := homedir.Expand(path)
	if e != nil {
		return check, e
	}
	img, e := image.Load(path)
	if e != nil {
		return check, e
	}
	check.Value, e = image.Intensity(img)
	return check, e
}
