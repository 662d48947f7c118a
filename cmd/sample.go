package cmd

import (
	"encoding/json"
	"fmt"
	"github.com/mitchellh/go-homedir"
	"github.com/mmuldo/colorcheck/ciede2000"
	"github.com/mmuldo/colorcheck/image"
	"github.com/mmuldo/colorcheck/report"
	"github.com/spf13/cobra"
	"log/slog"
	"strings"
)

var (
	sampleLevels int
	sampleMean   bool
)

// sampleCmd represents the sample command
var sampleCmd = &cobra.Command{
	Use:   "sample NAME=PATH...",
	Short: "Measures patch colors from cropped patch images",
	Long: `Measures the color of each cropped patch image and prints the samples as
JSON, ready to be passed to "colorcheck report --samples". NAME is the patch
name on the color card, for example "Light Grey=grey.tif".

By default a patch is reduced to its dominant quantized color; --mean uses
the average of all pixels instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		samples := make([]report.Sample, 0, len(args))

		for _, arg := range args {
			i := strings.LastIndex(arg, "=")
			if i <= 0 || i == len(arg)-1 {
				return fmt.Errorf("%q is not NAME=PATH", arg)
			}
			name, path := arg[:i], arg[i+1:]

			path, e := homedir.Expand(path)
			if e != nil {
				return e
			}
			img, e := image.Load(path)
			if e != nil {
				return e
			}

			var rgb ciede2000.RGB
			if sampleMean {
				rgb, e = image.Mean(img)
			} else {
				rgb, e = image.Dominant(img, sampleLevels)
			}
			if e != nil {
				return fmt.Errorf("%s: %w", path, e)
			}

			slog.Info("sampled patch", "patch", name, "path", path, "rgb", rgb)
			samples = append(samples, report.Sample{Name: name, RGB: rgb})
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(samples)
	},
}

func init() {
	rootCmd.AddCommand(sampleCmd)

	sampleCmd.Flags().IntVarP(&sampleLevels, "levels", "n", 8, "number of colors to quantize a patch to")
	sampleCmd.Flags().BoolVar(&sampleMean, "mean", false, "average the patch instead of taking its dominant color")
}
