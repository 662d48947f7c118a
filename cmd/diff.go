package cmd

import (
	"fmt"
	"github.com/mmuldo/colorcheck/ciede2000"
	"github.com/mmuldo/colorcheck/palette"
	"github.com/mmuldo/colorcheck/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var diffRGB bool

// diffCmd represents the diff command
var diffCmd = &cobra.Command{
	Use:   "diff L1 a1 b1 L2 a2 b2",
	Short: "Prints the CIEDE2000 difference between two colors",
	Long: `Prints the CIEDE2000 difference between a reference and a sample color,
followed by PASS when it is below the configured threshold and FAIL otherwise.
With --rgb both colors are given as 8-bit sRGB triples.`,
	Args: cobra.ExactArgs(6),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, e := palette.EngineByName(viper.GetString("engine"))
		if e != nil {
			return e
		}

		var ref, sample ciede2000.Lab
		if diffRGB {
			r, e := parseRGB(args[:3])
			if e != nil {
				return e
			}
			smp, e := parseRGB(args[3:])
			if e != nil {
				return e
			}
			ref, sample = engine.Lab(r), engine.Lab(smp)
		} else {
			vs, e := parseFloats(args)
			if e != nil {
				return e
			}
			ref = ciede2000.Lab{L: vs[0], A: vs[1], B: vs[2]}
			sample = ciede2000.Lab{L: vs[3], A: vs[4], B: vs[5]}
		}

		delta := engine.Difference(ref, sample)
		fmt.Fprintf(cmd.OutOrStdout(), "%.4f %s\n", delta, report.Verdict(delta < viper.GetFloat64("threshold")))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)

	diffCmd.Flags().BoolVar(&diffRGB, "rgb", false, "colors are R G B triples")
	// negative a and b values are arguments, not flags
	diffCmd.Flags().SetInterspersed(false)
}
