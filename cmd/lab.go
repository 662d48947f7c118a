package cmd

import (
	"fmt"
	"github.com/mmuldo/colorcheck/ciede2000"
	"github.com/spf13/cobra"
	"strconv"
)

// labCmd represents the lab command
var labCmd = &cobra.Command{
	Use:   "lab R G B",
	Short: "Converts an 8-bit sRGB color to CIE Lab",
	Long: `Converts an 8-bit sRGB color to CIE Lab under a D65 white point.
Each component is rounded to four decimal places.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		channels, e := parseInts(args)
		if e != nil {
			return e
		}

		lab, e := ciede2000.ChannelsToLab(channels)
		if e != nil {
			return e
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%.4f %.4f %.4f\n", lab.L, lab.A, lab.B)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(labCmd)
}

func parseInts(args []string) ([]int, error) {
	vs := make([]int, len(args))
	for i, a := range args {
		v, e := strconv.Atoi(a)
		if e != nil {
			return nil, fmt.Errorf("%q is not an integer", a)
		}
		vs[i] = v
	}
	return vs, nil
}

func parseRGB(args []string) (ciede2000.RGB, error) {
	var c ciede2000.RGB

	vs, e := parseInts(args)
	if e != nil {
		return c, e
	}
	if len(vs) != 3 {
		return c, fmt.Errorf("%w: want 3 channels, got %d", ciede2000.ErrInvalidInput, len(vs))
	}
	for i, v := range vs {
		if v < 0 || v > 255 {
			return c, fmt.Errorf("%w: channel %d out of range: %d", ciede2000.ErrInvalidInput, i, v)
		}
		c[i] = uint8(v)
	}

	return c, nil
}

func parseFloats(args []string) ([]float64, error) {
	vs := make([]float64, len(args))
	for i, a := range args {
		v, e := strconv.ParseFloat(a, 64)
		if e != nil {
			return nil, fmt.Errorf("%q is not a number", a)
		}
		vs[i] = v
	}
	return vs, nil
}
