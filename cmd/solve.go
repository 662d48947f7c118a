package cmd

import (
	"fmt"
	"github.com/mmuldo/colorcheck/ciede2000"
	"github.com/spf13/cobra"
	"math"
)

var (
	solveDifference float64
	solveAngle      float64
	solveRadians    bool
)

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:   "solve [flags] L a b",
	Short: "Finds the color at a given difference from a reference",
	Long: `Finds how far the reference color has to be moved in the a-b plane,
along the hue direction given by --angle, for its CIEDE2000 difference to
equal --difference. Prints the radius and the a and b coordinates of the
resulting color.

Flags must precede the color so that negative components are not read as
flags.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		vs, e := parseFloats(args)
		if e != nil {
			return e
		}

		angle := solveAngle
		if !solveRadians {
			angle = angle * math.Pi / 180
		}

		ref := ciede2000.NewReference(ciede2000.Lab{L: vs[0], A: vs[1], B: vs[2]})
		radius, e := ref.ColorWithDifference(solveDifference, angle)
		if e != nil {
			return e
		}
		p := ref.PointAt(radius, angle)

		fmt.Fprintf(cmd.OutOrStdout(), "radius=%.4f L=%.4f a=%.4f b=%.4f\n", radius, p.L, p.A, p.B)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().Float64VarP(&solveDifference, "difference", "d", 1.0, "target ΔE00")
	solveCmd.Flags().Float64VarP(&solveAngle, "angle", "a", 0, "hue direction, degrees unless --radians")
	solveCmd.Flags().BoolVar(&solveRadians, "radians", false, "angle is in radians")
	solveCmd.Flags().SetInterspersed(false)
}
