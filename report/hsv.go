package report

import (
	"fmt"
	"github.com/mmuldo/colorcheck/ciede2000"
	"math"
)

// HSV is a display-only hue/saturation/value triple: H in degrees [0, 360),
// S and V in percent.
type HSV struct {
	H, S, V float64
}

func (c HSV) String() string {
	return fmt.Sprintf("%.1f°, %.1f%%, %.1f%%", c.H, c.S, c.V)
}

// ToHSV converts an 8-bit RGB triple.
func ToHSV(rgb ciede2000.RGB) HSV {
	r := float64(rgb[0]) / 255
	g := float64(rgb[1]) / 255
	b := float64(rgb[2]) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	d := max - min

	var h float64
	switch {
	case d == 0:
		h = 0
	case max == r:
		h = 60 * math.Mod((g-b)/d, 6)
	case max == g:
		h = 60 * ((b-r)/d + 2)
	default:
		h = 60 * ((r-g)/d + 4)
	}
	if h < 0 {
		h += 360
	}

	var s float64
	if max > 0 {
		s = d / max
	}

	return HSV{H: h, S: s * 100, V: max * 100}
}
