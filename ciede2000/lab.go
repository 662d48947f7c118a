package ciede2000

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// Precision is the number of decimal places Lab values are rounded to by the
// converter.
const Precision = 4

// RGB is an 8-bit sRGB triple.
type RGB [3]uint8

// R returns the red channel.
func (c RGB) R() uint8 { return c[0] }

// G returns the green channel.
func (c RGB) G() uint8 { return c[1] }

// B returns the blue channel.
func (c RGB) B() uint8 { return c[2] }

func (c RGB) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c[0], c[1], c[2])
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{c[0], c[1], c[2], 0xff}.RGBA()
}

// Lab is a CIE L*a*b* color.
type Lab struct {
	L, A, B float64
}

func (c Lab) String() string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", c.L, c.A, c.B)
}

// Chroma is sqrt(a² + b²).
func (c Lab) Chroma() float64 {
	return math.Hypot(c.A, c.B)
}

// Hue is atan2(b, a) in [0, 2π).
func (c Lab) Hue() float64 {
	return NormalizeAngle(math.Atan2(c.B, c.A))
}

var (
	// linear sRGB -> XYZ
	srgbToXYZ = mat.NewDense(3, 3, []float64{
		0.4124, 0.3576, 0.1805,
		0.2126, 0.7152, 0.0722,
		0.0193, 0.1192, 0.9505,
	})

	// D65 reference white
	whiteD65 = [3]float64{95.047, 100.0, 108.883}
)

// RGBToLab converts an 8-bit sRGB triple to Lab under a D65 white point. Each
// component of the result is rounded to Precision decimal places.
func RGBToLab(c RGB) Lab {
	linear := mat.NewVecDense(3, []float64{
		linearize(c[0]),
		linearize(c[1]),
		linearize(c[2]),
	})

	var xyz mat.VecDense
	xyz.MulVec(srgbToXYZ, linear)

	x := compress(xyz.AtVec(0) / whiteD65[0])
	y := compress(xyz.AtVec(1) / whiteD65[1])
	z := compress(xyz.AtVec(2) / whiteD65[2])

	return Lab{
		L: scalar.RoundEven(116*y-16, Precision),
		A: scalar.RoundEven(500*(x-y), Precision),
		B: scalar.RoundEven(200*(y-z), Precision),
	}
}

// ChannelsToLab is RGBToLab for callers holding a dynamically sized channel
// list. It fails with ErrInvalidInput unless given exactly three channels in
// [0, 255].
func ChannelsToLab(channels []int) (Lab, error) {
	if len(channels) != 3 {
		return Lab{}, fmt.Errorf("%w: want 3 channels, got %d", ErrInvalidInput, len(channels))
	}

	var c RGB
	for i, v := range channels {
		if v < 0 || v > 255 {
			return Lab{}, fmt.Errorf("%w: channel %d out of range: %d", ErrInvalidInput, i, v)
		}
		c[i] = uint8(v)
	}

	return RGBToLab(c), nil
}

// ColorToLab converts any color.Color, ignoring alpha.
func ColorToLab(c color.Color) Lab {
	return RGBToLab(FromColor(c))
}

// FromColor truncates a color.Color to an 8-bit RGB triple.
func FromColor(c color.Color) RGB {
	if rgb, ok := c.(RGB); ok {
		return rgb
	}
	r, g, b, _ := c.RGBA()
	return RGB{byte(r >> 8), byte(g >> 8), byte(b >> 8)}
}

// linearize applies the inverse sRGB companding and scales to [0, 100].
func linearize(channel uint8) float64 {
	v := float64(channel) / 255.0
	if v > 0.04045 {
		v = math.Pow((v+0.055)/1.055, 2.4)
	} else {
		v = v / 12.92
	}
	return v * 100.0
}

func compress(v float64) float64 {
	if v > 0.008856 {
		return math.Cbrt(v)
	}
	return 7.787*v + 16.0/116.0
}
