package image

import (
	"errors"
	"github.com/esimov/colorquant"
	"github.com/mmuldo/colorcheck/ciede2000"
	"github.com/nfnt/resize"
	"image"
	"image/color"
	"log/slog"
	"math"
	"sort"
)

// MaxSampleSize is the width and height above which patch images are scaled
// down before quantization.
var MaxSampleSize uint = 64

// ErrEmpty is returned for images without a single opaque pixel.
var ErrEmpty = errors.New("image has no opaque pixels")

type ColorCount struct {
	Color ciede2000.RGB
	Count int
}

type ColorCountList []ColorCount

func (ccl ColorCountList) Len() int { return len(ccl) }
func (ccl ColorCountList) Less(i, j int) bool {
	if ccl[i].Count != ccl[j].Count {
		return ccl[i].Count > ccl[j].Count
	}
	return lessRGB(ccl[i].Color, ccl[j].Color)
}
func (ccl ColorCountList) Swap(i, j int) { ccl[i], ccl[j] = ccl[j], ccl[i] }

// GetColors returns a map of an image's opaque colors
// and the number of times each color occurs
func GetColors(img image.Image) map[ciede2000.RGB]int {
	m := make(map[ciede2000.RGB]int)

	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			c := img.At(x, y)
			if _, _, _, a := c.RGBA(); a != 0 {
				m[ciede2000.FromColor(c)]++
			}
		}
	}

	return m
}

// RankColors orders colors by prevalence, most frequent first.
func RankColors(m map[ciede2000.RGB]int) ColorCountList {
	cc := make(ColorCountList, len(m))

	i := 0
	for k, v := range m {
		cc[i] = ColorCount{k, v}
		i++
	}

	sort.Sort(cc)
	return cc
}

// Dominant reduces a patch image to the most prevalent of `levels` quantized
// colors. Large images are scaled down to MaxSampleSize first.
func Dominant(img image.Image, levels int) (ciede2000.RGB, error) {
	if levels < 1 {
		levels = 1
	}

	b := img.Bounds()
	if uint(b.Dx()) > MaxSampleSize || uint(b.Dy()) > MaxSampleSize {
		slog.Debug("scaling patch", "width", b.Dx(), "height", b.Dy(), "to", MaxSampleSize)
		if b.Dx() >= b.Dy() {
			img = resize.Resize(MaxSampleSize, 0, img, resize.Bilinear)
		} else {
			img = resize.Resize(0, MaxSampleSize, img, resize.Bilinear)
		}
		b = img.Bounds()
	}

	ranked := RankColors(GetColors(img))
	if len(ranked) == 0 {
		return ciede2000.RGB{}, ErrEmpty
	}
	if len(ranked) <= levels {
		return ranked[0].Color, nil
	}

	// quantize image
	o := image.NewNRGBA(image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y))
	colorquant.NoDither.Quantize(img, o, levels, false, true)

	// keep transparency of the source
	for x := b.Min.X; x < b.Max.X; x++ {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			if _, _, _, a := img.At(x, y).RGBA(); a == 0 {
				o.Set(x, y, color.Transparent)
			}
		}
	}

	ranked = RankColors(GetColors(o))
	if len(ranked) == 0 {
		return ciede2000.RGB{}, ErrEmpty
	}
	slog.Debug("dominant color", "rgb", ranked[0].Color, "count", ranked[0].Count, "distinct", len(ranked))

	return ranked[0].Color, nil
}

// Mean averages every opaque pixel channel by channel.
func Mean(img image.Image) (ciede2000.RGB, error) {
	var r, g, bl float64
	n := 0

	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			c := img.At(x, y)
			if _, _, _, a := c.RGBA(); a == 0 {
				continue
			}
			rgb := ciede2000.FromColor(c)
			r += float64(rgb[0])
			g += float64(rgb[1])
			bl += float64(rgb[2])
			n++
		}
	}
	if n == 0 {
		return ciede2000.RGB{}, ErrEmpty
	}

	return ciede2000.RGB{
		uint8(math.Round(r / float64(n))),
		uint8(math.Round(g / float64(n))),
		uint8(math.Round(bl / float64(n))),
	}, nil
}

// Intensity is the mean gray level of the image in [0, 255].
func Intensity(img image.Image) (float64, error) {
	b := img.Bounds()
	if b.Empty() {
		return 0, ErrEmpty
	}

	total := 0.0
	for x := b.Min.X; x < b.Max.X; x++ {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			total += float64(color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y)
		}
	}

	return total / float64(b.Dx()*b.Dy()), nil
}

func lessRGB(a, b ciede2000.RGB) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
