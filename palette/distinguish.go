package palette

import (
	"fmt"
	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"
	"github.com/mmuldo/colorcheck/ciede2000"
	"strings"
)

// Engine converts colors to Lab and measures how distinguishable two of them
// are.
type Engine interface {
	Lab(rgb ciede2000.RGB) ciede2000.Lab
	Difference(ref, sample ciede2000.Lab) float64
	Name() string
}

// Native is the ciede2000 package.
var Native Engine = native{}

var (
	// for the chromath engine
	rgb2Xyz = chromath.NewRGBTransformer(&chromath.SpaceSRGB, nil, nil, &chromath.Scaler8bClamping, 1.0, nil)
	lab2Xyz = chromath.NewLabTransformer(&chromath.IlluminantRefD65)
	klch    = &deltae.KLChDefault
)

// Chromath measures with go-chromath. Its conversion uses exact sRGB and D65
// constants, so results differ from Native in the third or fourth decimal.
var Chromath Engine = chromathEngine{}

// EngineByName returns "native" or "chromath". The empty name is native.
func EngineByName(name string) (Engine, error) {
	switch strings.ToLower(name) {
	case "", "native":
		return Native, nil
	case "chromath":
		return Chromath, nil
	}
	return nil, fmt.Errorf("unknown engine %q", name)
}

type native struct{}

func (native) Name() string {
	return "native"
}

func (native) Lab(rgb ciede2000.RGB) ciede2000.Lab {
	return ciede2000.RGBToLab(rgb)
}

func (native) Difference(ref, sample ciede2000.Lab) float64 {
	return ciede2000.Difference(ref, sample)
}

type chromathEngine struct{}

func (chromathEngine) Name() string {
	return "chromath"
}

func (chromathEngine) Lab(rgb ciede2000.RGB) ciede2000.Lab {
	xyz := rgb2Xyz.Convert(chromath.RGB{float64(rgb[0]), float64(rgb[1]), float64(rgb[2])})
	lab := lab2Xyz.Invert(xyz)
	return ciede2000.Lab{L: lab.L(), A: lab.A(), B: lab.B()}
}

func (chromathEngine) Difference(ref, sample ciede2000.Lab) float64 {
	return deltae.CIE2000(toChromath(sample), toChromath(ref), klch)
}

func toChromath(c ciede2000.Lab) chromath.Lab {
	return chromath.Lab{c.L, c.A, c.B}
}
