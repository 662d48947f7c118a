package ciede2000

import (
	"fmt"
	"math"
)

const (
	// BracketStart is the initial upper radius of the solver's bracket.
	BracketStart = 2.0

	// MaxDoublings bounds how often the upper radius is doubled while looking
	// for a sign change.
	MaxDoublings = 10

	// Tolerance is the solver's convergence threshold on successive radius
	// estimates.
	Tolerance = 1e-4

	// MaxIterations bounds the refinement loop.
	MaxIterations = 100
)

// Reference is a fixed "color 1" against which distances are measured. It is
// a value: copies are independent and nothing mutates it after NewReference.
type Reference struct {
	lab     Lab
	weights Weights
}

// NewReference binds lab as the reference color using DefaultWeights.
func NewReference(lab Lab) Reference {
	return Reference{lab: lab, weights: DefaultWeights}
}

// WithWeights returns a copy of r that uses w.
func (r Reference) WithWeights(w Weights) Reference {
	r.weights = w
	return r
}

// Lab returns the reference color.
func (r Reference) Lab() Lab { return r.lab }

// Weights returns the parametric weights in use.
func (r Reference) Weights() Weights { return r.weights }

// Difference returns the distance from the reference to other.
func (r Reference) Difference(other Lab) float64 {
	return DifferenceWeighted(r.lab, other, r.weights)
}

// PointAt offsets the reference by radius along angle in the a-b plane.
// Lightness is unchanged.
func (r Reference) PointAt(radius, angle float64) Lab {
	return Lab{
		L: r.lab.L,
		A: r.lab.A + radius*math.Cos(angle),
		B: r.lab.B + radius*math.Sin(angle),
	}
}

// DifferencePolar is the distance between the reference and the color offset
// from it by radius along angle.
func (r Reference) DifferencePolar(radius, angle float64) float64 {
	return r.Difference(r.PointAt(radius, angle))
}

// ColorWithDifference finds the radius along angle at which DifferencePolar
// equals target.
//
// The root is bracketed by doubling an upper radius starting at BracketStart
// and then refined with the Illinois variant of false position, which keeps a
// sign change between the two endpoints at every step. ErrNotFound is
// returned when no bracket exists within MaxDoublings or the refinement does
// not converge within MaxIterations.
func (r Reference) ColorWithDifference(target, angle float64) (float64, error) {
	if target < 0 || math.IsNaN(target) || math.IsInf(target, 0) {
		return 0, fmt.Errorf("%w: target difference %v", ErrInvalidInput, target)
	}

	angle = NormalizeAngle(angle)
	f := func(radius float64) float64 {
		return r.DifferencePolar(radius, angle) - target
	}

	r1, r2 := 0.0, BracketStart
	f1, f2 := f(r1), f(r2)
	if f1 == 0 {
		return r1, nil
	}
	for i := 0; i < MaxDoublings && f2 < 0; i++ {
		r2 *= 2.0
		f2 = f(r2)
	}
	if f2 == 0 {
		return r2, nil
	}
	if math.Signbit(f1) == math.Signbit(f2) {
		return 0, fmt.Errorf("%w: difference %v unreachable at angle %v within radius %v",
			ErrNotFound, target, angle, r2)
	}

	// side records which endpoint was replaced last: -1 for r1, +1 for r2.
	side := 0
	prev := math.NaN()
	for n := 0; n < MaxIterations; n++ {
		if f2 == f1 {
			return 0, fmt.Errorf("%w: degenerate bracket [%v, %v]", ErrNotFound, r1, r2)
		}
		x := (r1*f2 - r2*f1) / (f2 - f1)
		fx := f(x)
		if fx == 0 || math.Abs(x-prev) < Tolerance {
			return x, nil
		}
		prev = x

		if math.Signbit(fx) == math.Signbit(f2) {
			r2, f2 = x, fx
			if side == +1 {
				f1 /= 2
			}
			side = +1
		} else {
			r1, f1 = x, fx
			if side == -1 {
				f2 /= 2
			}
			side = -1
		}
	}

	return 0, fmt.Errorf("%w: no convergence after %d iterations", ErrNotFound, MaxIterations)
}

// ColorWithDifferenceA is the absolute a coordinate at the solved radius.
func (r Reference) ColorWithDifferenceA(target, angle float64) (float64, error) {
	radius, e := r.ColorWithDifference(target, angle)
	if e != nil {
		return 0, e
	}
	return r.lab.A + radius*math.Cos(angle), nil
}

// ColorWithDifferenceB is the absolute b coordinate at the solved radius.
func (r Reference) ColorWithDifferenceB(target, angle float64) (float64, error) {
	radius, e := r.ColorWithDifference(target, angle)
	if e != nil {
		return 0, e
	}
	return r.lab.B + radius*math.Sin(angle), nil
}

// DifferencePolar is NewReference(ref).DifferencePolar(radius, angle).
func DifferencePolar(ref Lab, radius, angle float64) float64 {
	return NewReference(ref).DifferencePolar(radius, angle)
}

// ColorWithDifference is NewReference(ref).ColorWithDifference(target, angle).
func ColorWithDifference(ref Lab, target, angle float64) (float64, error) {
	return NewReference(ref).ColorWithDifference(target, angle)
}

// ColorWithDifferenceA is NewReference(ref).ColorWithDifferenceA(target, angle).
func ColorWithDifferenceA(ref Lab, target, angle float64) (float64, error) {
	return NewReference(ref).ColorWithDifferenceA(target, angle)
}

// ColorWithDifferenceB is NewReference(ref).ColorWithDifferenceB(target, angle).
func ColorWithDifferenceB(ref Lab, target, angle float64) (float64, error) {
	return NewReference(ref).ColorWithDifferenceB(target, angle)
}
