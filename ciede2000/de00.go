package ciede2000

import "math"

// epsilon guards the hue terms against atan2(0, 0) and zero chroma products.
const epsilon = 2.220446049250313e-16

// 25^7
const pow25to7 = 6103515625.0

// Weights are the parametric factors kL, kC and kH of CIEDE2000.
type Weights struct {
	KL, KC, KH float64
}

// DefaultWeights are the reference conditions kL = kC = kH = 1.
var DefaultWeights = Weights{KL: 1, KC: 1, KH: 1}

// Difference returns the CIEDE2000 distance between ref and other using
// DefaultWeights. It is symmetric, non-negative, and zero for identical
// colors.
func Difference(ref, other Lab) float64 {
	return DifferenceWeighted(ref, other, DefaultWeights)
}

// DifferenceWeighted returns the CIEDE2000 distance between ref and other
// with the given parametric weights.
func DifferenceWeighted(ref, other Lab, w Weights) float64 {
	l1, a1, b1 := ref.L, ref.A, ref.B
	l2, a2, b2 := other.L, other.A, other.B

	// chroma on the raw a, b
	mC := (math.Sqrt(a1*a1+b1*b1) + math.Sqrt(a2*a2+b2*b2)) / 2.0
	mC7 := math.Pow(mC, 7)
	g := 0.5 * (1.0 - math.Sqrt(mC7/(mC7+pow25to7)))

	a1p := (1.0 + g) * a1
	a2p := (1.0 + g) * a2
	c1p := math.Sqrt(a1p*a1p + b1*b1)
	c2p := math.Sqrt(a2p*a2p + b2*b2)
	h1p := hueAngle(a1p, b1)
	h2p := hueAngle(a2p, b2)

	dLp := l2 - l1
	dCp := c2p - c1p

	cProd := math.Abs(c1p * c2p)
	zeroChroma := cProd <= epsilon

	var dhp float64
	switch {
	case zeroChroma:
		dhp = 0
	case math.Abs(h1p-h2p) <= math.Pi:
		dhp = h2p - h1p
	case h2p-h1p > math.Pi:
		dhp = h2p - h1p - twoPi
	case h2p-h1p < -math.Pi:
		dhp = h2p - h1p + twoPi
	}
	dHp := 2.0 * math.Sqrt(c1p*c2p) * math.Sin(dhp/2.0)

	mLp := (l1 + l2) / 2.0
	mCp := (c1p + c2p) / 2.0

	var mhp float64
	switch {
	case zeroChroma:
		mhp = h1p + h2p
	case math.Abs(h1p-h2p) <= math.Pi:
		mhp = (h1p + h2p) / 2.0
	case h1p+h2p < twoPi:
		mhp = (h1p + h2p + twoPi) / 2.0
	default:
		mhp = (h1p + h2p - twoPi) / 2.0
	}

	t := 1.0 -
		0.17*math.Cos(mhp-math.Pi/6.0) +
		0.24*math.Cos(2.0*mhp) +
		0.32*math.Cos(3.0*mhp+math.Pi/30.0) -
		0.20*math.Cos(4.0*mhp-7.0*math.Pi/20.0)

	mhpDeg := mhp * 180.0 / math.Pi
	dTheta := math.Pi / 6.0 * math.Exp(-math.Pow((mhpDeg-275.0)/25.0, 2))

	mCp7 := math.Pow(mCp, 7)
	rc := 2.0 * math.Sqrt(mCp7/(mCp7+pow25to7))
	rt := -math.Sin(2.0*dTheta) * rc

	mLpSqr := (mLp - 50.0) * (mLp - 50.0)
	sl := 1.0 + 0.015*mLpSqr/math.Sqrt(20.0+mLpSqr)
	sc := 1.0 + 0.045*mCp
	sh := 1.0 + 0.015*mCp*t

	lTerm := dLp / (w.KL * sl)
	cTerm := dCp / (w.KC * sc)
	hTerm := dHp / (w.KH * sh)

	return math.Sqrt(lTerm*lTerm + cTerm*cTerm + hTerm*hTerm + rt*cTerm*hTerm)
}

// hueAngle is atan2(b, a) in [0, 2π), or 0 when a and b are both negligible.
func hueAngle(a, b float64) float64 {
	if math.Abs(a)+math.Abs(b) < epsilon {
		return 0
	}
	h := math.Atan2(b, a)
	if h < 0 {
		h += twoPi
	}
	return h
}
