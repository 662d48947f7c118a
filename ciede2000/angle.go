package ciede2000

import "math"

const twoPi = 2 * math.Pi

// NormalizeAngle reduces an angle in radians to the equivalent angle in
// [0, 2π). Angles already in range are returned unchanged; NaN and ±Inf are
// returned as is.
func NormalizeAngle(angle float64) float64 {
	if math.IsInf(angle, 0) || math.IsNaN(angle) {
		return angle
	}
	// math.Mod is exact, so this is the same as stepping by 2π until in range
	// but bounded for large inputs.
	angle = math.Mod(angle, twoPi)
	if angle < 0 {
		angle += twoPi
	}
	if angle >= twoPi {
		// -tiny + 2π rounds up to 2π.
		angle = 0
	}
	return angle
}
