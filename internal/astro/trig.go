package astro

import "math"

// All public formulas in this package work in degrees; these helpers do
// the radian conversion at the point of evaluation.

func sinDeg(d float64) float64 { return math.Sin(d * math.Pi / 180) }
func cosDeg(d float64) float64 { return math.Cos(d * math.Pi / 180) }
func tanDeg(d float64) float64 { return math.Tan(d * math.Pi / 180) }

func asinDeg(x float64) float64 { return math.Asin(x) * 180 / math.Pi }
func acosDeg(x float64) float64 { return math.Acos(x) * 180 / math.Pi }
func atanDeg(x float64) float64 { return math.Atan(x) * 180 / math.Pi }

func atan2Deg(y, x float64) float64 { return math.Atan2(y, x) * 180 / math.Pi }

// normDegrees wraps an angle into [0, 360).
func normDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// deltaDegrees reduces an angle difference into (-180, 180].
func deltaDegrees(d float64) float64 {
	d = math.Mod(d+540, 360)
	if d <= 0 {
		d += 360
	}
	return d - 180
}
