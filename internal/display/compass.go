package display

import "math"

// arrows are the 8 direction glyphs, clockwise from north.
var arrows = []string{"↑", "↗", "→", "↘", "↓", "↙", "←", "↖"}

// Arrow returns the arrow glyph closest to the given bearing in degrees
// clockwise from north.
func Arrow(bearingDegrees float64) string {
	idx := int(math.Round(math.Mod(math.Mod(bearingDegrees, 360)+360, 360)/45)) % 8
	return arrows[idx]
}
