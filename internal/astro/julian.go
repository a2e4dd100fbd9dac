package astro

import "time"

// JulianDate converts an instant to a Julian date, the continuous day
// count astronomers use. The calendar fields are taken as the instant's
// own wall clock (year, month, day, hour, minute, second).
//
// The integer part comes from the standard Gregorian Julian Day Number
// formula; the fractional day is added and 0.5 subtracted to align with
// the noon-based Julian epoch. Leap years fall out of the arithmetic,
// no special casing needed.
func JulianDate(t time.Time) float64 {
	year, month, day := t.Date()

	a := (14 - int(month)) / 12
	y := year - a
	m := int(month) + 12*a - 3

	jdn := day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 + 1721119

	frac := (float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600) / 24

	return float64(jdn) + frac - 0.5
}
