// Package astro computes the sun's position with the standard
// low-precision approximation: good to a fraction of a degree, which
// keeps prayer times within a minute or two of high-precision
// ephemerides. All angles are in degrees, all times in hours.
package astro

// j2000 is the Julian date of the J2000.0 epoch (2000-01-01 12:00 UTC).
const j2000 = 2451545.0

// obliquity is Earth's axial tilt in degrees.
const obliquity = 23.439

// Parameters holds the derived solar quantities for one instant.
// They are pure functions of the Julian date and are recomputed on
// every call; nothing here is cached.
type Parameters struct {
	JulianDate        float64
	MeanLongitude     float64 // degrees, [0, 360)
	MeanAnomaly       float64 // degrees, [0, 360)
	EclipticLongitude float64 // degrees, [0, 360)
	Declination       float64 // degrees, [-23.44, 23.44]
	RightAscension    float64 // degrees, (-180, 180]
	EquationOfTime    float64 // minutes, apparent minus mean solar time
}

// Position computes the solar parameters for the given Julian date.
func Position(jd float64) Parameters {
	n := jd - j2000

	meanLon := normDegrees(280.460 + 0.9856474*n)
	meanAnom := normDegrees(357.528 + 0.9856003*n)

	eclLon := normDegrees(meanLon + 1.915*sinDeg(meanAnom) + 0.020*sinDeg(2*meanAnom))

	decl := asinDeg(sinDeg(obliquity) * sinDeg(eclLon))
	ra := atan2Deg(cosDeg(obliquity)*sinDeg(eclLon), cosDeg(eclLon))

	// Equation of time in minutes: 4 minutes per degree between mean
	// longitude and right ascension, reduced to (-180, 180] first so the
	// atan2 branch cut does not blow it up.
	eot := 4 * deltaDegrees(meanLon-ra)

	return Parameters{
		JulianDate:        jd,
		MeanLongitude:     meanLon,
		MeanAnomaly:       meanAnom,
		EclipticLongitude: eclLon,
		Declination:       decl,
		RightAscension:    ra,
		EquationOfTime:    eot,
	}
}

// SolarNoon returns the local clock hour of solar noon for the given
// longitude, equation of time (minutes) and UTC offset (hours).
func SolarNoon(longitude, eqOfTimeMinutes, utcOffsetHours float64) float64 {
	return 12 - longitude/15 - eqOfTimeMinutes/60 + utcOffsetHours
}
