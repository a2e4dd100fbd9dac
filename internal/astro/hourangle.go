package astro

// HourAngle solves for the time, in hours from solar noon, at which the
// sun's center reaches the given elevation. Twilight events pass a
// negative elevation (e.g. -18 for astronomical dawn, -0.833 for
// sunrise/sunset including refraction); Asr passes a positive one.
//
// The second return value is false when the sun never reaches that
// elevation on the given day (the polar case). Latitudes near or above
// the polar circles hit this for the horizon during midnight sun /
// polar night, and for the twilight angles under the midnight sun.
func HourAngle(latitude, declination, elevation float64) (float64, bool) {
	cosH := (sinDeg(elevation) - sinDeg(latitude)*sinDeg(declination)) /
		(cosDeg(latitude) * cosDeg(declination))
	if cosH > 1 || cosH < -1 {
		return 0, false
	}
	return acosDeg(cosH) / 15, true
}

// AsrElevation returns the sun elevation at which Asr begins, using the
// shadow-length method: Asr starts when an object's shadow equals its
// height times shadowFactor, plus the shadow it already casts at noon.
// Factor 1 is the Shafi'i/Maliki/Hanbali convention, factor 2 the
// Hanafi one.
func AsrElevation(latitude, declination, shadowFactor float64) float64 {
	noonElevation := asinDeg(sinDeg(latitude)*sinDeg(declination) +
		cosDeg(latitude)*cosDeg(declination))
	return atanDeg(1 / (shadowFactor + tanDeg(90-noonElevation)))
}
