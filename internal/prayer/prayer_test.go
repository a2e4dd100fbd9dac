package prayer

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	sunriselib "github.com/nathan-osman/go-sunrise"

	"github.com/aalrahma/salat-compass/internal/astro"
	"github.com/aalrahma/salat-compass/internal/geo"
)

var (
	london = geo.Coordinate{Latitude: 51.5074, Longitude: -0.1278}
	riyadh = geo.Coordinate{Latitude: 24.7136, Longitude: 46.6753}
	sydney = geo.Coordinate{Latitude: -33.8688, Longitude: 151.2093}
	barrow = geo.Coordinate{Latitude: 80, Longitude: 0}
)

// marchNoonUTC is a mid-March reference instant: far enough from the
// equinox that the declination is clearly non-zero, close enough that
// every temperate-latitude prayer is well defined.
var marchNoonUTC = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func momentByID(t *testing.T, moments []Moment, id ID) Moment {
	t.Helper()
	for _, m := range moments {
		if m.ID == id {
			return m
		}
	}
	t.Fatalf("no moment with ID %v", id)
	return Moment{}
}

// ---------------------------------------------------------------------------
// Moments
// ---------------------------------------------------------------------------

func TestMoments_LondonMarch(t *testing.T) {
	moments, err := Moments(london, marchNoonUTC, DefaultParams())
	if err != nil {
		t.Fatalf("Moments: %v", err)
	}
	if len(moments) != 6 {
		t.Fatalf("got %d moments, want 6", len(moments))
	}

	// IDs come out in chronological order and none needs a fallback at
	// this latitude.
	for i, m := range moments {
		if m.ID != AllIDs[i] {
			t.Errorf("moment %d has ID %v, want %v", i, m.ID, AllIDs[i])
		}
		if m.Fallback {
			t.Errorf("%v unexpectedly flagged as fallback", m.ID)
		}
	}
	for i := 1; i < len(moments); i++ {
		if moments[i].Hour < moments[i-1].Hour {
			t.Errorf("%v (%f) earlier than %v (%f)",
				moments[i].ID, moments[i].Hour, moments[i-1].ID, moments[i-1].Hour)
		}
	}

	// Windows around the published London times for that date.
	windows := []struct {
		id       ID
		min, max float64
	}{
		{Fajr, 4.0, 4.8},
		{Sunrise, 6.0, 6.4},
		{Dhuhr, 12.05, 12.25},
		{Asr, 15.1, 15.6},
		{Maghrib, 17.9, 18.3},
		{Isha, 19.5, 20.1},
	}
	for _, w := range windows {
		m := momentByID(t, moments, w.id)
		if m.Hour < w.min || m.Hour > w.max {
			t.Errorf("%v = %f, want in [%f, %f]", w.id, m.Hour, w.min, w.max)
		}
	}
}

// Dhuhr is solar noon by definition, wherever the observer is.
func TestMoments_DhuhrIsSolarNoon(t *testing.T) {
	equator := geo.Coordinate{Latitude: 0, Longitude: 0}

	moments, err := Moments(equator, marchNoonUTC, DefaultParams())
	if err != nil {
		t.Fatalf("Moments: %v", err)
	}

	sun := astro.Position(astro.JulianDate(marchNoonUTC))
	noon := astro.SolarNoon(equator.Longitude, sun.EquationOfTime, 0)

	dhuhr := momentByID(t, moments, Dhuhr)
	if math.Abs(dhuhr.Hour-noon) > 1.0/60 {
		t.Errorf("Dhuhr = %f, solar noon = %f", dhuhr.Hour, noon)
	}
}

// The UTC offset only shifts the clock; the underlying solar events are
// the same. Computing the same wall-clock date in two zones must give
// hours that differ by exactly the offset difference, mod 24.
func TestMoments_OffsetShiftsClock(t *testing.T) {
	ast := time.FixedZone("AST", 3*3600)

	inUTC, err := Moments(riyadh, time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC), DefaultParams())
	if err != nil {
		t.Fatalf("Moments UTC: %v", err)
	}
	inAST, err := Moments(riyadh, time.Date(2026, 3, 15, 12, 0, 0, 0, ast), DefaultParams())
	if err != nil {
		t.Fatalf("Moments AST: %v", err)
	}

	for i := range inUTC {
		diff := math.Mod(inAST[i].Hour-inUTC[i].Hour+24, 24)
		if math.Abs(diff-3) > 1e-9 {
			t.Errorf("%v: AST %f - UTC %f = %f, want 3", inUTC[i].ID, inAST[i].Hour, inUTC[i].Hour, diff)
		}
		if inAST[i].Fallback != inUTC[i].Fallback {
			t.Errorf("%v: fallback flag differs across zones", inUTC[i].ID)
		}
	}

	// Riyadh Dhuhr lands near local noon.
	dhuhr := momentByID(t, inAST, Dhuhr)
	if dhuhr.Hour < 11.9 || dhuhr.Hour > 12.2 {
		t.Errorf("Riyadh Dhuhr = %f, want near 12", dhuhr.Hour)
	}
}

// Midnight sun at 80N: the sun never drops to the horizon or below it,
// so Fajr, Sunrise, Maghrib and Isha all take the fixed fallback hours.
// The noon sun is still low enough for the Asr shadow ratio, so Asr
// stays computed.
func TestMoments_PolarDay(t *testing.T) {
	at := time.Date(2026, 6, 21, 12, 0, 0, 0, time.UTC)
	moments, err := Moments(barrow, at, DefaultParams())
	if err != nil {
		t.Fatalf("Moments: %v", err)
	}

	tests := []struct {
		id           ID
		wantFallback bool
		wantHour     float64
	}{
		{Fajr, true, 6},
		{Sunrise, true, 6},
		{Dhuhr, false, -1},
		{Asr, false, -1},
		{Maghrib, true, 18},
		{Isha, true, 18},
	}
	for _, tt := range tests {
		m := momentByID(t, moments, tt.id)
		if m.Fallback != tt.wantFallback {
			t.Errorf("%v fallback = %v, want %v", tt.id, m.Fallback, tt.wantFallback)
		}
		if tt.wantFallback && math.Abs(m.Hour-tt.wantHour) > 1e-9 {
			t.Errorf("%v fallback hour = %f, want %f", tt.id, m.Hour, tt.wantHour)
		}
	}
}

// Polar night at 80N: no sunrise or sunset, but the sun still crosses
// the twilight depressions, so Fajr and Isha remain computed.
func TestMoments_PolarNight(t *testing.T) {
	at := time.Date(2026, 12, 21, 12, 0, 0, 0, time.UTC)
	moments, err := Moments(barrow, at, DefaultParams())
	if err != nil {
		t.Fatalf("Moments: %v", err)
	}

	if m := momentByID(t, moments, Sunrise); !m.Fallback || m.Hour != 6 {
		t.Errorf("Sunrise = %+v, want fallback at hour 6", m)
	}
	if m := momentByID(t, moments, Maghrib); !m.Fallback || m.Hour != 18 {
		t.Errorf("Maghrib = %+v, want fallback at hour 18", m)
	}
	if m := momentByID(t, moments, Fajr); m.Fallback {
		t.Errorf("Fajr unexpectedly fell back; twilight exists in polar night")
	}
	if m := momentByID(t, moments, Isha); m.Fallback {
		t.Errorf("Isha unexpectedly fell back; twilight exists in polar night")
	}
}

// Fallback hours are local clock hours: they shift with the zone and
// wrap into [0, 24).
func TestMoments_FallbackOffset(t *testing.T) {
	tests := []struct {
		name        string
		zone        *time.Location
		wantMorning float64
		wantEvening float64
	}{
		{"plus five", time.FixedZone("X", 5*3600), 11, 23},
		{"minus seven wraps", time.FixedZone("Y", -7*3600), 23, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at := time.Date(2026, 6, 21, 12, 0, 0, 0, tt.zone)
			moments, err := Moments(barrow, at, DefaultParams())
			if err != nil {
				t.Fatalf("Moments: %v", err)
			}
			if m := momentByID(t, moments, Sunrise); math.Abs(m.Hour-tt.wantMorning) > 1e-9 {
				t.Errorf("Sunrise fallback = %f, want %f", m.Hour, tt.wantMorning)
			}
			if m := momentByID(t, moments, Maghrib); math.Abs(m.Hour-tt.wantEvening) > 1e-9 {
				t.Errorf("Maghrib fallback = %f, want %f", m.Hour, tt.wantEvening)
			}
		})
	}
}

func TestMoments_InvalidCoordinate(t *testing.T) {
	tests := []struct {
		name  string
		coord geo.Coordinate
	}{
		{"latitude out of range", geo.Coordinate{Latitude: 95, Longitude: 0}},
		{"longitude out of range", geo.Coordinate{Latitude: 0, Longitude: 200}},
		{"NaN latitude", geo.Coordinate{Latitude: math.NaN(), Longitude: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Moments(tt.coord, marchNoonUTC, DefaultParams()); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

// Zero-valued params mean "use the defaults".
func TestMoments_ZeroParams(t *testing.T) {
	withZero, err := Moments(london, marchNoonUTC, Params{})
	if err != nil {
		t.Fatalf("Moments zero params: %v", err)
	}
	withDefault, err := Moments(london, marchNoonUTC, DefaultParams())
	if err != nil {
		t.Fatalf("Moments default params: %v", err)
	}
	if diff := cmp.Diff(withDefault, withZero); diff != "" {
		t.Errorf("zero params differ from defaults (-want +got):\n%s", diff)
	}
}

func TestMoments_HanafiAsrLater(t *testing.T) {
	p := DefaultParams()

	p.ShadowFactor = ShadowFactorStandard
	shafi, err := Moments(london, marchNoonUTC, p)
	if err != nil {
		t.Fatalf("Moments: %v", err)
	}

	p.ShadowFactor = ShadowFactorHanafi
	hanafi, err := Moments(london, marchNoonUTC, p)
	if err != nil {
		t.Fatalf("Moments: %v", err)
	}

	sAsr := momentByID(t, shafi, Asr)
	hAsr := momentByID(t, hanafi, Asr)
	if hAsr.Hour <= sAsr.Hour {
		t.Errorf("hanafi Asr %f not later than shafi Asr %f", hAsr.Hour, sAsr.Hour)
	}
	// The gap is typically 45-70 minutes at this latitude.
	if gap := hAsr.Hour - sAsr.Hour; gap < 0.5 || gap > 1.5 {
		t.Errorf("hanafi-shafi Asr gap = %f hours, want in [0.5, 1.5]", gap)
	}
}

// Wider twilight angles push Fajr earlier and Isha later.
func TestMoments_AngleDirection(t *testing.T) {
	narrow, err := Moments(london, marchNoonUTC, Params{FajrAngle: 15, IshaAngle: 15, ShadowFactor: 1})
	if err != nil {
		t.Fatalf("Moments: %v", err)
	}
	wide, err := Moments(london, marchNoonUTC, Params{FajrAngle: 19.5, IshaAngle: 17.5, ShadowFactor: 1})
	if err != nil {
		t.Fatalf("Moments: %v", err)
	}

	if w, n := momentByID(t, wide, Fajr), momentByID(t, narrow, Fajr); w.Hour >= n.Hour {
		t.Errorf("Fajr at 19.5° (%f) not earlier than at 15° (%f)", w.Hour, n.Hour)
	}
	if w, n := momentByID(t, wide, Isha), momentByID(t, narrow, Isha); w.Hour <= n.Hour {
		t.Errorf("Isha at 17.5° (%f) not later than at 15° (%f)", w.Hour, n.Hour)
	}
}

// ---------------------------------------------------------------------------
// cross-check against go-sunrise
// ---------------------------------------------------------------------------

// hoursApartMod24 folds a clock-hour difference into [0, 12].
func hoursApartMod24(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 24)
	if d > 12 {
		d = 24 - d
	}
	return d
}

// Sunrise and Maghrib should agree with an independent rise/set
// implementation to within a few minutes. Comparison is mod 24 because
// at large longitudes the UTC event may belong to the neighboring
// calendar day.
func TestMoments_SunriseOracle(t *testing.T) {
	sites := []struct {
		name  string
		coord geo.Coordinate
	}{
		{"london", london},
		{"riyadh", riyadh},
		{"sydney", sydney},
	}
	dates := []time.Time{
		time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 21, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 12, 21, 12, 0, 0, 0, time.UTC),
	}
	const toleranceHours = 6.0 / 60

	for _, site := range sites {
		for _, date := range dates {
			t.Run(site.name+"/"+date.Format("2006-01-02"), func(t *testing.T) {
				moments, err := Moments(site.coord, date, DefaultParams())
				if err != nil {
					t.Fatalf("Moments: %v", err)
				}

				rise, set := sunriselib.SunriseSunset(
					site.coord.Latitude, site.coord.Longitude,
					date.Year(), date.Month(), date.Day())
				if rise.IsZero() || set.IsZero() {
					t.Skip("no sunrise/sunset at this site and date")
				}

				riseHour := float64(rise.Hour()) + float64(rise.Minute())/60 + float64(rise.Second())/3600
				setHour := float64(set.Hour()) + float64(set.Minute())/60 + float64(set.Second())/3600

				if got := momentByID(t, moments, Sunrise); hoursApartMod24(got.Hour, riseHour) > toleranceHours {
					t.Errorf("Sunrise = %f, oracle %f", got.Hour, riseHour)
				}
				if got := momentByID(t, moments, Maghrib); hoursApartMod24(got.Hour, setHour) > toleranceHours {
					t.Errorf("Maghrib = %f, oracle %f", got.Hour, setHour)
				}
			})
		}
	}
}

// ---------------------------------------------------------------------------
// normalizeHour
// ---------------------------------------------------------------------------

func TestNormalizeHour(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{23.5, 23.5},
		{24, 0},
		{25.25, 1.25},
		{-1, 23},
		{-25, 23},
	}

	for _, tt := range tests {
		if got := normalizeHour(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("normalizeHour(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}
