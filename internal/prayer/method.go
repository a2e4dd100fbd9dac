package prayer

// Method is a named preset of twilight angles used by a calculation
// authority. The shadow factor is orthogonal (a juristic-school choice)
// and is supplied separately.
type Method struct {
	Key       string
	Name      string
	FajrAngle float64
	IshaAngle float64
}

// DefaultMethodKey selects the Muslim World League angles (Fajr 18,
// Isha 17) when the user has not configured a method.
const DefaultMethodKey = "mwl"

// Methods lists the supported angle-based calculation methods.
// Authorities that use a fixed Isha interval instead of an angle
// (e.g. Umm Al-Qura) are not representable here and are omitted.
var Methods = []Method{
	{"mwl", "Muslim World League (MWL)", 18, 17},
	{"isna", "Islamic Society of North America (ISNA)", 15, 15},
	{"egypt", "Egyptian General Authority of Survey", 19.5, 17.5},
	{"karachi", "University of Islamic Sciences, Karachi", 18, 18},
	{"tehran", "Institute of Geophysics, University of Tehran", 17.7, 14},
	{"jafari", "Shia Ithna-Ashari (Jafari)", 16, 14},
}

// MethodByKey looks up a method preset by its key.
func MethodByKey(key string) (Method, bool) {
	for _, m := range Methods {
		if m.Key == key {
			return m, true
		}
	}
	return Method{}, false
}

// Params builds calculation parameters from the method's angles and the
// given Asr shadow factor.
func (m Method) Params(shadowFactor float64) Params {
	return Params{
		FajrAngle:    m.FajrAngle,
		IshaAngle:    m.IshaAngle,
		ShadowFactor: shadowFactor,
	}
}
