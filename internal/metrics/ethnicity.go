package metrics

// Ethnicity is the population class used to pick BMI cutoff tables. It is a
// statistical proxy derived from country of residence, never a statement
// about an individual — hence the confidence score and ask-user flag.
type Ethnicity string

const (
	EthnicityAsian           Ethnicity = "asian"
	EthnicityCaucasian       Ethnicity = "caucasian"
	EthnicityBlackAfrican    Ethnicity = "black_african"
	EthnicityHispanic        Ethnicity = "hispanic"
	EthnicityMiddleEastern   Ethnicity = "middle_eastern"
	EthnicityPacificIslander Ethnicity = "pacific_islander"
	EthnicityMixed           Ethnicity = "mixed"
	EthnicityGeneral         Ethnicity = "general"
)

// EthnicityDetection is the result of the country-membership lookup.
type EthnicityDetection struct {
	Ethnicity     Ethnicity `json:"ethnicity"`
	Confidence    int       `json:"confidence"` // 0-100
	ShouldAskUser bool      `json:"should_ask_user"`
	Message       string    `json:"message,omitempty"`
}

/* ─── Regional country sets ──────────────────────────────────────────── */

// multiEthnicCountries are large, high-internal-diversity nations where a
// country-level guess would be wrong for most residents. These resolve to
// mixed at confidence 50 and always ask the user.
var multiEthnicCountries = map[string]bool{
	"US": true, "BR": true, "ZA": true, "SG": true, "CA": true,
}

var asianCountries = map[string]bool{
	"CN": true, "JP": true, "KR": true, "KP": true, "TW": true, "HK": true,
	"MO": true, "MN": true, "IN": true, "PK": true, "BD": true, "LK": true,
	"NP": true, "BT": true, "MV": true, "TH": true, "VN": true, "ID": true,
	"MY": true, "PH": true, "KH": true, "LA": true, "MM": true, "BN": true,
	"TL": true,
}

var caucasianCountries = map[string]bool{
	"GB": true, "IE": true, "FR": true, "DE": true, "NL": true, "BE": true,
	"LU": true, "AT": true, "CH": true, "IT": true, "ES": true, "PT": true,
	"GR": true, "PL": true, "CZ": true, "SK": true, "HU": true, "RO": true,
	"BG": true, "HR": true, "SI": true, "RS": true, "BA": true, "MK": true,
	"AL": true, "DK": true, "NO": true, "SE": true, "FI": true, "IS": true,
	"EE": true, "LV": true, "LT": true, "UA": true, "BY": true, "MD": true,
	"AU": true, "NZ": true,
}

var blackAfricanCountries = map[string]bool{
	"NG": true, "GH": true, "SN": true, "ML": true, "CI": true, "BF": true,
	"NE": true, "TG": true, "BJ": true, "GN": true, "SL": true, "LR": true,
	"CM": true, "GA": true, "CG": true, "CD": true, "AO": true, "ZM": true,
	"ZW": true, "MW": true, "MZ": true, "TZ": true, "KE": true, "UG": true,
	"RW": true, "BI": true, "ET": true, "SO": true, "ER": true, "DJ": true,
	"GM": true, "GW": true, "BW": true, "NA": true, "SZ": true, "LS": true,
}

var hispanicCountries = map[string]bool{
	"MX": true, "GT": true, "HN": true, "SV": true, "NI": true, "CR": true,
	"PA": true, "CO": true, "VE": true, "EC": true, "PE": true, "BO": true,
	"PY": true, "UY": true, "AR": true, "CL": true, "DO": true, "CU": true,
	"PR": true,
}

var middleEasternCountries = map[string]bool{
	"SA": true, "AE": true, "KW": true, "QA": true, "BH": true, "OM": true,
	"YE": true, "IQ": true, "SY": true, "JO": true, "LB": true, "PS": true,
	"IL": true, "EG": true, "LY": true, "TN": true, "DZ": true, "MA": true,
	"TR": true, "IR": true,
}

var pacificIslanderCountries = map[string]bool{
	"FJ": true, "WS": true, "TO": true, "VU": true, "SB": true, "PG": true,
	"KI": true, "MH": true, "FM": true, "PW": true, "NR": true, "TV": true,
	"CK": true, "NU": true,
}

/* ─── Detection ──────────────────────────────────────────────────────── */

// DetectEthnicity resolves a population class from a country code. The state
// parameter is accepted for symmetry with DetectClimate; no state-level
// ethnicity table exists today, so it is unused.
func DetectEthnicity(country, state string) EthnicityDetection {
	_ = state

	if multiEthnicCountries[country] {
		return EthnicityDetection{
			Ethnicity:     EthnicityMixed,
			Confidence:    50,
			ShouldAskUser: true,
			Message:       "This country has high ethnic diversity; please confirm your background for accurate BMI cutoffs.",
		}
	}

	switch {
	case asianCountries[country]:
		return EthnicityDetection{Ethnicity: EthnicityAsian, Confidence: 80}
	case caucasianCountries[country]:
		return EthnicityDetection{Ethnicity: EthnicityCaucasian, Confidence: 80}
	case blackAfricanCountries[country]:
		return EthnicityDetection{Ethnicity: EthnicityBlackAfrican, Confidence: 80}
	case hispanicCountries[country]:
		return EthnicityDetection{Ethnicity: EthnicityHispanic, Confidence: 80}
	case middleEasternCountries[country]:
		return EthnicityDetection{Ethnicity: EthnicityMiddleEastern, Confidence: 80}
	case pacificIslanderCountries[country]:
		return EthnicityDetection{Ethnicity: EthnicityPacificIslander, Confidence: 80}
	}

	return EthnicityDetection{
		Ethnicity:     EthnicityGeneral,
		Confidence:    40,
		ShouldAskUser: true,
		Message:       "Could not infer a population class from the country; general BMI cutoffs will be used.",
	}
}
