package metrics

// ClimateZone is the coarse climate class driving TDEE and hydration modifiers.
type ClimateZone string

const (
	ClimateTropical  ClimateZone = "tropical"
	ClimateTemperate ClimateZone = "temperate"
	ClimateCold      ClimateZone = "cold"
	ClimateArid      ClimateZone = "arid"
)

// ClimateCharacteristics are the fixed modifiers attached to each climate class.
type ClimateCharacteristics struct {
	AvgTemperatureC float64 `json:"avg_temperature_c"`
	AvgHumidityPct  float64 `json:"avg_humidity_pct"`
	TDEEMultiplier  float64 `json:"tdee_multiplier"`
	WaterMultiplier float64 `json:"water_multiplier"`
}

// climateCharacteristics is the single source of truth for climate modifiers.
// Hot climates raise hydration sharply; cold climates raise energy expenditure
// (thermogenesis) but lower sweat-driven water needs.
var climateCharacteristics = map[ClimateZone]ClimateCharacteristics{
	ClimateTropical:  {AvgTemperatureC: 28, AvgHumidityPct: 80, TDEEMultiplier: 1.05, WaterMultiplier: 1.50},
	ClimateTemperate: {AvgTemperatureC: 15, AvgHumidityPct: 60, TDEEMultiplier: 1.00, WaterMultiplier: 1.00},
	ClimateCold:      {AvgTemperatureC: 2, AvgHumidityPct: 55, TDEEMultiplier: 1.15, WaterMultiplier: 0.90},
	ClimateArid:      {AvgTemperatureC: 30, AvgHumidityPct: 25, TDEEMultiplier: 1.05, WaterMultiplier: 1.70},
}

// ClimateDetection is the result of the tiered climate lookup.
type ClimateDetection struct {
	Zone            ClimateZone            `json:"zone"`
	Confidence      int                    `json:"confidence"` // 0-100
	Source          string                 `json:"source"`     // state-table | country-table | default
	ShouldAskUser   bool                   `json:"should_ask_user"`
	Characteristics ClimateCharacteristics `json:"characteristics"`
}

const (
	climateSourceState   = "state-table"
	climateSourceCountry = "country-table"
	climateSourceDefault = "default"
)

/* ─── Lookup tables ──────────────────────────────────────────────────── */

// stateClimates holds state-level overrides for countries large enough that a
// single country-level class would be wrong for much of the population.
// Unlisted states fall through to the country-level lookup.
var stateClimates = map[string]map[string]ClimateZone{
	"US": {
		"FL": ClimateTropical, "HI": ClimateTropical, "LA": ClimateTropical,
		"AZ": ClimateArid, "NV": ClimateArid, "NM": ClimateArid, "UT": ClimateArid,
		"AK": ClimateCold, "MN": ClimateCold, "ND": ClimateCold, "SD": ClimateCold,
		"MT": ClimateCold, "WI": ClimateCold, "ME": ClimateCold, "VT": ClimateCold,
	},
	"AU": {
		"NT":  ClimateTropical,
		"QLD": ClimateTropical,
		"WA":  ClimateArid,
		"SA":  ClimateArid,
		"TAS": ClimateTemperate,
		"VIC": ClimateTemperate,
		"NSW": ClimateTemperate,
	},
}

var tropicalCountries = map[string]bool{
	"ID": true, "TH": true, "VN": true, "PH": true, "MY": true, "SG": true,
	"IN": true, "BD": true, "LK": true, "MM": true, "KH": true, "LA": true,
	"BR": true, "CO": true, "VE": true, "EC": true, "PA": true, "CR": true,
	"GT": true, "HN": true, "NI": true, "SV": true, "DO": true, "CU": true,
	"JM": true, "HT": true, "NG": true, "GH": true, "KE": true, "TZ": true,
	"UG": true, "CI": true, "CM": true, "CD": true,
}

var coldCountries = map[string]bool{
	"NO": true, "SE": true, "FI": true, "IS": true, "RU": true, "CA": true,
	"GL": true, "EE": true, "LV": true, "LT": true, "MN": true, "KZ": true,
}

var aridCountries = map[string]bool{
	"SA": true, "AE": true, "KW": true, "QA": true, "BH": true, "OM": true,
	"YE": true, "IQ": true, "JO": true, "EG": true, "LY": true, "DZ": true,
	"SD": true, "ML": true, "NE": true, "TD": true, "MR": true, "BW": true,
	"NA": true,
}

/* ─── Detection ──────────────────────────────────────────────────────── */

// DetectClimate resolves the climate zone for a country (ISO-3166 alpha-2)
// and optional state/region code. Tiered lookup: state table (confidence 90)
// → country membership (confidence 85) → temperate default (confidence 50,
// with should-ask-user set so a UI can confirm).
func DetectClimate(country, state string) ClimateDetection {
	if state != "" {
		if states, ok := stateClimates[country]; ok {
			if zone, ok := states[state]; ok {
				return climateResult(zone, 90, climateSourceState, false)
			}
		}
	}

	switch {
	case tropicalCountries[country]:
		return climateResult(ClimateTropical, 85, climateSourceCountry, false)
	case coldCountries[country]:
		return climateResult(ClimateCold, 85, climateSourceCountry, false)
	case aridCountries[country]:
		return climateResult(ClimateArid, 85, climateSourceCountry, false)
	}

	return climateResult(ClimateTemperate, 50, climateSourceDefault, true)
}

func climateResult(zone ClimateZone, confidence int, source string, ask bool) ClimateDetection {
	return ClimateDetection{
		Zone:            zone,
		Confidence:      confidence,
		Source:          source,
		ShouldAskUser:   ask,
		Characteristics: climateCharacteristics[zone],
	}
}
