package metrics

import "math"

// HeartRateZone is one Karvonen training zone. Bounds are bpm, inclusive.
type HeartRateZone struct {
	Zone   int    `json:"zone"`
	Name   string `json:"name"`
	MinBPM int    `json:"min_bpm"`
	MaxBPM int    `json:"max_bpm"`
}

// HeartRateZones is the full zone result plus resting-HR context.
type HeartRateZones struct {
	MaxHR          int             `json:"max_hr"`
	RestingHR      int             `json:"resting_hr"`
	Method         string          `json:"method"` // measured | tanaka | gulati
	Zones          []HeartRateZone `json:"zones"`
	RestingHRClass string          `json:"resting_hr_class"`
}

// karvonenBands are the cumulative heart-rate-reserve intensity bands for the
// five zones: 50-60, 60-70, 70-80, 80-90, 90-100%.
var karvonenBands = [6]float64{0.50, 0.60, 0.70, 0.80, 0.90, 1.00}

var zoneNames = [5]string{"Recovery", "Endurance", "Aerobic", "Threshold", "VO2 Max"}

// CalculateHeartRateZones builds five Karvonen zones from heart-rate reserve.
// Max HR uses the measured value when supplied, otherwise Gulati
// (206 − 0.88·age) for female profiles and Tanaka (208 − 0.7·age) for all
// others. Requires a resting heart rate.
func CalculateHeartRateZones(p UserProfile) (*HeartRateZones, error) {
	if p.RestingHeartRate == nil {
		return nil, missingField("resting_heart_rate")
	}
	resting := *p.RestingHeartRate

	var maxHR int
	method := "measured"
	switch {
	case p.MaxHeartRate != nil:
		maxHR = *p.MaxHeartRate
	case p.Gender == GenderFemale:
		if p.Age <= 0 {
			return nil, missingField("age")
		}
		maxHR = int(math.Round(206 - 0.88*float64(p.Age)))
		method = "gulati"
	default:
		if p.Age <= 0 {
			return nil, missingField("age")
		}
		maxHR = int(math.Round(208 - 0.7*float64(p.Age)))
		method = "tanaka"
	}

	reserve := float64(maxHR - resting)
	zones := make([]HeartRateZone, 5)
	for i := 0; i < 5; i++ {
		zones[i] = HeartRateZone{
			Zone:   i + 1,
			Name:   zoneNames[i],
			MinBPM: int(math.Round(float64(resting) + reserve*karvonenBands[i])),
			MaxBPM: int(math.Round(float64(resting) + reserve*karvonenBands[i+1])),
		}
	}

	return &HeartRateZones{
		MaxHR:          maxHR,
		RestingHR:      resting,
		Method:         method,
		Zones:          zones,
		RestingHRClass: classifyRestingHR(resting, p.Gender),
	}, nil
}

// restingHRThresholds are the upper bounds (inclusive) for each class band.
// Female resting rates run a few bpm higher at the same fitness level.
var restingHRThresholds = map[Gender][4]int{
	GenderMale:   {55, 61, 70, 81},
	GenderFemale: {59, 65, 74, 85},
}

var restingHRClasses = [5]string{"Excellent", "Good", "Average", "Below Average", "Poor"}

// classifyRestingHR grades a resting heart rate against gender-specific
// thresholds. Other/unspecified genders use the male/female midpoints.
func classifyRestingHR(resting int, gender Gender) string {
	bounds, ok := restingHRThresholds[gender]
	if !ok {
		m := restingHRThresholds[GenderMale]
		f := restingHRThresholds[GenderFemale]
		for i := range bounds {
			bounds[i] = (m[i] + f[i]) / 2
		}
	}
	for i, upper := range bounds {
		if resting <= upper {
			return restingHRClasses[i]
		}
	}
	return restingHRClasses[4]
}
