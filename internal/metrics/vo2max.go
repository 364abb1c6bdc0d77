package metrics

import "math"

// vo2ActivityIndex maps the ordinal activity levels onto the non-exercise
// regression's physical-activity index.
var vo2ActivityIndex = map[ActivityLevel]int{
	ActivitySedentary:  0,
	ActivityLight:      2,
	ActivityModerate:   4,
	ActivityActive:     6,
	ActivityVeryActive: 7,
}

// Non-exercise regression coefficients: VO2max = intercept + ai·activityIndex
// − age·ageCoeff − rhr·rhrCoeff. Separate male/female sets; other/unspecified
// averages the two.
type vo2Coefficients struct {
	intercept float64
	ai        float64
	age       float64
	rhr       float64
}

var vo2CoefficientsByGender = map[Gender]vo2Coefficients{
	GenderMale:   {intercept: 67.35, ai: 1.92, age: 0.38, rhr: 0.15},
	GenderFemale: {intercept: 56.36, ai: 1.80, age: 0.35, rhr: 0.12},
}

// VO2MaxEstimate is the estimated aerobic capacity (ml/kg/min) with its
// percentile classification.
type VO2MaxEstimate struct {
	Value          float64 `json:"value"` // ml/kg/min, 1 decimal
	ActivityIndex  int     `json:"activity_index"`
	Classification string  `json:"classification"`
}

// EstimateVO2Max runs the non-exercise regression. Requires a resting heart
// rate and a positive age; the activity level feeds the activity index
// (unknown levels count as sedentary).
func EstimateVO2Max(p UserProfile) (*VO2MaxEstimate, error) {
	if p.RestingHeartRate == nil {
		return nil, missingField("resting_heart_rate")
	}
	if p.Age <= 0 {
		return nil, missingField("age")
	}

	ai := vo2ActivityIndex[p.ActivityLevel]
	c, ok := vo2CoefficientsByGender[p.Gender]
	if !ok {
		m := vo2CoefficientsByGender[GenderMale]
		f := vo2CoefficientsByGender[GenderFemale]
		c = vo2Coefficients{
			intercept: (m.intercept + f.intercept) / 2,
			ai:        (m.ai + f.ai) / 2,
			age:       (m.age + f.age) / 2,
			rhr:       (m.rhr + f.rhr) / 2,
		}
	}

	value := c.intercept + c.ai*float64(ai) - c.age*float64(p.Age) - c.rhr*float64(*p.RestingHeartRate)
	if value < 10 {
		value = 10 // regression floor; below this the inputs are implausible
	}
	value = math.Round(value*10) / 10

	return &VO2MaxEstimate{
		Value:          value,
		ActivityIndex:  ai,
		Classification: ClassifyVO2Max(value, p.Age, p.Gender),
	}, nil
}

/* ─── Classification ─────────────────────────────────────────────────── */

// vo2Thresholds holds, per gender and age bracket, the minimum VO2max for
// Excellent, Good, Above Average, and Average. Below the last value is
// Below Average.
var vo2Thresholds = map[Gender]map[int][4]float64{
	GenderMale: {
		18: {51, 45, 42, 38},
		30: {48, 43, 40, 35},
		40: {45, 40, 36, 32},
		50: {42, 37, 33, 29},
		60: {39, 34, 30, 26},
	},
	GenderFemale: {
		18: {45, 40, 37, 33},
		30: {43, 38, 35, 31},
		40: {40, 35, 32, 28},
		50: {37, 32, 29, 25},
		60: {34, 29, 26, 22},
	},
}

var vo2Classes = [5]string{"Excellent", "Good", "Above Average", "Average", "Below Average"}

// ClassifyVO2Max grades a VO2max value against the age-bracketed,
// gender-specific percentile table. Other/unspecified genders use the
// midpoint of the male and female thresholds.
func ClassifyVO2Max(value float64, age int, gender Gender) string {
	bracket := vo2AgeBracket(age)

	var bounds [4]float64
	if rows, ok := vo2Thresholds[gender]; ok {
		bounds = rows[bracket]
	} else {
		m := vo2Thresholds[GenderMale][bracket]
		f := vo2Thresholds[GenderFemale][bracket]
		for i := range bounds {
			bounds[i] = (m[i] + f[i]) / 2
		}
	}

	for i, min := range bounds {
		if value >= min {
			return vo2Classes[i]
		}
	}
	return vo2Classes[4]
}

// vo2AgeBracket snaps an age to its threshold-table row key.
func vo2AgeBracket(age int) int {
	switch {
	case age >= 60:
		return 60
	case age >= 50:
		return 50
	case age >= 40:
		return 40
	case age >= 30:
		return 30
	default:
		return 18
	}
}
