package metrics

import "math"

// activityWaterBonusML is the flat daily hydration bonus per activity level,
// added on top of the 35 ml/kg baseline before climate scaling.
var activityWaterBonusML = map[ActivityLevel]float64{
	ActivitySedentary:  0,
	ActivityLight:      500,
	ActivityModerate:   1000,
	ActivityActive:     1500,
	ActivityVeryActive: 2000,
}

// waterBaselineMLPerKG is the per-kilogram hydration baseline.
const waterBaselineMLPerKG = 35

// CalculateWaterTarget computes the daily hydration target in ml:
// (weight·35 + activity bonus) × climate water multiplier, rounded to the
// nearest 50 ml so the number reads as a practical pour target.
func CalculateWaterTarget(weightKG float64, level ActivityLevel, climate ClimateZone) (int, error) {
	if weightKG <= 0 {
		return 0, missingField("weight_kg")
	}
	bonus, ok := activityWaterBonusML[level]
	if !ok {
		return 0, missingField("activity_level")
	}
	mult := climateCharacteristics[climate].WaterMultiplier
	if mult == 0 {
		mult = 1.0
	}
	raw := (weightKG*waterBaselineMLPerKG + bonus) * mult
	return int(math.Round(raw/50) * 50), nil
}
