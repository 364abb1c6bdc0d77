package metrics

import "math"

// activityMultipliers maps activity levels to their TDEE multiplier
// (WHO/FAO-style table). This is the single source of truth for TDEE
// scaling — validation of stored activity levels goes through
// ActivityLevel.Ordinal instead so the two stay independent concerns.
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.20,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.90,
}

// CalculateTDEE scales BMR by the activity multiplier and the climate's TDEE
// multiplier, rounded to the nearest whole kcal. Unknown activity levels are
// a data error — an unrecognized level would silently produce a zero TDEE.
func CalculateTDEE(bmr float64, level ActivityLevel, climate ClimateZone) (int, error) {
	mult, ok := activityMultipliers[level]
	if !ok {
		return 0, missingField("activity_level")
	}
	climateMult := climateCharacteristics[climate].TDEEMultiplier
	if climateMult == 0 {
		// Unknown climate zones scale by 1.0 rather than zeroing the result.
		climateMult = 1.0
	}
	return int(math.Round(bmr * mult * climateMult)), nil
}

// ActivityMultiplier exposes the multiplier for transparency output.
// Returns 0 for unknown levels.
func ActivityMultiplier(level ActivityLevel) float64 {
	return activityMultipliers[level]
}
