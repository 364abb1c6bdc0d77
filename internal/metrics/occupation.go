package metrics

import "fmt"

// occupationMinimumActivity maps each occupation to the lowest activity level
// that is physiologically plausible for it. A warehouse worker who selects
// "sedentary" would get a TDEE far below reality, so the profile layer should
// reject the combination before it reaches the calculators.
var occupationMinimumActivity = map[Occupation]ActivityLevel{
	OccupationDesk:           ActivitySedentary,
	OccupationLightActive:    ActivityLight,
	OccupationModerateActive: ActivityModerate,
	OccupationHeavyLabor:     ActivityActive,
	OccupationVeryActive:     ActivityVeryActive,
}

// ValidateActivityLevel checks a selected activity level against the
// occupation's minimum on the 5-level ordinal scale. Unknown occupations
// impose no minimum. Returns ok=false with a user-facing message when the
// selected level falls below the minimum.
func ValidateActivityLevel(occupation Occupation, level ActivityLevel) (bool, string) {
	if level.Ordinal() < 0 {
		return false, fmt.Sprintf("unknown activity level %q", level)
	}
	min, ok := occupationMinimumActivity[occupation]
	if !ok {
		return true, ""
	}
	if level.Ordinal() < min.Ordinal() {
		return false, fmt.Sprintf(
			"activity level %q is below the minimum %q expected for a %s occupation",
			level, min, occupation)
	}
	return true, ""
}
