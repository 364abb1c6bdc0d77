package metrics

import (
	"fmt"
	"math"
)

// baseMonthlyGainKG is the attainable monthly muscle gain (kg) by experience
// tier and gender. Rates halve roughly every tier as trainees approach their
// genetic ceiling. Other/unspecified genders use the male/female midpoint.
var baseMonthlyGainKG = map[ExperienceLevel]map[Gender]float64{
	ExperienceBeginner:     {GenderMale: 1.0, GenderFemale: 0.5},
	ExperienceIntermediate: {GenderMale: 0.5, GenderFemale: 0.25},
	ExperienceAdvanced:     {GenderMale: 0.25, GenderFemale: 0.125},
	ExperienceElite:        {GenderMale: 0.1, GenderFemale: 0.05},
}

// MuscleGainLimits reports the physiological gain-rate ceiling for a profile.
type MuscleGainLimits struct {
	MonthlyKG     float64 `json:"monthly_kg"`
	YearlyKG      float64 `json:"yearly_kg"`
	AgeAdjustment float64 `json:"age_adjustment"`
}

// MuscleGainLimit computes the age-adjusted monthly gain ceiling. Unknown
// experience tiers use the intermediate row, matching how the rest of the
// package treats unmapped enum values (conservative middle, never zero).
func MuscleGainLimit(p UserProfile) MuscleGainLimits {
	tier, ok := baseMonthlyGainKG[p.Experience]
	if !ok {
		tier = baseMonthlyGainKG[ExperienceIntermediate]
	}

	var base float64
	switch p.Gender {
	case GenderMale:
		base = tier[GenderMale]
	case GenderFemale:
		base = tier[GenderFemale]
	default:
		base = (tier[GenderMale] + tier[GenderFemale]) / 2
	}

	adj := ageGainAdjustment(p.Age)
	monthly := base * adj
	return MuscleGainLimits{
		MonthlyKG:     monthly,
		YearlyKG:      monthly * 12,
		AgeAdjustment: adj,
	}
}

// ageGainAdjustment scales gain rates by age: teens gain faster, rates taper
// from the 40s onward.
func ageGainAdjustment(age int) float64 {
	switch {
	case age > 0 && age < 20:
		return 1.15
	case age >= 60:
		return 0.70
	case age >= 50:
		return 0.80
	case age >= 40:
		return 0.90
	default:
		return 1.00
	}
}

// ValidateMuscleGainGoal compares the requested monthly gain rate against the
// profile's limit. Within the limit is a success; up to 1.3× is advisory
// (info) with a longer suggested timeline; beyond that is a warning with the
// limit-derived timeline.
func ValidateMuscleGainGoal(p UserProfile, targetGainKG float64, months int) GoalValidationResult {
	if targetGainKG <= 0 {
		return goalFieldError("target muscle gain must be positive")
	}
	if months <= 0 {
		return goalFieldError("timeline in months must be positive")
	}

	limits := MuscleGainLimit(p)
	rate := targetGainKG / float64(months)
	suggested := int(math.Ceil(targetGainKG / limits.MonthlyKG))

	switch {
	case rate <= limits.MonthlyKG:
		return GoalValidationResult{
			Valid:    true,
			Severity: SeveritySuccess,
			Message: fmt.Sprintf(
				"Gaining %.1f kg in %d months (%.2f kg/month) is within your attainable rate of %.2f kg/month.",
				targetGainKG, months, rate, limits.MonthlyKG),
			AchievementProbability: 80,
			MonthlyRateKG:          &rate,
		}
	case rate <= limits.MonthlyKG*1.3:
		return GoalValidationResult{
			Valid:    true,
			Severity: SeverityInfo,
			Message: fmt.Sprintf(
				"%.2f kg/month is slightly above your attainable rate of %.2f kg/month; expect some of the gain to be fat or take longer.",
				rate, limits.MonthlyKG),
			AchievementProbability: 50,
			Suggestions: []string{
				fmt.Sprintf("Extend the timeline to about %d months for lean gains.", suggested),
			},
			SuggestedMonths: &suggested,
			MonthlyRateKG:   &rate,
		}
	default:
		return GoalValidationResult{
			Valid:    false,
			Severity: SeverityWarning,
			Message: fmt.Sprintf(
				"%.2f kg/month is well beyond the physiological rate of %.2f kg/month for your experience level and age.",
				rate, limits.MonthlyKG),
			AchievementProbability: 20,
			Suggestions: []string{
				fmt.Sprintf("A realistic timeline for %.1f kg of muscle is about %d months.", targetGainKG, suggested),
				"Rapid scale-weight gain past this rate is mostly fat and water.",
			},
			SuggestedMonths: &suggested,
			MonthlyRateKG:   &rate,
		}
	}
}
