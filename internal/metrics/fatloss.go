package metrics

import (
	"fmt"
	"math"
)

// ValidateFatLossGoal grades a weight-loss request by its implied weekly rate.
// Tiers: ≤1.0 kg/week success; ≤1.5 info; ≤2.0 warning with a timeline
// suggestion; above 2.0 is a supervised-only warning for BMI>35 and an error
// otherwise, with alternate timelines at 0.75 and 1.0 kg/week.
func ValidateFatLossGoal(p UserProfile, targetWeightKG float64, weeks int) GoalValidationResult {
	if targetWeightKG <= 0 {
		return goalFieldError("target weight must be positive")
	}
	if weeks <= 0 {
		return goalFieldError("timeline in weeks must be positive")
	}
	if targetWeightKG >= p.WeightKG {
		return goalFieldError("target weight must be below current weight for a fat-loss goal")
	}

	lossKG := p.WeightKG - targetWeightKG
	rate := lossKG / float64(weeks)

	bmi, err := CalculateBMI(p.WeightKG, p.HeightCM)
	if err != nil {
		return goalFieldError(err.Error())
	}

	switch {
	case rate <= 1.0:
		return GoalValidationResult{
			Valid:    true,
			Severity: SeveritySuccess,
			Message: fmt.Sprintf(
				"Losing %.1f kg in %d weeks (%.2f kg/week) is a sustainable rate.",
				lossKG, weeks, rate),
			AchievementProbability: 85,
			WeeklyRateKG:           &rate,
		}
	case rate <= 1.5:
		return GoalValidationResult{
			Valid:    true,
			Severity: SeverityInfo,
			Message: fmt.Sprintf(
				"%.2f kg/week is aggressive but workable with high protein and resistance training.",
				rate),
			AchievementProbability: 60,
			Suggestions: []string{
				"Keep protein at or above 2.2 g/kg to protect lean mass.",
				"Schedule a maintenance week every 6-8 weeks.",
			},
			WeeklyRateKG: &rate,
		}
	case rate <= 2.0:
		suggested := suggestedWeeksAt(lossKG, 1.0)
		return GoalValidationResult{
			Valid:    true,
			Severity: SeverityWarning,
			Message: fmt.Sprintf(
				"%.2f kg/week risks muscle loss and rebound; most people cannot sustain it.",
				rate),
			AchievementProbability: 40,
			Suggestions: []string{
				fmt.Sprintf("At 1.0 kg/week the same loss takes about %d weeks.", suggested),
			},
			SuggestedWeeks: &suggested,
			WeeklyRateKG:   &rate,
		}
	default:
		if bmi > 35 {
			return GoalValidationResult{
				Valid:    false,
				Severity: SeverityWarning,
				Message: fmt.Sprintf(
					"%.2f kg/week is only appropriate under medical supervision, even at higher body weights.",
					rate),
				AchievementProbability: 30,
				Suggestions: []string{
					"Discuss a supervised program with a clinician before starting.",
				},
				WeeklyRateKG: &rate,
			}
		}
		at075 := suggestedWeeksAt(lossKG, 0.75)
		at100 := suggestedWeeksAt(lossKG, 1.0)
		return GoalValidationResult{
			Valid:    false,
			Severity: SeverityError,
			Message: fmt.Sprintf(
				"%.2f kg/week is not physiologically realistic at your body weight.",
				rate),
			AchievementProbability: 10,
			Suggestions: []string{
				fmt.Sprintf("At 0.75 kg/week: about %d weeks.", at075),
				fmt.Sprintf("At 1.0 kg/week: about %d weeks.", at100),
			},
			SuggestedWeeks: &at100,
			WeeklyRateKG:   &rate,
		}
	}
}

// suggestedWeeksAt converts a total loss into a timeline at the given
// weekly rate, rounded up to whole weeks.
func suggestedWeeksAt(lossKG, weeklyRate float64) int {
	return int(math.Ceil(lossKG / weeklyRate))
}

/* ─── Safe deficit ───────────────────────────────────────────────────── */

// deficit ceilings (kcal/day) by BMI tier. Higher body fat tolerates a larger
// deficit before lean-mass loss dominates.
func bmiDeficitCeiling(bmi float64) float64 {
	switch {
	case bmi < 25:
		return 750
	case bmi < 30:
		return 1000
	case bmi < 35:
		return 1200
	default:
		return 1500
	}
}

// deficitActivityAdjustment scales the ceiling by activity level: sedentary
// dieters get less headroom (lower TDEE, less training to protect muscle),
// highly active ones slightly more.
var deficitActivityAdjustment = map[ActivityLevel]float64{
	ActivitySedentary:  0.80,
	ActivityLight:      0.90,
	ActivityModerate:   1.00,
	ActivityActive:     1.10,
	ActivityVeryActive: 1.20,
}

// CalculateSafeDeficit bounds a daily calorie deficit by BMI tier and
// activity level, and never exceeds 40% of TDEE.
func CalculateSafeDeficit(bmi float64, tdee int, level ActivityLevel) int {
	ceiling := bmiDeficitCeiling(bmi)
	if adj, ok := deficitActivityAdjustment[level]; ok {
		ceiling *= adj
	}
	maxByTDEE := 0.40 * float64(tdee)
	if ceiling > maxByTDEE {
		ceiling = maxByTDEE
	}
	if ceiling < 0 {
		ceiling = 0
	}
	return int(math.Round(ceiling))
}
