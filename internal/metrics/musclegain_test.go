package metrics

import (
	"math"
	"testing"
)

// gainProfile builds a muscle-gain profile for limiter tests.
func gainProfile(gender Gender, age int, exp ExperienceLevel) UserProfile {
	p := baseProfile()
	p.Gender = gender
	p.Age = age
	p.Experience = exp
	p.Goal = GoalMuscleGain
	return p
}

// TestMuscleGainLimit_BaseRates verifies the experience×gender base table at
// an age with no adjustment.
func TestMuscleGainLimit_BaseRates(t *testing.T) {
	cases := []struct {
		gender Gender
		exp    ExperienceLevel
		want   float64
	}{
		{GenderMale, ExperienceBeginner, 1.0},
		{GenderFemale, ExperienceBeginner, 0.5},
		{GenderMale, ExperienceIntermediate, 0.5},
		{GenderFemale, ExperienceIntermediate, 0.25},
		{GenderMale, ExperienceAdvanced, 0.25},
		{GenderFemale, ExperienceAdvanced, 0.125},
		{GenderMale, ExperienceElite, 0.1},
		{GenderFemale, ExperienceElite, 0.05},
	}
	for _, tc := range cases {
		got := MuscleGainLimit(gainProfile(tc.gender, 30, tc.exp))
		if math.Abs(got.MonthlyKG-tc.want) > 0.001 {
			t.Errorf("%s/%s limit = %.3f, want %.3f", tc.gender, tc.exp, got.MonthlyKG, tc.want)
		}
	}
}

// TestMuscleGainLimit_AgeAdjustments verifies the age multipliers: ×1.15
// under 20, ×0.9 in the 40s, ×0.8 in the 50s, ×0.7 at 60+.
func TestMuscleGainLimit_AgeAdjustments(t *testing.T) {
	cases := []struct {
		age  int
		want float64
	}{
		{18, 1.15},
		{30, 1.00},
		{45, 0.90},
		{55, 0.80},
		{65, 0.70},
	}
	for _, tc := range cases {
		got := MuscleGainLimit(gainProfile(GenderMale, tc.age, ExperienceBeginner))
		if math.Abs(got.MonthlyKG-tc.want) > 0.001 {
			t.Errorf("age %d limit = %.3f, want %.3f", tc.age, got.MonthlyKG, tc.want)
		}
		if math.Abs(got.AgeAdjustment-tc.want) > 0.001 {
			t.Errorf("age %d adjustment = %.2f, want %.2f", tc.age, got.AgeAdjustment, tc.want)
		}
	}
}

// TestMuscleGainLimit_OtherGenderAveraged verifies other/unspecified genders
// get the male/female midpoint.
func TestMuscleGainLimit_OtherGenderAveraged(t *testing.T) {
	got := MuscleGainLimit(gainProfile(GenderOther, 30, ExperienceBeginner))
	if math.Abs(got.MonthlyKG-0.75) > 0.001 {
		t.Errorf("other-gender beginner limit = %.3f, want 0.75", got.MonthlyKG)
	}
}

/* ─── Goal validation tiers ──────────────────────────────────────────── */

// TestValidateMuscleGainGoal_WithinLimit verifies the at-the-limit case: beginner
// male targeting 10 kg in 10 months (1.0 kg/month at a 1.0 limit) succeeds
// with probability 80.
func TestValidateMuscleGainGoal_WithinLimit(t *testing.T) {
	got := ValidateMuscleGainGoal(gainProfile(GenderMale, 30, ExperienceBeginner), 10, 10)
	if !got.Valid {
		t.Error("expected valid result at the base limit")
	}
	if got.Severity != SeveritySuccess {
		t.Errorf("severity = %s, want success", got.Severity)
	}
	if got.AchievementProbability != 80 {
		t.Errorf("probability = %d, want 80", got.AchievementProbability)
	}
}

// TestValidateMuscleGainGoal_SlightlyOver verifies the info tier up to 1.3×
// the limit, with a longer suggested timeline.
func TestValidateMuscleGainGoal_SlightlyOver(t *testing.T) {
	// 6 kg in 5 months = 1.2 kg/month vs limit 1.0 → within 1.3×.
	got := ValidateMuscleGainGoal(gainProfile(GenderMale, 30, ExperienceBeginner), 6, 5)
	if !got.Valid {
		t.Error("info tier should still be valid")
	}
	if got.Severity != SeverityInfo {
		t.Errorf("severity = %s, want info", got.Severity)
	}
	if got.AchievementProbability != 50 {
		t.Errorf("probability = %d, want 50", got.AchievementProbability)
	}
	if got.SuggestedMonths == nil || *got.SuggestedMonths != 6 {
		t.Errorf("suggested months = %v, want 6", got.SuggestedMonths)
	}
}

// TestValidateMuscleGainGoal_Unrealistic verifies the warning tier beyond
// 1.3× the limit with the limit-derived timeline.
func TestValidateMuscleGainGoal_Unrealistic(t *testing.T) {
	// Intermediate male: limit 0.5 kg/month. 10 kg in 5 months = 2.0 kg/month.
	got := ValidateMuscleGainGoal(gainProfile(GenderMale, 30, ExperienceIntermediate), 10, 5)
	if got.Valid {
		t.Error("expected invalid result beyond 1.3× the limit")
	}
	if got.Severity != SeverityWarning {
		t.Errorf("severity = %s, want warning", got.Severity)
	}
	if got.AchievementProbability != 20 {
		t.Errorf("probability = %d, want 20", got.AchievementProbability)
	}
	if got.SuggestedMonths == nil || *got.SuggestedMonths != 20 {
		t.Errorf("suggested months = %v, want 20 (10kg at 0.5/month)", got.SuggestedMonths)
	}
}

// TestValidateMuscleGainGoal_BadInputs verifies non-positive targets and
// timelines come back as severity=error results, not panics or Go errors.
func TestValidateMuscleGainGoal_BadInputs(t *testing.T) {
	p := gainProfile(GenderMale, 30, ExperienceBeginner)
	for _, tc := range []struct {
		name   string
		gain   float64
		months int
	}{
		{"zero gain", 0, 10},
		{"negative gain", -5, 10},
		{"zero months", 5, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := ValidateMuscleGainGoal(p, tc.gain, tc.months)
			if got.Valid || got.Severity != SeverityError {
				t.Errorf("got valid=%v severity=%s, want invalid error", got.Valid, got.Severity)
			}
		})
	}
}
