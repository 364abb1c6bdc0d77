package metrics

import "testing"

// TestCalculateHealthScore_FullInputs verifies a fully-known, fully-healthy
// input scores 100: normal BMI (20) + very active (20) + hydration met (15) +
// nutrition met (25) + excellent VO2max (20).
func TestCalculateHealthScore_FullInputs(t *testing.T) {
	got := CalculateHealthScore(HealthScoreInput{
		BMI:           22,
		ActivityLevel: ActivityVeryActive,
		VO2Max:        floatPtr(55),
		HydrationPct:  floatPtr(100),
		NutritionPct:  floatPtr(95),
		Age:           30,
		Gender:        GenderMale,
	})
	if got.Score != 100 {
		t.Errorf("score = %d, want 100", got.Score)
	}
	if got.Rating != "excellent" {
		t.Errorf("rating = %q, want excellent", got.Rating)
	}
	if len(got.Categories) != 5 {
		t.Errorf("got %d categories, want 5", len(got.Categories))
	}
	if len(got.Recommendations) != 0 {
		t.Errorf("unexpected recommendations for a perfect score: %v", got.Recommendations)
	}
}

// TestCalculateHealthScore_MissingInputsNormalized verifies nil hydration and
// nutrition shrink the denominator instead of scoring zero: 20 + 15 + 10
// neutral cardio out of 60 achievable → 75.
func TestCalculateHealthScore_MissingInputsNormalized(t *testing.T) {
	got := CalculateHealthScore(HealthScoreInput{
		BMI:           22,
		ActivityLevel: ActivityModerate,
		Age:           30,
		Gender:        GenderMale,
	})
	if got.Score != 75 {
		t.Errorf("score = %d, want 75 (45/60 normalized)", got.Score)
	}
	if got.Rating != "good" {
		t.Errorf("rating = %q, want good", got.Rating)
	}
	if len(got.Categories) != 3 {
		t.Errorf("got %d categories, want 3 (hydration and nutrition skipped)", len(got.Categories))
	}
}

// TestCalculateHealthScore_NilVO2IsNeutral verifies a missing VO2max keeps the
// cardio category at its neutral 10 points rather than dropping it.
func TestCalculateHealthScore_NilVO2IsNeutral(t *testing.T) {
	got := CalculateHealthScore(HealthScoreInput{
		BMI:           22,
		ActivityLevel: ActivityModerate,
		Age:           30,
		Gender:        GenderMale,
	})
	var cardio *CategoryScore
	for i := range got.Categories {
		if got.Categories[i].Name == "cardio" {
			cardio = &got.Categories[i]
		}
	}
	if cardio == nil {
		t.Fatal("cardio category missing")
	}
	if cardio.Points != 10 {
		t.Errorf("cardio points = %.0f, want neutral 10", cardio.Points)
	}
}

// TestCalculateHealthScore_BMIBands verifies representative BMI point awards.
func TestCalculateHealthScore_BMIBands(t *testing.T) {
	cases := []struct {
		bmi  float64
		want float64
	}{
		{22.0, 20},
		{26.0, 14},
		{29.0, 10},
		{31.0, 6},
		{33.0, 3},
		{36.0, 0},
		{18.0, 12},
		{16.0, 5},
		{14.0, 0},
	}
	for _, tc := range cases {
		if got := scoreBMI(tc.bmi); got != tc.want {
			t.Errorf("scoreBMI(%.1f) = %.0f, want %.0f", tc.bmi, got, tc.want)
		}
	}
}

// TestCalculateHealthScore_Recommendations verifies weak categories each get a
// recommendation, capped at five.
func TestCalculateHealthScore_Recommendations(t *testing.T) {
	got := CalculateHealthScore(HealthScoreInput{
		BMI:           36, // 0/20
		ActivityLevel: ActivitySedentary,
		VO2Max:        floatPtr(20), // Below Average
		HydrationPct:  floatPtr(30),
		NutritionPct:  floatPtr(30),
		Age:           30,
		Gender:        GenderMale,
	})
	if len(got.Recommendations) != 5 {
		t.Errorf("got %d recommendations, want 5 (every category weak)", len(got.Recommendations))
	}
	if got.Rating != "poor" {
		t.Errorf("rating = %q, want poor", got.Rating)
	}
}

// TestScoreRating_Boundaries verifies the rating thresholds at 90/80/70/60.
func TestScoreRating_Boundaries(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{95, "excellent"},
		{90, "excellent"},
		{89, "very_good"},
		{80, "very_good"},
		{79, "good"},
		{70, "good"},
		{69, "fair"},
		{60, "fair"},
		{59, "poor"},
	}
	for _, tc := range cases {
		if got := scoreRating(tc.score); got != tc.want {
			t.Errorf("scoreRating(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}
