package metrics

import (
	"math"
	"testing"
)

// TestCalculateMacros_ProteinTargets verifies protein (g) = weight · goal
// multiplier · diet factor for representative goal/diet combinations.
func TestCalculateMacros_ProteinTargets(t *testing.T) {
	cases := []struct {
		name string
		goal FitnessGoal
		diet DietType
		want float64 // grams for 70kg
	}{
		{"fat loss omnivore", GoalFatLoss, DietOmnivore, 70 * 2.4},
		{"muscle gain omnivore", GoalMuscleGain, DietOmnivore, 70 * 2.0},
		{"maintenance vegetarian", GoalMaintenance, DietVegetarian, 70 * 1.8 * 1.15},
		{"fat loss vegan", GoalFatLoss, DietVegan, 70 * 2.4 * 1.25},
		{"endurance pescatarian", GoalEndurance, DietPescatarian, 70 * 1.6},
		{"strength paleo", GoalStrength, DietPaleo, 70 * 2.2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := baseProfile()
			p.Goal = tc.goal
			p.DietType = tc.diet
			split, err := CalculateMacros(p, 2800)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(float64(split.ProteinG)-tc.want) > 1 {
				t.Errorf("protein = %dg, want ~%.0fg", split.ProteinG, tc.want)
			}
		})
	}
}

// TestCalculateMacros_KetoSplit verifies keto fixes 70% fat / 5% carbs of
// total calories with protein taking the 25% remainder.
func TestCalculateMacros_KetoSplit(t *testing.T) {
	p := baseProfile()
	p.DietType = DietKeto
	split, err := CalculateMacros(p, 2000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if split.FatPct != 70 {
		t.Errorf("keto fat pct = %d, want 70", split.FatPct)
	}
	if split.CarbPct != 5 {
		t.Errorf("keto carb pct = %d, want 5", split.CarbPct)
	}
	if split.ProteinPct != 25 {
		t.Errorf("keto protein pct = %d, want 25", split.ProteinPct)
	}
	// 2000·0.70/9 ≈ 156g fat, 2000·0.05/4 = 25g carbs
	if split.FatG != 156 {
		t.Errorf("keto fat = %dg, want 156", split.FatG)
	}
	if split.CarbsG != 25 {
		t.Errorf("keto carbs = %dg, want 25", split.CarbsG)
	}
}

// TestCalculateMacros_FixedFatDiets verifies low-carb fixes fat at 45% of
// total calories and paleo/mediterranean at 35%.
func TestCalculateMacros_FixedFatDiets(t *testing.T) {
	cases := []struct {
		diet DietType
		want int
	}{
		{DietLowCarb, 45},
		{DietPaleo, 35},
		{DietMediterranean, 35},
	}
	for _, tc := range cases {
		t.Run(string(tc.diet), func(t *testing.T) {
			p := baseProfile()
			p.DietType = tc.diet
			split, err := CalculateMacros(p, 2800)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if split.FatPct != tc.want {
				t.Errorf("fat pct = %d, want %d", split.FatPct, tc.want)
			}
		})
	}
}

// TestCalculateMacros_StandardRemainderSplit verifies non-archetype diets
// split the post-protein remainder 30% fat / 70% carbs.
func TestCalculateMacros_StandardRemainderSplit(t *testing.T) {
	p := baseProfile() // omnivore, maintenance: 70·1.8 = 126g protein = 504 kcal
	split, err := CalculateMacros(p, 2504)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Remainder 2000 kcal: 600 fat (67g), 1400 carbs (350g).
	if split.FatG != 67 {
		t.Errorf("fat = %dg, want 67", split.FatG)
	}
	if split.CarbsG != 350 {
		t.Errorf("carbs = %dg, want 350", split.CarbsG)
	}
}

// TestCalculateMacros_ProteinExceedsCalories verifies a protein allocation at
// or above total calories is rejected as a configuration error.
func TestCalculateMacros_ProteinExceedsCalories(t *testing.T) {
	p := baseProfile()
	p.Goal = GoalFatLoss
	p.DietType = DietVegan // 70 · 2.4 · 1.25 = 210g = 840 kcal
	if _, err := CalculateMacros(p, 800); err == nil {
		t.Error("expected configuration error when protein calories exceed total")
	}
}

// TestCalculateMacros_UnmappedGoalUsesDefault verifies recomp (no explicit
// protein entry) falls back to the maintenance-grade default rather than zero.
func TestCalculateMacros_UnmappedGoalUsesDefault(t *testing.T) {
	p := baseProfile()
	p.Goal = GoalRecomp
	split, err := CalculateMacros(p, 2800)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(float64(split.ProteinG)-70*1.8) > 1 {
		t.Errorf("recomp protein = %dg, want ~%.0fg", split.ProteinG, 70*1.8)
	}
}

// TestCalculateMacros_PercentsSumNear100 verifies the rounded percent fields
// stay within a point of 100 across diets.
func TestCalculateMacros_PercentsSumNear100(t *testing.T) {
	diets := []DietType{
		DietOmnivore, DietVegetarian, DietVegan, DietPescatarian,
		DietKeto, DietLowCarb, DietPaleo, DietMediterranean,
	}
	for _, diet := range diets {
		p := baseProfile()
		p.DietType = diet
		split, err := CalculateMacros(p, 2600)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", diet, err)
		}
		sum := split.ProteinPct + split.FatPct + split.CarbPct
		if sum < 99 || sum > 101 {
			t.Errorf("%s percents sum to %d, want 99-101", diet, sum)
		}
	}
}
