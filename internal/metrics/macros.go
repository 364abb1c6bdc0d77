package metrics

import (
	"fmt"
	"math"
)

// Calories per gram of each macronutrient.
const (
	kcalPerGramProtein = 4
	kcalPerGramCarb    = 4
	kcalPerGramFat     = 9
)

// goalProteinPerKG is the protein target in g/kg bodyweight per fitness goal.
// Fat loss runs highest to preserve lean mass in a deficit.
var goalProteinPerKG = map[FitnessGoal]float64{
	GoalFatLoss:     2.4,
	GoalMuscleGain:  2.0,
	GoalMaintenance: 1.8,
	GoalAthletic:    2.2,
	GoalEndurance:   1.6,
	GoalStrength:    2.2,
}

// defaultProteinPerKG covers goals without an explicit entry (e.g. recomp).
const defaultProteinPerKG = 1.8

// dietProteinFactor scales the protein target for plant-based diets to
// compensate for lower plant-protein bioavailability.
var dietProteinFactor = map[DietType]float64{
	DietOmnivore:      1.00,
	DietPescatarian:   1.00,
	DietKeto:          1.00,
	DietLowCarb:       1.00,
	DietPaleo:         1.00,
	DietMediterranean: 1.00,
	DietVegetarian:    1.15,
	DietVegan:         1.25,
}

// dietFatPctOfTotal fixes fat as a share of total calories for diets that
// define themselves by fat intake. Diets not listed here split the
// post-protein remainder 30% fat / 70% carbs instead.
var dietFatPctOfTotal = map[DietType]float64{
	DietLowCarb:       0.45,
	DietPaleo:         0.35,
	DietMediterranean: 0.35,
}

// Keto fixes both fat and carbs as shares of total calories; protein is
// whatever remains, overriding the g/kg target.
const (
	ketoFatPct  = 0.70
	ketoCarbPct = 0.05
)

// MacroSplit is the daily macronutrient allocation. Gram values and percent
// fields are rounded integers; percents are of total calories.
type MacroSplit struct {
	Calories   int `json:"calories"`
	ProteinG   int `json:"protein_g"`
	FatG       int `json:"fat_g"`
	CarbsG     int `json:"carbs_g"`
	ProteinPct int `json:"protein_pct"`
	FatPct     int `json:"fat_pct"`
	CarbPct    int `json:"carb_pct"`
}

// CalculateMacros allocates the TDEE across protein, fat, and carbs.
//
// Protein (g) = weight · goal multiplier · diet factor, except keto where
// protein is the calorie remainder after the fixed fat/carb shares. A protein
// allocation at or above total calories is a configuration error (goal/diet
// tables out of line with the calorie budget), not a user mistake.
func CalculateMacros(p UserProfile, totalCalories int) (MacroSplit, error) {
	if p.WeightKG <= 0 {
		return MacroSplit{}, missingField("weight_kg")
	}
	if totalCalories <= 0 {
		return MacroSplit{}, fmt.Errorf("total calories must be positive, got %d", totalCalories)
	}
	total := float64(totalCalories)

	if p.DietType == DietKeto {
		fatCal := total * ketoFatPct
		carbCal := total * ketoCarbPct
		proteinCal := total - fatCal - carbCal
		return buildSplit(totalCalories, proteinCal, fatCal, carbCal), nil
	}

	goalMult, ok := goalProteinPerKG[p.Goal]
	if !ok {
		goalMult = defaultProteinPerKG
	}
	dietMult, ok := dietProteinFactor[p.DietType]
	if !ok {
		dietMult = 1.0
	}

	proteinG := p.WeightKG * goalMult * dietMult
	proteinCal := proteinG * kcalPerGramProtein
	if proteinCal >= total {
		return MacroSplit{}, fmt.Errorf(
			"protein allocation (%.0f kcal) meets or exceeds total calories (%d): goal/diet multipliers are misconfigured for this profile",
			proteinCal, totalCalories)
	}

	var fatCal, carbCal float64
	if fatPct, fixed := dietFatPctOfTotal[p.DietType]; fixed {
		fatCal = total * fatPct
		carbCal = total - proteinCal - fatCal
		if carbCal < 0 {
			return MacroSplit{}, fmt.Errorf(
				"fixed fat share plus protein exceeds total calories for diet %q", p.DietType)
		}
	} else {
		remainder := total - proteinCal
		fatCal = remainder * 0.30
		carbCal = remainder * 0.70
	}

	return buildSplit(totalCalories, proteinCal, fatCal, carbCal), nil
}

// proteinTargetPerKG returns the effective protein target in g/kg bodyweight,
// unrounded. Table-derived (goal × diet) for most diets; keto's target is
// implied by the calorie remainder instead, so it depends on the budget.
func proteinTargetPerKG(p UserProfile, totalCalories int) float64 {
	if p.WeightKG <= 0 {
		return 0
	}
	if p.DietType == DietKeto {
		proteinCal := float64(totalCalories) * (1 - ketoFatPct - ketoCarbPct)
		return proteinCal / kcalPerGramProtein / p.WeightKG
	}
	goalMult, ok := goalProteinPerKG[p.Goal]
	if !ok {
		goalMult = defaultProteinPerKG
	}
	dietMult, ok := dietProteinFactor[p.DietType]
	if !ok {
		dietMult = 1.0
	}
	return goalMult * dietMult
}

// buildSplit converts calorie allocations into rounded gram and percent fields.
func buildSplit(totalCalories int, proteinCal, fatCal, carbCal float64) MacroSplit {
	total := float64(totalCalories)
	return MacroSplit{
		Calories:   totalCalories,
		ProteinG:   int(math.Round(proteinCal / kcalPerGramProtein)),
		FatG:       int(math.Round(fatCal / kcalPerGramFat)),
		CarbsG:     int(math.Round(carbCal / kcalPerGramCarb)),
		ProteinPct: int(math.Round(proteinCal / total * 100)),
		FatPct:     int(math.Round(fatCal / total * 100)),
		CarbPct:    int(math.Round(carbCal / total * 100)),
	}
}
