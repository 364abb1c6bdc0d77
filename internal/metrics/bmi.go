package metrics

import "math"

// BMIPopulation selects which cutoff table classifies a BMI value.
type BMIPopulation string

const (
	PopulationGeneral  BMIPopulation = "general"
	PopulationAsian    BMIPopulation = "asian"
	PopulationAfrican  BMIPopulation = "african"
	PopulationHispanic BMIPopulation = "hispanic"
	PopulationAthletic BMIPopulation = "athletic"
)

// HealthRisk is the tiered risk attached to a BMI category.
type HealthRisk string

const (
	RiskLow      HealthRisk = "low"
	RiskModerate HealthRisk = "moderate"
	RiskHigh     HealthRisk = "high"
	RiskVeryHigh HealthRisk = "very_high"
)

// BMI category names. The general population splits obese into three
// severity classes; every other population uses the single Obese band.
const (
	CategoryUnderweight = "Underweight"
	CategoryNormal      = "Normal"
	CategoryOverweight  = "Overweight"
	CategoryObese       = "Obese"
	CategoryObeseI      = "Obese Class I"
	CategoryObeseII     = "Obese Class II"
	CategoryObeseIII    = "Obese Class III"
)

// BMIBand is one contiguous classification band. UpperBound is exclusive; the
// band's lower bound is the previous band's UpperBound (the first band starts
// at 0). The final band's UpperBound is +Inf, so every population's table
// partitions (0, ∞) with no gaps or overlaps by construction.
type BMIBand struct {
	UpperBound float64    `json:"upper_bound"`
	Category   string     `json:"category"`
	Risk       HealthRisk `json:"risk"`
}

// bmiCutoffs holds the per-population cutoff tables.
//
// The source material carried two non-identical Asian tables (normal-max 22.9
// vs 23.0) plus a third path implying obese at 25. The WHO expert-consultation
// table (normal < 23.0, obese ≥ 27.5) is canonical here; see DESIGN.md.
var bmiCutoffs = map[BMIPopulation][]BMIBand{
	PopulationGeneral: {
		{UpperBound: 18.5, Category: CategoryUnderweight, Risk: RiskModerate},
		{UpperBound: 25.0, Category: CategoryNormal, Risk: RiskLow},
		{UpperBound: 30.0, Category: CategoryOverweight, Risk: RiskModerate},
		{UpperBound: 35.0, Category: CategoryObeseI, Risk: RiskHigh},
		{UpperBound: 40.0, Category: CategoryObeseII, Risk: RiskVeryHigh},
		{UpperBound: math.Inf(1), Category: CategoryObeseIII, Risk: RiskVeryHigh},
	},
	PopulationAsian: {
		{UpperBound: 18.5, Category: CategoryUnderweight, Risk: RiskModerate},
		{UpperBound: 23.0, Category: CategoryNormal, Risk: RiskLow},
		{UpperBound: 27.5, Category: CategoryOverweight, Risk: RiskHigh},
		{UpperBound: math.Inf(1), Category: CategoryObese, Risk: RiskVeryHigh},
	},
	PopulationAfrican: {
		{UpperBound: 18.5, Category: CategoryUnderweight, Risk: RiskModerate},
		{UpperBound: 26.0, Category: CategoryNormal, Risk: RiskLow},
		{UpperBound: 30.0, Category: CategoryOverweight, Risk: RiskModerate},
		{UpperBound: math.Inf(1), Category: CategoryObese, Risk: RiskHigh},
	},
	PopulationHispanic: {
		{UpperBound: 18.5, Category: CategoryUnderweight, Risk: RiskModerate},
		{UpperBound: 25.0, Category: CategoryNormal, Risk: RiskLow},
		{UpperBound: 29.0, Category: CategoryOverweight, Risk: RiskHigh},
		{UpperBound: math.Inf(1), Category: CategoryObese, Risk: RiskVeryHigh},
	},
	PopulationAthletic: {
		{UpperBound: 18.5, Category: CategoryUnderweight, Risk: RiskModerate},
		{UpperBound: 27.5, Category: CategoryNormal, Risk: RiskLow},
		{UpperBound: 32.5, Category: CategoryOverweight, Risk: RiskModerate},
		{UpperBound: math.Inf(1), Category: CategoryObese, Risk: RiskHigh},
	},
}

// athleticNote flags that BMI misclassifies muscular physiques.
const athleticNote = "BMI is unreliable at high muscle mass; prefer a body-fat-based assessment."

// BMIClassification is the full classification result for one BMI value.
type BMIClassification struct {
	BMI             float64       `json:"bmi"`
	Category        string        `json:"category"`
	Risk            HealthRisk    `json:"risk"`
	Population      BMIPopulation `json:"population"`
	Cutoffs         []BMIBand     `json:"cutoffs"`
	Recommendations []string      `json:"recommendations"`
	Note            string        `json:"note,omitempty"`
}

/* ─── Calculation and classification ─────────────────────────────────── */

// CalculateBMI is weight (kg) over squared height (m). Shared by every
// population variant; only classification differs per population.
func CalculateBMI(weightKG, heightCM float64) (float64, error) {
	if weightKG <= 0 {
		return 0, missingField("weight_kg")
	}
	if heightCM <= 0 {
		return 0, missingField("height_cm")
	}
	h := heightCM / 100
	return weightKG / (h * h), nil
}

// ClassifyBMI classifies a BMI value against the given population's cutoff
// table. Unknown populations use the general table.
func ClassifyBMI(bmi float64, population BMIPopulation) BMIClassification {
	bands, ok := bmiCutoffs[population]
	if !ok {
		population = PopulationGeneral
		bands = bmiCutoffs[PopulationGeneral]
	}

	var band BMIBand
	for _, b := range bands {
		if bmi < b.UpperBound {
			band = b
			break
		}
	}

	result := BMIClassification{
		BMI:             bmi,
		Category:        band.Category,
		Risk:            band.Risk,
		Population:      population,
		Cutoffs:         bands,
		Recommendations: bmiRecommendations(band.Category, population),
	}
	if population == PopulationAthletic {
		result.Note = athleticNote
	}
	return result
}

// PopulationCutoffs exposes a population's band table (general for unknown
// populations) for transparency output and table-invariant tests.
func PopulationCutoffs(population BMIPopulation) []BMIBand {
	if bands, ok := bmiCutoffs[population]; ok {
		return bands
	}
	return bmiCutoffs[PopulationGeneral]
}

// SelectBMIPopulation picks a cutoff table from the detected ethnicity and
// training profile. Trained lean athletes get the athletic table regardless
// of ethnicity, since standard cutoffs misread muscle as excess weight.
func SelectBMIPopulation(p UserProfile, ethnicity Ethnicity) BMIPopulation {
	bf, hasBF := p.bodyFat()
	if p.Experience == ExperienceElite || (p.Experience == ExperienceAdvanced && hasBF && bf < 15) {
		return PopulationAthletic
	}
	switch ethnicity {
	case EthnicityAsian:
		return PopulationAsian
	case EthnicityBlackAfrican:
		return PopulationAfrican
	case EthnicityHispanic:
		return PopulationHispanic
	default:
		return PopulationGeneral
	}
}

// bmiRecommendations returns 3-4 short actionable recommendations per
// category. The athletic table swaps the weight-centric advice for
// body-composition guidance.
func bmiRecommendations(category string, population BMIPopulation) []string {
	if population == PopulationAthletic {
		switch category {
		case CategoryUnderweight:
			return []string{
				"Increase daily calories with nutrient-dense foods.",
				"Confirm body-fat percentage before changing training load.",
				"Review recovery and sleep quality.",
			}
		case CategoryNormal:
			return []string{
				"Maintain current training and nutrition.",
				"Track body-fat percentage rather than scale weight.",
				"Re-test body composition every 8-12 weeks.",
			}
		default:
			return []string{
				"Use a body-fat measurement before interpreting this as excess fat.",
				"High BMI with low body fat is expected for muscular builds.",
				"Monitor blood pressure and resting heart rate instead.",
			}
		}
	}

	switch category {
	case CategoryUnderweight:
		return []string{
			"Add a modest calorie surplus of 300-500 kcal/day.",
			"Prioritize protein at each meal to support lean-mass gain.",
			"Add resistance training 2-3 times per week.",
			"Consult a clinician if weight loss was unintentional.",
		}
	case CategoryNormal:
		return []string{
			"Maintain current weight with balanced nutrition.",
			"Keep at least 150 minutes of moderate activity weekly.",
			"Re-check BMI after significant lifestyle changes.",
		}
	case CategoryOverweight:
		return []string{
			"Target a moderate deficit of 300-500 kcal/day.",
			"Increase daily movement; aim for 8,000+ steps.",
			"Emphasize protein and fiber to control appetite.",
			"Limit liquid calories and ultra-processed snacks.",
		}
	default: // all obese classes
		return []string{
			"Work with a clinician on a supervised weight-loss plan.",
			"Start with low-impact activity such as walking or swimming.",
			"Build a sustainable calorie deficit rather than crash dieting.",
			"Screen for blood pressure, glucose, and lipid markers.",
		}
	}
}
