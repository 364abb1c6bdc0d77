package metrics

import (
	"fmt"
	"math"
	"time"
)

// CalculationBreakdown is the transparency record attached to every result:
// the raw inputs behind each derived number, so a UI can show its work.
type CalculationBreakdown struct {
	RawBMR                 float64 `json:"raw_bmr"`
	ActivityMultiplier     float64 `json:"activity_multiplier"`
	ClimateTDEEMultiplier  float64 `json:"climate_tdee_multiplier"`
	ClimateWaterMultiplier float64 `json:"climate_water_multiplier"`
	WaterBaseML            float64 `json:"water_base_ml"`
	WaterActivityBonusML   float64 `json:"water_activity_bonus_ml"`
	ProteinPerKG           float64 `json:"protein_per_kg"`
}

// ComprehensiveHealthMetrics is the aggregate output of the full pipeline.
// Heart-rate zones and VO2max are present only when a resting heart rate was
// supplied; muscle-gain limits only for a muscle-gain goal.
type ComprehensiveHealthMetrics struct {
	BMR               int                  `json:"bmr"` // kcal/day, rounded
	BMI               float64              `json:"bmi"`
	BMIClassification BMIClassification    `json:"bmi_classification"`
	TDEE              int                  `json:"tdee"`     // kcal/day
	WaterML           int                  `json:"water_ml"` // ml/day
	Macros            MacroSplit           `json:"macros"`
	HeartRateZones    *HeartRateZones      `json:"heart_rate_zones,omitempty"`
	VO2Max            *VO2MaxEstimate      `json:"vo2_max,omitempty"`
	HealthScore       *HealthScore         `json:"health_score,omitempty"`
	MuscleGain        *MuscleGainLimits    `json:"muscle_gain,omitempty"`
	Climate           ClimateDetection     `json:"climate"`
	Ethnicity         EthnicityDetection   `json:"ethnicity"`
	Formula           FormulaSelection     `json:"formula"`
	Breakdown         CalculationBreakdown `json:"breakdown"`
}

// CalculateAllMetrics runs the full pipeline: context detection, formula
// selection, the core calculators, then the conditional advanced metrics.
// Pure and deterministic — identical profiles produce identical results.
func CalculateAllMetrics(p UserProfile) (*ComprehensiveHealthMetrics, error) {
	climate := DetectClimate(p.Country, p.State)
	ethnicity := DetectEthnicity(p.Country, p.State)
	selection := SelectBMRFormula(p)

	rawBMR, err := CalculateBMR(p, selection.Formula)
	if err != nil {
		return nil, err
	}

	bmi, err := CalculateBMI(p.WeightKG, p.HeightCM)
	if err != nil {
		return nil, err
	}
	population := SelectBMIPopulation(p, ethnicity.Ethnicity)
	classification := ClassifyBMI(bmi, population)

	tdee, err := CalculateTDEE(rawBMR, p.ActivityLevel, climate.Zone)
	if err != nil {
		return nil, err
	}

	water, err := CalculateWaterTarget(p.WeightKG, p.ActivityLevel, climate.Zone)
	if err != nil {
		return nil, err
	}

	macros, err := CalculateMacros(p, tdee)
	if err != nil {
		return nil, err
	}

	m := &ComprehensiveHealthMetrics{
		BMR:               roundKcal(rawBMR),
		BMI:               bmi,
		BMIClassification: classification,
		TDEE:              tdee,
		WaterML:           water,
		Macros:            macros,
		Climate:           climate,
		Ethnicity:         ethnicity,
		Formula:           selection,
		Breakdown: CalculationBreakdown{
			RawBMR:                 rawBMR,
			ActivityMultiplier:     ActivityMultiplier(p.ActivityLevel),
			ClimateTDEEMultiplier:  climate.Characteristics.TDEEMultiplier,
			ClimateWaterMultiplier: climate.Characteristics.WaterMultiplier,
			WaterBaseML:            p.WeightKG * waterBaselineMLPerKG,
			WaterActivityBonusML:   activityWaterBonusML[p.ActivityLevel],
			ProteinPerKG:           proteinTargetPerKG(p, tdee),
		},
	}

	// Cardio metrics only when a resting heart rate is available.
	var vo2Value *float64
	if p.RestingHeartRate != nil {
		zones, err := CalculateHeartRateZones(p)
		if err != nil {
			return nil, err
		}
		m.HeartRateZones = zones

		vo2, err := EstimateVO2Max(p)
		if err != nil {
			return nil, err
		}
		m.VO2Max = vo2
		vo2Value = &vo2.Value
	}

	// Hydration/nutrition intake is unknown inside the pipeline (the core
	// has no consumption data), so those score categories are skipped.
	score := CalculateHealthScore(HealthScoreInput{
		BMI:           bmi,
		ActivityLevel: p.ActivityLevel,
		VO2Max:        vo2Value,
		Age:           p.Age,
		Gender:        p.Gender,
	})
	m.HealthScore = &score

	if p.Goal == GoalMuscleGain {
		limits := MuscleGainLimit(p)
		m.MuscleGain = &limits
	}

	return m, nil
}

// RecalculateMetrics reruns the pipeline for a changed profile. It exists as
// a named operation so callers express intent; it is CalculateAllMetrics.
func RecalculateMetrics(p UserProfile) (*ComprehensiveHealthMetrics, error) {
	return CalculateAllMetrics(p)
}

/* ─── Goal validation dispatch ───────────────────────────────────────── */

// ValidateGoal dispatches a goal request to the matching validator.
// Maintenance and recomposition goals are always valid. Missing goal-specific
// fields come back as severity=error results, never as Go errors.
func ValidateGoal(p UserProfile, goal GoalInput) GoalValidationResult {
	switch goal.Type {
	case GoalTypeFatLoss:
		if goal.TargetWeightKG == nil {
			return goalFieldError("fat-loss goals require a target weight")
		}
		if goal.TimelineWeeks == nil {
			return goalFieldError("fat-loss goals require a timeline in weeks")
		}
		return ValidateFatLossGoal(p, *goal.TargetWeightKG, *goal.TimelineWeeks)

	case GoalTypeMuscleGain:
		if goal.TargetGainKG == nil {
			return goalFieldError("muscle-gain goals require a target gain")
		}
		if goal.TimelineMonths == nil {
			return goalFieldError("muscle-gain goals require a timeline in months")
		}
		return ValidateMuscleGainGoal(p, *goal.TargetGainKG, *goal.TimelineMonths)

	case GoalTypeMaintenance, GoalTypeRecomp:
		return GoalValidationResult{
			Valid:                  true,
			Severity:               SeveritySuccess,
			Message:                "Maintenance and recomposition goals have no rate limits; your targets are already set accordingly.",
			AchievementProbability: 90,
		}
	}
	return goalFieldError(fmt.Sprintf("unknown goal type %q", goal.Type))
}

/* ─── Export ─────────────────────────────────────────────────────────── */

// ExportSummary is the display-ready subset of a metrics result.
type ExportSummary struct {
	DailyCalories int     `json:"dailyCalories"`
	ProteinG      int     `json:"protein"`
	CarbsG        int     `json:"carbs"`
	FatG          int     `json:"fat"`
	Water         string  `json:"water"` // "X.XL"
	BMI           float64 `json:"bmi"`   // 1 decimal
	BMR           int     `json:"bmr"`
}

// ExportContext names the detected context behind the summary numbers.
type ExportContext struct {
	Climate   ClimateZone `json:"climate"`
	Ethnicity Ethnicity   `json:"ethnicity"`
	Formula   BMRFormula  `json:"formula"`
}

// MetricsExport is the canonical share/display serialization.
type MetricsExport struct {
	Summary         ExportSummary `json:"summary"`
	Context         ExportContext `json:"context"`
	CalculationDate string        `json:"calculationDate"` // ISO-8601
}

// ExportMetrics serializes the fixed summary/context/date shape. The caller
// supplies the timestamp so the core stays a pure function of its inputs.
func ExportMetrics(m *ComprehensiveHealthMetrics, now time.Time) MetricsExport {
	return MetricsExport{
		Summary: ExportSummary{
			DailyCalories: m.TDEE,
			ProteinG:      m.Macros.ProteinG,
			CarbsG:        m.Macros.CarbsG,
			FatG:          m.Macros.FatG,
			Water:         fmt.Sprintf("%.1fL", float64(m.WaterML)/1000),
			BMI:           math.Round(m.BMI*10) / 10,
			BMR:           m.BMR,
		},
		Context: ExportContext{
			Climate:   m.Climate.Zone,
			Ethnicity: m.Ethnicity.Ethnicity,
			Formula:   m.Formula.Formula,
		},
		CalculationDate: now.UTC().Format(time.RFC3339),
	}
}
