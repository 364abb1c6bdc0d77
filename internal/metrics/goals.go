package metrics

// Severity grades a goal-validation outcome. The scale is genuinely tiered:
// info and warning outcomes are advisory, not failures.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// GoalType identifies which validator a GoalInput dispatches to.
type GoalType string

const (
	GoalTypeFatLoss     GoalType = "fat_loss"
	GoalTypeMuscleGain  GoalType = "muscle_gain"
	GoalTypeMaintenance GoalType = "maintenance"
	GoalTypeRecomp      GoalType = "recomp"
)

// GoalInput is a typed goal-feasibility request. Pointer fields distinguish
// "not provided" from zero; each validator names the fields it requires.
type GoalInput struct {
	Type           GoalType `json:"type"`
	TargetWeightKG *float64 `json:"target_weight_kg,omitempty"`
	TargetGainKG   *float64 `json:"target_gain_kg,omitempty"`
	TimelineWeeks  *int     `json:"timeline_weeks,omitempty"`
	TimelineMonths *int     `json:"timeline_months,omitempty"`
}

// GoalValidationResult is the tiered response from a goal validator. It is a
// return value, never an error — callers render Message directly without a
// control-flow exception, even for severity=error.
type GoalValidationResult struct {
	Valid                  bool     `json:"valid"`
	Severity               Severity `json:"severity"`
	Message                string   `json:"message"`
	AchievementProbability int      `json:"achievement_probability,omitempty"` // 0-100
	Suggestions            []string `json:"suggestions,omitempty"`
	SuggestedWeeks         *int     `json:"suggested_timeline_weeks,omitempty"`
	SuggestedMonths        *int     `json:"suggested_timeline_months,omitempty"`
	WeeklyRateKG           *float64 `json:"weekly_rate_kg,omitempty"`
	MonthlyRateKG          *float64 `json:"monthly_rate_kg,omitempty"`
}

// goalFieldError builds the severity=error result for a goal request that is
// missing a validator-required field.
func goalFieldError(msg string) GoalValidationResult {
	return GoalValidationResult{Valid: false, Severity: SeverityError, Message: msg}
}
