// Package metrics computes personalized physiological targets: BMR, BMI with
// population-specific classification, TDEE, hydration, macronutrient split,
// heart-rate training zones, estimated VO2max, a composite health score, and
// goal-feasibility validation. Every function is a pure, synchronous function
// of its inputs — no I/O, no stored state, safe for concurrent callers.
package metrics

/* ─── Closed enumerations ────────────────────────────────────────────── */

// Gender is the biological-sex input used by gender-branched formulas.
// Other and Unspecified use averaged coefficients where a formula branches.
type Gender string

const (
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
	GenderOther       Gender = "other"
	GenderUnspecified Gender = "unspecified"
)

// ActivityLevel is the 5-level ordinal activity scale.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// activityOrdinals is the single source of truth for valid activity levels
// and their position on the ordinal scale — also used for input validation.
var activityOrdinals = map[ActivityLevel]int{
	ActivitySedentary:  0,
	ActivityLight:      1,
	ActivityModerate:   2,
	ActivityActive:     3,
	ActivityVeryActive: 4,
}

// Ordinal returns the level's index on the 5-level scale, or -1 when the
// level is not one of the five known values.
func (a ActivityLevel) Ordinal() int {
	if ord, ok := activityOrdinals[a]; ok {
		return ord
	}
	return -1
}

// DietType is the dietary archetype driving protein factors and calorie splits.
type DietType string

const (
	DietOmnivore      DietType = "omnivore"
	DietVegetarian    DietType = "vegetarian"
	DietVegan         DietType = "vegan"
	DietPescatarian   DietType = "pescatarian"
	DietKeto          DietType = "keto"
	DietLowCarb       DietType = "low_carb"
	DietPaleo         DietType = "paleo"
	DietMediterranean DietType = "mediterranean"
)

// FitnessGoal selects the protein target and drives goal validation.
type FitnessGoal string

const (
	GoalFatLoss     FitnessGoal = "fat_loss"
	GoalMuscleGain  FitnessGoal = "muscle_gain"
	GoalMaintenance FitnessGoal = "maintenance"
	GoalAthletic    FitnessGoal = "athletic"
	GoalEndurance   FitnessGoal = "endurance"
	GoalStrength    FitnessGoal = "strength"
	GoalRecomp      FitnessGoal = "recomp"
)

// ExperienceLevel is the training-experience tier used by the muscle-gain
// rate limiter and the formula-selection cascade.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
	ExperienceElite        ExperienceLevel = "elite"
)

// BodyFatSource tags how a body-fat percentage was measured. DEXA and BodPod
// are the two most accurate methods and unlock the highest-confidence formulas.
type BodyFatSource string

const (
	BodyFatDEXA       BodyFatSource = "dexa"
	BodyFatBodPod     BodyFatSource = "bodpod"
	BodyFatCalipers   BodyFatSource = "calipers"
	BodyFatAIEstimate BodyFatSource = "ai_estimate"
	BodyFatManual     BodyFatSource = "manual"
)

// Occupation maps to a minimum plausible activity level (see occupation.go).
type Occupation string

const (
	OccupationDesk           Occupation = "desk"
	OccupationLightActive    Occupation = "light_active"
	OccupationModerateActive Occupation = "moderate_active"
	OccupationHeavyLabor     Occupation = "heavy_labor"
	OccupationVeryActive     Occupation = "very_active"
)

/* ─── Input record ───────────────────────────────────────────────────── */

// UserProfile is the immutable input record for the whole pipeline. Required
// fields for base BMR are Age, Gender, WeightKG, and HeightCM; everything else
// is optional with documented fallback or ask-user semantics. The package
// never mutates a profile.
type UserProfile struct {
	Age      int    `json:"age"`
	Gender   Gender `json:"gender"`
	Country  string `json:"country"`         // ISO-3166 alpha-2
	State    string `json:"state,omitempty"` // optional region code
	WeightKG float64 `json:"weight_kg"`
	HeightCM float64 `json:"height_cm"`

	BodyFatPercent *float64      `json:"body_fat_percent,omitempty"`
	BodyFatSource  BodyFatSource `json:"body_fat_source,omitempty"`

	ActivityLevel ActivityLevel   `json:"activity_level"`
	DietType      DietType        `json:"diet_type"`
	Goal          FitnessGoal     `json:"goal"`
	Experience    ExperienceLevel `json:"experience"`
	TrainingYears float64         `json:"training_years"`

	RestingHeartRate *int `json:"resting_heart_rate,omitempty"`
	MaxHeartRate     *int `json:"max_heart_rate,omitempty"` // measured max HR, overrides age formulas
}

// bodyFat returns the measured body-fat percentage, or ok=false when absent.
func (p UserProfile) bodyFat() (float64, bool) {
	if p.BodyFatPercent == nil {
		return 0, false
	}
	return *p.BodyFatPercent, true
}
