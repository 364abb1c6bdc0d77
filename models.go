package main

import (
	"time"

	"lg/health-metrics-go-api/internal/metrics"
)

// user maps to the users table. AuthToken and Password are hidden from JSON responses.
type user struct {
	ID        int        `json:"id" db:"id"`
	Username  string     `json:"username" db:"username"`
	Email     string     `json:"email" db:"email"`
	AuthToken string     `json:"-" db:"auth_token"`
	Password  string     `json:"-" db:"password"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
}

// healthProfileRow maps to health_profiles, one row per user. Nullable fields
// use pointers so pgx can scan NULLs and JSON omits them naturally.
type healthProfileRow struct {
	UserID   int     `json:"user_id"   db:"user_id"`
	Age      int     `json:"age"       db:"age"`
	Gender   string  `json:"gender"    db:"gender"`
	Country  string  `json:"country"   db:"country"`
	State    *string `json:"state"     db:"state"`
	WeightKG float64 `json:"weight_kg" db:"weight_kg"`
	HeightCM float64 `json:"height_cm" db:"height_cm"`

	BodyFatPercent *float64 `json:"body_fat_percent" db:"body_fat_percent"`
	BodyFatSource  *string  `json:"body_fat_source"  db:"body_fat_source"`

	ActivityLevel string  `json:"activity_level" db:"activity_level"`
	Occupation    *string `json:"occupation"     db:"occupation"`
	DietType      string  `json:"diet_type"      db:"diet_type"`
	Goal          string  `json:"goal"           db:"goal"`
	Experience    string  `json:"experience"     db:"experience"`
	TrainingYears float64 `json:"training_years" db:"training_years"`

	RestingHeartRate *int `json:"resting_heart_rate" db:"resting_heart_rate"`
	MaxHeartRate     *int `json:"max_heart_rate"     db:"max_heart_rate"`

	UpdatedAt *time.Time `json:"updated_at" db:"updated_at"`
}

// toUserProfile converts the stored row into the calculation input record.
func (r healthProfileRow) toUserProfile() metrics.UserProfile {
	p := metrics.UserProfile{
		Age:              r.Age,
		Gender:           metrics.Gender(r.Gender),
		Country:          r.Country,
		WeightKG:         r.WeightKG,
		HeightCM:         r.HeightCM,
		BodyFatPercent:   r.BodyFatPercent,
		ActivityLevel:    metrics.ActivityLevel(r.ActivityLevel),
		DietType:         metrics.DietType(r.DietType),
		Goal:             metrics.FitnessGoal(r.Goal),
		Experience:       metrics.ExperienceLevel(r.Experience),
		TrainingYears:    r.TrainingYears,
		RestingHeartRate: r.RestingHeartRate,
		MaxHeartRate:     r.MaxHeartRate,
	}
	if r.State != nil {
		p.State = *r.State
	}
	if r.BodyFatSource != nil {
		p.BodyFatSource = metrics.BodyFatSource(*r.BodyFatSource)
	}
	return p
}

// patchProfileRequest is the request body for PATCH /api/profile.
// All fields are pointers — only non-nil fields get written to the database.
type patchProfileRequest struct {
	Age              *int     `json:"age"`
	Gender           *string  `json:"gender"`
	Country          *string  `json:"country"`
	State            *string  `json:"state"`
	WeightKG         *float64 `json:"weight_kg"`
	HeightCM         *float64 `json:"height_cm"`
	BodyFatPercent   *float64 `json:"body_fat_percent"`
	BodyFatSource    *string  `json:"body_fat_source"`
	ActivityLevel    *string  `json:"activity_level"`
	Occupation       *string  `json:"occupation"`
	DietType         *string  `json:"diet_type"`
	Goal             *string  `json:"goal"`
	Experience       *string  `json:"experience"`
	TrainingYears    *float64 `json:"training_years"`
	RestingHeartRate *int     `json:"resting_heart_rate"`
	MaxHeartRate     *int     `json:"max_heart_rate"`
}

// profileResponse wraps a profile row with an optional activity warning from
// the occupation cross-check. The warning is advisory; the update still lands.
type profileResponse struct {
	Profile         healthProfileRow `json:"profile"`
	ActivityWarning string           `json:"activity_warning,omitempty"`
}
