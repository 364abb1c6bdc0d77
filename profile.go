package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"lg/health-metrics-go-api/internal/metrics"
)

// getProfile returns the health profile for the authenticated user.
// GET /api/profile.
func (h *Handler) getProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	row, err := queryOne[healthProfileRow](h.db, c,
		"SELECT * FROM health_profiles WHERE user_id = @userID",
		pgx.NamedArgs{"userID": userID})
	if err != nil {
		apiError(c, http.StatusNotFound, "profile not found")
		return
	}

	resp := profileResponse{Profile: row}
	if row.Occupation != nil {
		if ok, msg := metrics.ValidateActivityLevel(
			metrics.Occupation(*row.Occupation),
			metrics.ActivityLevel(row.ActivityLevel)); !ok {
			resp.ActivityWarning = msg
		}
	}
	c.JSON(http.StatusOK, resp)
}

// patchProfile updates only the provided profile fields.
// PATCH /api/profile. Uses pointer fields in the request body to distinguish
// "not provided" from zero — only non-nil fields get updated. Every write
// invalidates the user's cached metrics so the next GET recomputes.
func (h *Handler) patchProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body patchProfileRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	// Validate enum fields before saving — an unknown value silently breaks
	// every downstream calculation with no visible error.
	if msg := validateProfilePatch(&body); msg != "" {
		apiError(c, http.StatusBadRequest, msg)
		return
	}

	// Build SET clause dynamically — only update fields the client actually sent
	setClauses := []string{}
	args := pgx.NamedArgs{"userID": userID}

	if body.Age != nil {
		setClauses = append(setClauses, "age = @age")
		args["age"] = *body.Age
	}
	if body.Gender != nil {
		setClauses = append(setClauses, "gender = @gender")
		args["gender"] = *body.Gender
	}
	if body.Country != nil {
		setClauses = append(setClauses, "country = @country")
		args["country"] = *body.Country
	}
	if body.State != nil {
		setClauses = append(setClauses, "state = @state")
		args["state"] = *body.State
	}
	if body.WeightKG != nil {
		setClauses = append(setClauses, "weight_kg = @weightKG")
		args["weightKG"] = *body.WeightKG
	}
	if body.HeightCM != nil {
		setClauses = append(setClauses, "height_cm = @heightCM")
		args["heightCM"] = *body.HeightCM
	}
	if body.BodyFatPercent != nil {
		setClauses = append(setClauses, "body_fat_percent = @bodyFatPercent")
		args["bodyFatPercent"] = *body.BodyFatPercent
	}
	if body.BodyFatSource != nil {
		setClauses = append(setClauses, "body_fat_source = @bodyFatSource")
		args["bodyFatSource"] = *body.BodyFatSource
	}
	if body.ActivityLevel != nil {
		setClauses = append(setClauses, "activity_level = @activityLevel")
		args["activityLevel"] = *body.ActivityLevel
	}
	if body.Occupation != nil {
		setClauses = append(setClauses, "occupation = @occupation")
		args["occupation"] = *body.Occupation
	}
	if body.DietType != nil {
		setClauses = append(setClauses, "diet_type = @dietType")
		args["dietType"] = *body.DietType
	}
	if body.Goal != nil {
		setClauses = append(setClauses, "goal = @goal")
		args["goal"] = *body.Goal
	}
	if body.Experience != nil {
		setClauses = append(setClauses, "experience = @experience")
		args["experience"] = *body.Experience
	}
	if body.TrainingYears != nil {
		setClauses = append(setClauses, "training_years = @trainingYears")
		args["trainingYears"] = *body.TrainingYears
	}
	if body.RestingHeartRate != nil {
		setClauses = append(setClauses, "resting_heart_rate = @restingHeartRate")
		args["restingHeartRate"] = *body.RestingHeartRate
	}
	if body.MaxHeartRate != nil {
		setClauses = append(setClauses, "max_heart_rate = @maxHeartRate")
		args["maxHeartRate"] = *body.MaxHeartRate
	}

	if len(setClauses) == 0 {
		apiError(c, http.StatusBadRequest, "no fields to update")
		return
	}
	setClauses = append(setClauses, "updated_at = now()")

	query := "UPDATE health_profiles SET " +
		strings.Join(setClauses, ", ") +
		" WHERE user_id = @userID RETURNING *"

	row, err := queryOne[healthProfileRow](h.db, c, query, args)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to update profile")
		return
	}

	h.cache.invalidate(userID)

	// The occupation cross-check is advisory: a desk worker claiming
	// very_active gets the update plus a warning, not a rejection.
	resp := profileResponse{Profile: row}
	if row.Occupation != nil {
		if ok, msg := metrics.ValidateActivityLevel(
			metrics.Occupation(*row.Occupation),
			metrics.ActivityLevel(row.ActivityLevel)); !ok {
			resp.ActivityWarning = msg
		}
	}
	c.JSON(http.StatusOK, resp)
}

// validateProfilePatch checks every enum field in a patch against its closed
// value set. Returns an error message, or "" when the patch is acceptable.
func validateProfilePatch(body *patchProfileRequest) string {
	if body.Gender != nil && !validGenders[*body.Gender] {
		return "gender must be one of: male, female, other, unspecified"
	}
	if body.ActivityLevel != nil {
		if metrics.ActivityLevel(*body.ActivityLevel).Ordinal() < 0 {
			return "activity_level must be one of: sedentary, light, moderate, active, very_active"
		}
	}
	if body.DietType != nil && !validDiets[*body.DietType] {
		return "diet_type must be one of: omnivore, vegetarian, vegan, pescatarian, keto, low_carb, paleo, mediterranean"
	}
	if body.Goal != nil && !validGoals[*body.Goal] {
		return "goal must be one of: fat_loss, muscle_gain, maintenance, athletic, endurance, strength, recomp"
	}
	if body.Experience != nil && !validExperience[*body.Experience] {
		return "experience must be one of: beginner, intermediate, advanced, elite"
	}
	if body.BodyFatSource != nil && !validBodyFatSources[*body.BodyFatSource] {
		return "body_fat_source must be one of: dexa, bodpod, calipers, ai_estimate, manual"
	}
	if body.Occupation != nil && !validOccupations[*body.Occupation] {
		return "occupation must be one of: desk, light_active, moderate_active, heavy_labor, very_active"
	}
	if body.BodyFatPercent != nil && (*body.BodyFatPercent < 2 || *body.BodyFatPercent > 70) {
		return "body_fat_percent must be between 2 and 70"
	}
	if body.Age != nil && (*body.Age < 1 || *body.Age > 120) {
		return "age must be between 1 and 120"
	}
	if body.WeightKG != nil && *body.WeightKG <= 0 {
		return "weight_kg must be positive"
	}
	if body.HeightCM != nil && *body.HeightCM <= 0 {
		return "height_cm must be positive"
	}
	return ""
}

var validGenders = map[string]bool{
	"male": true, "female": true, "other": true, "unspecified": true,
}

var validDiets = map[string]bool{
	"omnivore": true, "vegetarian": true, "vegan": true, "pescatarian": true,
	"keto": true, "low_carb": true, "paleo": true, "mediterranean": true,
}

var validGoals = map[string]bool{
	"fat_loss": true, "muscle_gain": true, "maintenance": true,
	"athletic": true, "endurance": true, "strength": true, "recomp": true,
}

var validExperience = map[string]bool{
	"beginner": true, "intermediate": true, "advanced": true, "elite": true,
}

var validBodyFatSources = map[string]bool{
	"dexa": true, "bodpod": true, "calipers": true, "ai_estimate": true, "manual": true,
}

var validOccupations = map[string]bool{
	"desk": true, "light_active": true, "moderate_active": true,
	"heavy_labor": true, "very_active": true,
}
