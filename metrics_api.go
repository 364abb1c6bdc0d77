package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"lg/health-metrics-go-api/internal/metrics"
)

// loadProfile fetches the authenticated user's stored profile, translating a
// missing row into a 404. Returns ok=false when a response was already written.
func (h *Handler) loadProfile(c *gin.Context) (metrics.UserProfile, bool) {
	userID := c.GetInt("user_id")

	row, err := queryOne[healthProfileRow](h.db, c,
		"SELECT * FROM health_profiles WHERE user_id = @userID",
		pgx.NamedArgs{"userID": userID})
	if err != nil {
		apiError(c, http.StatusNotFound, "profile not found")
		return metrics.UserProfile{}, false
	}
	return row.toUserProfile(), true
}

// computeMetrics runs the pipeline through the per-user cache.
func (h *Handler) computeMetrics(c *gin.Context) (*metrics.ComprehensiveHealthMetrics, bool) {
	userID := c.GetInt("user_id")

	if cached := h.cache.get(userID); cached != nil {
		return cached, true
	}

	profile, ok := h.loadProfile(c)
	if !ok {
		return nil, false
	}

	m, err := metrics.CalculateAllMetrics(profile)
	if err != nil {
		writeMetricsError(c, err)
		return nil, false
	}
	h.cache.set(userID, m)
	return m, true
}

// writeMetricsError maps calculation errors onto API responses. Missing-field
// errors are client problems (incomplete profile), everything else is a 500.
func writeMetricsError(c *gin.Context, err error) {
	var mf *metrics.MissingFieldError
	if errors.As(err, &mf) {
		apiError(c, http.StatusUnprocessableEntity, "profile incomplete: missing "+mf.Field)
		return
	}
	apiError(c, http.StatusInternalServerError, "metrics calculation failed")
}

// getMetrics returns the full computed pipeline for the stored profile.
// GET /api/metrics.
func (h *Handler) getMetrics(c *gin.Context) {
	m, ok := h.computeMetrics(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, m)
}

// previewMetrics computes metrics from a profile in the request body, without
// touching the database. Used by onboarding flows before a profile is saved.
// POST /api/metrics/preview (public — no auth required).
func (h *Handler) previewMetrics(c *gin.Context) {
	var profile metrics.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	m, err := metrics.CalculateAllMetrics(profile)
	if err != nil {
		writeMetricsError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// validateGoal checks a goal request against the stored profile. The result is
// always 200; feasibility is conveyed by the severity tier in the body.
// POST /api/goals/validate.
func (h *Handler) validateGoal(c *gin.Context) {
	var goal metrics.GoalInput
	if err := c.ShouldBindJSON(&goal); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, ok := h.loadProfile(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, metrics.ValidateGoal(profile, goal))
}

// exportMetrics returns the display-ready summary serialization.
// GET /api/metrics/export.
func (h *Handler) exportMetrics(c *gin.Context) {
	m, ok := h.computeMetrics(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, metrics.ExportMetrics(m, time.Now()))
}
