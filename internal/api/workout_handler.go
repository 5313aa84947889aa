package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler exposes AI workout-plan generation and import.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs ---

type GeneratePlanRequest struct {
	UserInput string `json:"userInput" binding:"required"`
}

type GeneratePlanResponse struct {
	Plan string `json:"plan"`
}

type SaveToCalendarRequest struct {
	AIPlan    string `json:"aiPlan" binding:"required"`
	WeekStart string `json:"weekStart" binding:"required"` // YYYY-MM-DD
}

type SaveToCalendarResponse struct {
	Status      string   `json:"status"`
	SavedDays   []string `json:"savedDays"`
	SkippedDays []string `json:"skippedDays,omitempty"`
	PlanIDs     []string `json:"planIds"`
}

// --- Handler Methods ---

// GeneratePlan godoc
// @Summary Generate a workout plan with AI
// @Description Seeds the prompt with the user's profile context and free-form input.
// @Tags Workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body GeneratePlanRequest true "Free-form user information"
// @Success 200 {object} GeneratePlanResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 502 {object} gin.H "Generation failed"
// @Router /workouts/generate [post]
func (h *WorkoutHandler) GeneratePlan(c *gin.Context) {
	var req GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	plan, err := h.workoutService.GeneratePlan(c.Request.Context(), userID, req.UserInput)
	if err != nil {
		if errors.Is(err, service.ErrGenerationFailed) {
			abortWithError(c, http.StatusBadGateway, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to generate workout plan")
		}
		return
	}

	c.JSON(http.StatusOK, GeneratePlanResponse{Plan: plan})
}

// SaveToCalendar godoc
// @Summary Save an AI-generated plan to the calendar
// @Description Parses the plan text and creates single-day workout plans for the target week. Unknown day headings are skipped.
// @Tags Workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param plan body SaveToCalendarRequest true "Plan text and week start date"
// @Success 200 {object} SaveToCalendarResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Router /workouts/import [post]
func (h *WorkoutHandler) SaveToCalendar(c *gin.Context) {
	var req SaveToCalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	weekStart, err := time.Parse(dateLayout, req.WeekStart)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid week start %q, expected YYYY-MM-DD", req.WeekStart))
		return
	}

	summary, err := h.workoutService.SaveToCalendar(c.Request.Context(), userID, req.AIPlan, weekStart)
	if err != nil {
		if errors.Is(err, service.ErrEmptyPlan) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to save workout plan")
		}
		return
	}

	planIDs := make([]string, len(summary.PlanIDs))
	for i, id := range summary.PlanIDs {
		planIDs[i] = id.Hex()
	}
	c.JSON(http.StatusOK, SaveToCalendarResponse{
		Status:      "success",
		SavedDays:   summary.SavedDays,
		SkippedDays: summary.SkippedDays,
		PlanIDs:     planIDs,
	})
}
