package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/domain"
	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlanHandler holds the plan service dependency.
type PlanHandler struct {
	planService service.PlanService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planService service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// --- DTOs ---

type CreatePlanRequest struct {
	ExerciseID      string  `json:"exerciseId" binding:"required"`
	CurrentWeight   float64 `json:"currentWeight" binding:"min=0"`
	Reps            int     `json:"reps" binding:"min=0"`
	PercentIncrease int     `json:"percentIncrease" binding:"min=0,max=100"`
	StartDate       string  `json:"startDate" binding:"required"` // YYYY-MM-DD
	EndDate         string  `json:"endDate"`                      // YYYY-MM-DD, empty = open-ended
	RecurringDay    int     `json:"recurringDay" binding:"min=0,max=6"`
}

type PlanResponse struct {
	ID              string            `json:"id"`
	ExerciseID      string            `json:"exerciseId"`
	Exercise        *ExerciseResponse `json:"exercise,omitempty"`
	CurrentWeight   float64           `json:"currentWeight"`
	GoalWeight      float64           `json:"goalWeight"`
	Reps            int               `json:"reps"`
	PercentIncrease int               `json:"percentIncrease"`
	StartDate       string            `json:"startDate"`
	EndDate         string            `json:"endDate,omitempty"`
	RecurringDay    int               `json:"recurringDay"`
	RecurringDayStr string            `json:"recurringDayName"`
}

// MapPlanToResponse converts a plan (with optional exercise) to its wire form.
func MapPlanToResponse(plan *domain.WorkoutPlan, exercise *domain.Exercise) PlanResponse {
	resp := PlanResponse{
		ID:              plan.ID.Hex(),
		ExerciseID:      plan.ExerciseID.Hex(),
		CurrentWeight:   plan.CurrentWeight,
		GoalWeight:      plan.GoalWeight(),
		Reps:            plan.Reps,
		PercentIncrease: plan.PercentIncrease,
		StartDate:       plan.StartDate.Format(dateLayout),
		RecurringDay:    int(plan.RecurringDay),
		RecurringDayStr: plan.RecurringDay.String(),
	}
	if plan.EndDate != nil {
		resp.EndDate = plan.EndDate.Format(dateLayout)
	}
	if exercise != nil {
		exResp := MapExerciseToResponse(exercise)
		resp.Exercise = &exResp
	}
	return resp
}

// --- Handler Methods ---

// CreatePlan godoc
// @Summary Schedule a recurring workout plan
// @Tags Plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param plan body CreatePlanRequest true "Plan details"
// @Success 201 {object} PlanResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 404 {object} gin.H "Exercise not found"
// @Router /plans [post]
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	exerciseID, err := primitive.ObjectIDFromHex(req.ExerciseID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format.")
		return
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid start date %q, expected YYYY-MM-DD", req.StartDate))
		return
	}

	var endDate *time.Time
	if req.EndDate != "" {
		end, err := time.Parse(dateLayout, req.EndDate)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid end date %q, expected YYYY-MM-DD", req.EndDate))
			return
		}
		endDate = &end
	}

	plan, err := h.planService.CreatePlan(
		c.Request.Context(),
		userID,
		exerciseID,
		req.CurrentWeight,
		req.Reps,
		req.PercentIncrease,
		startDate,
		endDate,
		domain.Weekday(req.RecurringDay),
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExerciseNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrInvalidWeekday), errors.Is(err, domain.ErrInvalidDateRange):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to create plan")
		}
		return
	}

	c.JSON(http.StatusCreated, MapPlanToResponse(plan, nil))
}

// GetMyPlans godoc
// @Summary List the user's workout plans
// @Tags Plans
// @Produce json
// @Security BearerAuth
// @Success 200 {array} PlanResponse
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /plans [get]
func (h *PlanHandler) GetMyPlans(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	plans, err := h.planService.GetMyPlans(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch plans")
		return
	}

	responses := make([]PlanResponse, len(plans))
	for i := range plans {
		responses[i] = MapPlanToResponse(&plans[i].WorkoutPlan, plans[i].Exercise)
	}
	c.JSON(http.StatusOK, responses)
}

// DeletePlan godoc
// @Summary Delete a workout plan and its completion history
// @Tags Plans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Success 204 "Deleted"
// @Failure 404 {object} gin.H "Plan not found"
// @Router /plans/{id} [delete]
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	planID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid plan ID format.")
		return
	}

	if err := h.planService.DeletePlan(c.Request.Context(), userID, planID); err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete plan")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
