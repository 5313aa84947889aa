package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/calendar"
	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/service"
	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/warmup"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Wire format for calendar dates.
const dateLayout = "2006-01-02"

// CalendarHandler holds the calendar service dependency.
type CalendarHandler struct {
	calendarService service.CalendarService
}

// NewCalendarHandler creates a new CalendarHandler.
func NewCalendarHandler(calendarService service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarService: calendarService}
}

// --- DTOs ---

// EventResponse is one calendar occurrence as the frontend consumes it.
type EventResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	GifURL    string `json:"gifUrl,omitempty"`
	Start     string `json:"start"` // YYYY-MM-DD
	Color     string `json:"color"`
	Completed bool   `json:"completed"`
}

type CalendarPageResponse struct {
	Events  []EventResponse   `json:"events"`
	WarmUps []warmup.Exercise `json:"warmUps"`
}

type ToggleRequest struct {
	PlanID        string `json:"workoutId" binding:"required"`
	DateCompleted string `json:"dateCompleted" binding:"required"` // YYYY-MM-DD
	Completed     *bool  `json:"completed" binding:"required"`
}

type ToggleResponse struct {
	Status    string `json:"status"`
	PlanID    string `json:"workoutId"`
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

type CompletedWorkoutResponse struct {
	Title         string `json:"title"`
	DateCompleted string `json:"dateCompleted"`
}

// MapEventsToResponse converts calendar events to their wire form.
func MapEventsToResponse(events []calendar.Event) []EventResponse {
	responses := make([]EventResponse, len(events))
	for i, e := range events {
		responses[i] = EventResponse{
			ID:        e.PlanID.Hex(),
			Title:     e.Title,
			GifURL:    e.GifURL,
			Start:     e.Date.Format(dateLayout),
			Color:     e.Color,
			Completed: e.Completed,
		}
	}
	return responses
}

// horizonFromQuery resolves the expansion bound for open-ended plans.
// Defaults to today; an explicit ?until=YYYY-MM-DD overrides it.
func horizonFromQuery(c *gin.Context) (time.Time, error) {
	untilStr := c.Query("until")
	if untilStr == "" {
		return calendar.DateOf(time.Now().UTC()), nil
	}
	until, err := time.Parse(dateLayout, untilStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid 'until' date %q, expected YYYY-MM-DD", untilStr)
	}
	return calendar.DateOf(until), nil
}

// --- Handler Methods ---

// GetCalendar godoc
// @Summary Get the calendar page data
// @Description Returns the user's scheduled occurrences plus warm-up suggestions.
// @Tags Calendar
// @Produce json
// @Security BearerAuth
// @Param until query string false "Expansion horizon for open-ended plans (YYYY-MM-DD, defaults to today)"
// @Success 200 {object} CalendarPageResponse
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /calendar [get]
func (h *CalendarHandler) GetCalendar(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	horizon, err := horizonFromQuery(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.calendarService.Calendar(c.Request.Context(), userID, horizon)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load calendar")
		return
	}

	c.JSON(http.StatusOK, CalendarPageResponse{
		Events:  MapEventsToResponse(page.Events),
		WarmUps: page.WarmUps,
	})
}

// GetEvents godoc
// @Summary Get the user's workout occurrences
// @Description Expands all plans and overlays completion state.
// @Tags Calendar
// @Produce json
// @Security BearerAuth
// @Param until query string false "Expansion horizon for open-ended plans (YYYY-MM-DD, defaults to today)"
// @Success 200 {array} EventResponse
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /calendar/events [get]
func (h *CalendarHandler) GetEvents(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	horizon, err := horizonFromQuery(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	events, err := h.calendarService.Events(c.Request.Context(), userID, horizon)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load events")
		return
	}

	c.JSON(http.StatusOK, MapEventsToResponse(events))
}

// Toggle godoc
// @Summary Mark or unmark a workout occurrence as completed
// @Description Idempotent: repeating a toggle leaves state unchanged.
// @Tags Calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param toggle body ToggleRequest true "Occurrence and target state"
// @Success 200 {object} ToggleResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 404 {object} gin.H "Plan not found"
// @Router /calendar/toggle [post]
func (h *CalendarHandler) Toggle(c *gin.Context) {
	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	planID, err := primitive.ObjectIDFromHex(req.PlanID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID format.")
		return
	}

	date, err := time.Parse(dateLayout, req.DateCompleted)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid date %q, expected YYYY-MM-DD", req.DateCompleted))
		return
	}

	result, err := h.calendarService.Toggle(c.Request.Context(), userID, planID, date, *req.Completed)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to toggle workout")
		}
		return
	}

	c.JSON(http.StatusOK, ToggleResponse{
		Status:    "success",
		PlanID:    result.PlanID.Hex(),
		Date:      result.Date.Format(dateLayout),
		Completed: result.Completed,
	})
}

// GetCompleted godoc
// @Summary List the user's completed workouts
// @Tags Calendar
// @Produce json
// @Security BearerAuth
// @Success 200 {array} CompletedWorkoutResponse
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /calendar/completed [get]
func (h *CalendarHandler) GetCompleted(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	completed, err := h.calendarService.Completed(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load completed workouts")
		return
	}

	responses := make([]CompletedWorkoutResponse, len(completed))
	for i, w := range completed {
		responses[i] = CompletedWorkoutResponse{
			Title:         w.Title,
			DateCompleted: w.DateCompleted.Format(dateLayout),
		}
	}
	c.JSON(http.StatusOK, responses)
}
