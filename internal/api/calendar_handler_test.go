package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/calendar"
	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// stubCalendarService records the arguments handlers pass down and returns
// canned responses.
type stubCalendarService struct {
	events  []calendar.Event
	horizon time.Time

	toggleResult *ToggleCall
	toggleErr    error
}

type ToggleCall struct {
	OwnerID   primitive.ObjectID
	PlanID    primitive.ObjectID
	Date      time.Time
	Completed bool
}

func (s *stubCalendarService) Events(_ context.Context, _ primitive.ObjectID, horizon time.Time) ([]calendar.Event, error) {
	s.horizon = horizon
	return s.events, nil
}

func (s *stubCalendarService) Calendar(ctx context.Context, ownerID primitive.ObjectID, horizon time.Time) (*service.CalendarPage, error) {
	events, _ := s.Events(ctx, ownerID, horizon)
	return &service.CalendarPage{Events: events}, nil
}

func (s *stubCalendarService) Toggle(_ context.Context, ownerID, planID primitive.ObjectID, date time.Time, completed bool) (*service.ToggleResult, error) {
	if s.toggleErr != nil {
		return nil, s.toggleErr
	}
	s.toggleResult = &ToggleCall{OwnerID: ownerID, PlanID: planID, Date: date, Completed: completed}
	return &service.ToggleResult{PlanID: planID, Date: calendar.DateOf(date), Completed: completed}, nil
}

func (s *stubCalendarService) Completed(_ context.Context, _ primitive.ObjectID) ([]service.CompletedWorkout, error) {
	return nil, nil
}

func newCalendarTestRouter(svc service.CalendarService, userID primitive.ObjectID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(ContextUserIDKey, userID.Hex())
	})

	handler := NewCalendarHandler(svc)
	router.GET("/calendar/events", handler.GetEvents)
	router.POST("/calendar/toggle", handler.Toggle)
	return router
}

func TestCalendarHandler_GetEvents(t *testing.T) {
	planID := primitive.NewObjectID()
	stub := &stubCalendarService{
		events: []calendar.Event{{
			PlanID:    planID,
			Title:     "Bench Press",
			Date:      time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC),
			Color:     calendar.ColorScheduled,
			Completed: false,
		}},
	}
	router := newCalendarTestRouter(stub, primitive.NewObjectID())

	req := httptest.NewRequest(http.MethodGet, "/calendar/events?until=2025-06-01", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), stub.horizon)

	var got []EventResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, planID.Hex(), got[0].ID)
	assert.Equal(t, "Bench Press", got[0].Title)
	assert.Equal(t, "2025-03-05", got[0].Start)
	assert.Equal(t, calendar.ColorScheduled, got[0].Color)
}

func TestCalendarHandler_GetEvents_BadUntil(t *testing.T) {
	router := newCalendarTestRouter(&stubCalendarService{}, primitive.NewObjectID())

	req := httptest.NewRequest(http.MethodGet, "/calendar/events?until=03/05/2025", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCalendarHandler_Toggle(t *testing.T) {
	userID := primitive.NewObjectID()
	planID := primitive.NewObjectID()
	stub := &stubCalendarService{}
	router := newCalendarTestRouter(stub, userID)

	body, _ := json.Marshal(gin.H{
		"workoutId":     planID.Hex(),
		"dateCompleted": "2025-03-05",
		"completed":     true,
	})
	req := httptest.NewRequest(http.MethodPost, "/calendar/toggle", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.toggleResult)
	assert.Equal(t, userID, stub.toggleResult.OwnerID)
	assert.Equal(t, planID, stub.toggleResult.PlanID)
	assert.True(t, stub.toggleResult.Completed)

	var resp ToggleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "2025-03-05", resp.Date)
}

func TestCalendarHandler_Toggle_ExplicitFalse(t *testing.T) {
	// completed:false must bind, not fail the required check.
	stub := &stubCalendarService{}
	router := newCalendarTestRouter(stub, primitive.NewObjectID())

	body, _ := json.Marshal(gin.H{
		"workoutId":     primitive.NewObjectID().Hex(),
		"dateCompleted": "2025-03-05",
		"completed":     false,
	})
	req := httptest.NewRequest(http.MethodPost, "/calendar/toggle", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.toggleResult)
	assert.False(t, stub.toggleResult.Completed)
}

func TestCalendarHandler_Toggle_Validation(t *testing.T) {
	router := newCalendarTestRouter(&stubCalendarService{}, primitive.NewObjectID())

	cases := []gin.H{
		{"dateCompleted": "2025-03-05", "completed": true},                           // missing plan
		{"workoutId": "not-an-oid", "dateCompleted": "2025-03-05", "completed": true}, // bad plan ID
		{"workoutId": primitive.NewObjectID().Hex(), "dateCompleted": "March 5th", "completed": true}, // bad date
		{"workoutId": primitive.NewObjectID().Hex(), "dateCompleted": "2025-03-05"},  // missing completed
	}
	for _, body := range cases {
		b, _ := json.Marshal(body)
		req := httptest.NewRequest(http.MethodPost, "/calendar/toggle", bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestCalendarHandler_Toggle_PlanNotFound(t *testing.T) {
	stub := &stubCalendarService{toggleErr: service.ErrPlanNotFound}
	router := newCalendarTestRouter(stub, primitive.NewObjectID())

	body, _ := json.Marshal(gin.H{
		"workoutId":     primitive.NewObjectID().Hex(),
		"dateCompleted": "2025-03-05",
		"completed":     true,
	})
	req := httptest.NewRequest(http.MethodPost, "/calendar/toggle", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCalendarHandler_Unauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewCalendarHandler(&stubCalendarService{})
	router.GET("/calendar/events", handler.GetEvents)

	req := httptest.NewRequest(http.MethodGet, "/calendar/events", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
