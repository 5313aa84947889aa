package api

import (
	"net/http"

	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	planService service.PlanService,
	calendarService service.CalendarService,
	workoutService service.WorkoutService,
	exerciseService service.ExerciseService,
) {
	authHandler := NewAuthHandler(authService)
	planHandler := NewPlanHandler(planService)
	calendarHandler := NewCalendarHandler(calendarService)
	workoutHandler := NewWorkoutHandler(workoutService)
	exerciseHandler := NewExerciseHandler(exerciseService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", authHandler.GetProfile)
		protected.PUT("/me", authHandler.UpdateProfile)

		// --- Exercise Library ---
		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.POST("", exerciseHandler.CreateExercise)
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			exerciseGroup.GET("/:id", exerciseHandler.GetExercise)
			exerciseGroup.POST("/:id/enrich", exerciseHandler.EnrichExercise)
			exerciseGroup.POST("/:id/media/upload-url", exerciseHandler.RequestMediaUpload)
			exerciseGroup.POST("/:id/media/confirm", exerciseHandler.ConfirmMediaUpload)
			exerciseGroup.GET("/:id/media", exerciseHandler.GetMediaDownloadURL)
		}

		// --- Workout Plans ---
		planGroup := protected.Group("/plans")
		{
			planGroup.POST("", planHandler.CreatePlan)
			planGroup.GET("", planHandler.GetMyPlans)
			planGroup.DELETE("/:id", planHandler.DeletePlan)
		}

		// --- Calendar ---
		calendarGroup := protected.Group("/calendar")
		{
			calendarGroup.GET("", calendarHandler.GetCalendar)
			calendarGroup.GET("/events", calendarHandler.GetEvents)
			calendarGroup.POST("/toggle", calendarHandler.Toggle)
			calendarGroup.GET("/completed", calendarHandler.GetCompleted)
		}

		// --- AI Workouts ---
		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.POST("/generate", workoutHandler.GeneratePlan)
			workoutGroup.POST("/import", workoutHandler.SaveToCalendar)
		}
	}
}
