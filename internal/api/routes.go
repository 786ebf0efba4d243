package api

import (
	"net/http"

	"workout-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires all handlers onto the router.
func SetupRoutes(
	router *gin.Engine,
	userService service.UserService,
	exerciseService service.ExerciseService,
	setService service.SetService,
	workoutService service.WorkoutService,
	progressService service.ProgressService,
) {
	userHandler := NewUserHandler(userService)
	exerciseHandler := NewExerciseHandler(exerciseService)
	setHandler := NewSetHandler(setService)
	workoutHandler := NewWorkoutHandler(workoutService)
	historyHandler := NewHistoryHandler(progressService, userService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		userGroup := apiV1.Group("/users")
		{
			userGroup.POST("/:userId", userHandler.CreateUser)
			userGroup.GET("/:userId", userHandler.GetUser)
			userGroup.DELETE("/:userId", userHandler.DeleteUser)
			userGroup.POST("/:userId/workouts/:workoutId", userHandler.AddWorkout)
			userGroup.DELETE("/:userId/workouts/:workoutId", userHandler.RemoveWorkout)
		}

		exerciseGroup := apiV1.Group("/exercises")
		{
			exerciseGroup.POST("", exerciseHandler.CreateExercise)
			exerciseGroup.GET("/:exerciseId", exerciseHandler.GetExercise)
			exerciseGroup.DELETE("/:exerciseId", exerciseHandler.DeleteExercise)
		}

		setGroup := apiV1.Group("/sets")
		{
			setGroup.POST("", setHandler.CreateSet)
			setGroup.GET("/:setId", setHandler.GetSet)
			setGroup.DELETE("/:setId", setHandler.DeleteSet)
		}

		workoutGroup := apiV1.Group("/workouts")
		{
			workoutGroup.POST("", workoutHandler.CreateWorkout)
			workoutGroup.GET("/:workoutId", workoutHandler.GetWorkout)
			workoutGroup.DELETE("/:workoutId", workoutHandler.DeleteWorkout)
		}

		historyGroup := apiV1.Group("/history")
		{
			historyGroup.GET("/:userId/status", historyHandler.GetStatus)
			historyGroup.GET("/:userId/latest", historyHandler.GetLatest)
			historyGroup.GET("/:userId/:workoutId/latest", historyHandler.GetLatestForWorkout)
			historyGroup.POST("/:userId/complete", historyHandler.CompleteSet)
			historyGroup.POST("/:userId/update", historyHandler.UpdateSetProgress)
			historyGroup.PUT("/:userId/status", historyHandler.UpdateStatus)
		}
	}
}
