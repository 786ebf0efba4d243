package api

import (
	"fmt"
	"net/http"

	"workout-tracker/internal/domain"
	"workout-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs ---

// DayPlanDTO is the wire shape of one day. The set-id list keeps its
// historical field name "exercises_ids".
type DayPlanDTO struct {
	Day          string   `json:"day" binding:"required"`
	ExercisesIDs []string `json:"exercises_ids"`
}

// CreateWorkoutRequest defines the expected JSON for creating a workout.
type CreateWorkoutRequest struct {
	WorkoutPlan []DayPlanDTO `json:"workout_plan" binding:"required"`
}

// WorkoutResponse is the DTO for returning workout details.
type WorkoutResponse struct {
	WorkoutID   string       `json:"workout_id"`
	WorkoutPlan []DayPlanDTO `json:"workout_plan"`
}

func mapWorkoutToResponse(workout *domain.Workout) WorkoutResponse {
	plan := make([]DayPlanDTO, len(workout.Plan))
	for i, day := range workout.Plan {
		plan[i] = DayPlanDTO{Day: day.Day, ExercisesIDs: day.SetIDs}
	}
	return WorkoutResponse{
		WorkoutID:   workout.ID,
		WorkoutPlan: plan,
	}
}

// --- Handler Methods ---

// CreateWorkout handles POST /workouts.
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	plan := make([]domain.DayPlan, len(req.WorkoutPlan))
	for i, day := range req.WorkoutPlan {
		setIDs := day.ExercisesIDs
		if setIDs == nil {
			setIDs = []string{}
		}
		plan[i] = domain.DayPlan{Day: day.Day, SetIDs: setIDs}
	}

	workout, err := h.workoutService.CreateWorkout(c.Request.Context(), plan)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mapWorkoutToResponse(workout))
}

// GetWorkout handles GET /workouts/:workoutId.
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	workout, err := h.workoutService.GetWorkout(c.Request.Context(), c.Param("workoutId"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapWorkoutToResponse(workout))
}

// DeleteWorkout handles DELETE /workouts/:workoutId.
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	workoutID := c.Param("workoutId")
	if err := h.workoutService.DeleteWorkout(c.Request.Context(), workoutID); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    fmt.Sprintf("Workout with workout_id '%s' has been successfully deleted", workoutID),
		"workout_id": workoutID,
	})
}
