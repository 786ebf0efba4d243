package api

import (
	"net/http"
	"time"

	"workout-tracker/internal/domain"
	"workout-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// HistoryHandler exposes the progress engine. The user service is only used
// to resolve the default workout ("first associated") for the endpoints that
// take no explicit workout id; the engine itself always gets one.
type HistoryHandler struct {
	progressService service.ProgressService
	userService     service.UserService
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(progressService service.ProgressService, userService service.UserService) *HistoryHandler {
	return &HistoryHandler{
		progressService: progressService,
		userService:     userService,
	}
}

// --- DTOs ---

// CompleteSetRequest defines the expected JSON for completing a set.
type CompleteSetRequest struct {
	WorkoutID string `json:"workout_id" binding:"required"`
	SetID     string `json:"set_id" binding:"required"`
}

// UpdateSetProgressRequest defines the expected JSON for partial progress.
type UpdateSetProgressRequest struct {
	WorkoutID            string `json:"workout_id" binding:"required"`
	SetID                string `json:"set_id" binding:"required"`
	CompletedReps        *int   `json:"completed_reps"`
	CompletedDurationSec *int   `json:"completed_duration_sec"`
}

// UpdateStatusRequest wraps set completion with an optional workout id;
// the user's active workout is used when none is given.
type UpdateStatusRequest struct {
	WorkoutID string `json:"workout_id"`
	SetID     string `json:"set_id" binding:"required"`
}

// SetStatusResponse is one set of the current day with completion state.
type SetStatusResponse struct {
	SetID                string           `json:"set_id"`
	SetName              string           `json:"set_name"`
	ExerciseID           string           `json:"exercise_id"`
	ExerciseName         string           `json:"exercise_name"`
	TargetReps           *int             `json:"target_reps"`
	TargetWeight         *float64         `json:"target_weight"`
	TargetDurationSec    *int             `json:"target_duration_sec"`
	CompletedReps        *int             `json:"completed_reps"`
	CompletedDurationSec *int             `json:"completed_duration_sec"`
	IsComplete           bool             `json:"is_complete"`
	CompletedAt          *time.Time       `json:"completed_at"`
	Exercise             *domain.Exercise `json:"exercise"`
}

// ProgressSummaryResponse totals the current day.
type ProgressSummaryResponse struct {
	CompletedSets        int `json:"completed_sets"`
	TotalSets            int `json:"total_sets"`
	CompletionPercentage int `json:"completion_percentage"`
}

// StatusResponse is the full status view for a (user, workout) pair.
type StatusResponse struct {
	UserID          string                  `json:"user_id"`
	WorkoutID       string                  `json:"workout_id"`
	DayName         string                  `json:"day_name"`
	CurrentDayIndex int                     `json:"current_day_index"`
	Sets            []SetStatusResponse     `json:"sets"`
	Progress        ProgressSummaryResponse `json:"progress"`
}

// CompletionResponse reports the outcome of a completion call.
type CompletionResponse struct {
	Message         string `json:"message"`
	WorkoutID       string `json:"workout_id"`
	SetID           string `json:"set_id"`
	DayComplete     bool   `json:"day_complete"`
	NewDayStarted   bool   `json:"new_day_started"`
	NewDayName      string `json:"new_day_name,omitempty"`
	CurrentDayIndex int    `json:"current_day_index"`
}

func mapStatusToResponse(status *service.WorkoutStatus) StatusResponse {
	sets := make([]SetStatusResponse, len(status.Sets))
	for i, s := range status.Sets {
		sets[i] = SetStatusResponse{
			SetID:                s.SetID,
			SetName:              s.SetName,
			ExerciseID:           s.ExerciseID,
			ExerciseName:         s.ExerciseName,
			TargetReps:           s.TargetReps,
			TargetWeight:         s.TargetWeight,
			TargetDurationSec:    s.TargetDurationSec,
			CompletedReps:        s.CompletedReps,
			CompletedDurationSec: s.CompletedDurationSec,
			IsComplete:           s.IsComplete,
			CompletedAt:          s.CompletedAt,
			Exercise:             s.Exercise,
		}
	}
	return StatusResponse{
		UserID:          status.UserID,
		WorkoutID:       status.WorkoutID,
		DayName:         status.DayName,
		CurrentDayIndex: status.CurrentDayIndex,
		Sets:            sets,
		Progress: ProgressSummaryResponse{
			CompletedSets:        status.Progress.CompletedSets,
			TotalSets:            status.Progress.TotalSets,
			CompletionPercentage: status.Progress.CompletionPercentage,
		},
	}
}

func mapCompletionToResponse(result *service.CompletionResult) CompletionResponse {
	return CompletionResponse{
		Message:         result.Message,
		WorkoutID:       result.WorkoutID,
		SetID:           result.SetID,
		DayComplete:     result.DayComplete,
		NewDayStarted:   result.NewDayStarted,
		NewDayName:      result.NewDayName,
		CurrentDayIndex: result.CurrentDayIndex,
	}
}

// --- Handler Methods ---

// GetStatus handles GET /history/:userId/status using the user's active
// workout.
func (h *HistoryHandler) GetStatus(c *gin.Context) {
	userID := c.Param("userId")

	workoutID, err := h.userService.ActiveWorkoutID(c.Request.Context(), userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	h.respondWithStatus(c, userID, workoutID)
}

// GetLatest handles GET /history/:userId/latest; same view as GetStatus,
// kept for compatibility with older clients.
func (h *HistoryHandler) GetLatest(c *gin.Context) {
	h.GetStatus(c)
}

// GetLatestForWorkout handles GET /history/:userId/:workoutId/latest with an
// explicit workout id.
func (h *HistoryHandler) GetLatestForWorkout(c *gin.Context) {
	h.respondWithStatus(c, c.Param("userId"), c.Param("workoutId"))
}

func (h *HistoryHandler) respondWithStatus(c *gin.Context, userID, workoutID string) {
	status, err := h.progressService.GetStatus(c.Request.Context(), userID, workoutID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapStatusToResponse(status))
}

// CompleteSet handles POST /history/:userId/complete.
func (h *HistoryHandler) CompleteSet(c *gin.Context) {
	var req CompleteSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	result, err := h.progressService.CompleteSet(c.Request.Context(), c.Param("userId"), req.WorkoutID, req.SetID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapCompletionToResponse(result))
}

// UpdateSetProgress handles POST /history/:userId/update.
func (h *HistoryHandler) UpdateSetProgress(c *gin.Context) {
	var req UpdateSetProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	progress, err := h.progressService.UpdateSetProgress(
		c.Request.Context(),
		c.Param("userId"),
		req.WorkoutID,
		req.SetID,
		req.CompletedReps,
		req.CompletedDurationSec,
	)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Progress updated successfully",
		"workout_id": req.WorkoutID,
		"set_id":     req.SetID,
		"progress":   progress,
	})
}

// UpdateStatus handles PUT /history/:userId/status: completion with an
// optional workout id, defaulting to the user's active workout.
func (h *HistoryHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID := c.Param("userId")
	workoutID := req.WorkoutID
	if workoutID == "" {
		var err error
		workoutID, err = h.userService.ActiveWorkoutID(c.Request.Context(), userID)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
	}

	result, err := h.progressService.CompleteSet(c.Request.Context(), userID, workoutID, req.SetID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapCompletionToResponse(result))
}
