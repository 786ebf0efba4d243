package api

import (
	"fmt"
	"net/http"

	"workout-tracker/internal/domain"
	"workout-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// --- DTOs ---

// CreateExerciseRequest defines the expected JSON for creating an exercise.
type CreateExerciseRequest struct {
	ExerciseID       string   `json:"exercise_id" binding:"required"`
	Name             string   `json:"name" binding:"required"`
	Force            string   `json:"force"`
	Level            string   `json:"level"`
	Mechanic         string   `json:"mechanic"`
	Equipment        string   `json:"equipment"`
	PrimaryMuscles   []string `json:"primaryMuscles"`
	SecondaryMuscles []string `json:"secondaryMuscles"`
	Instructions     []string `json:"instructions"`
	Category         string   `json:"category"`
}

// ExerciseResponse is the DTO for returning exercise details.
type ExerciseResponse struct {
	ExerciseID       string   `json:"exercise_id"`
	Name             string   `json:"name"`
	Force            string   `json:"force,omitempty"`
	Level            string   `json:"level,omitempty"`
	Mechanic         string   `json:"mechanic,omitempty"`
	Equipment        string   `json:"equipment,omitempty"`
	PrimaryMuscles   []string `json:"primaryMuscles,omitempty"`
	SecondaryMuscles []string `json:"secondaryMuscles,omitempty"`
	Instructions     []string `json:"instructions,omitempty"`
	Category         string   `json:"category,omitempty"`
}

func mapExerciseToResponse(ex *domain.Exercise) ExerciseResponse {
	return ExerciseResponse{
		ExerciseID:       ex.ID,
		Name:             ex.Name,
		Force:            ex.Force,
		Level:            ex.Level,
		Mechanic:         ex.Mechanic,
		Equipment:        ex.Equipment,
		PrimaryMuscles:   ex.PrimaryMuscles,
		SecondaryMuscles: ex.SecondaryMuscles,
		Instructions:     ex.Instructions,
		Category:         ex.Category,
	}
}

// --- Handler Methods ---

// CreateExercise handles POST /exercises.
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exercise, err := h.exerciseService.CreateExercise(c.Request.Context(), domain.Exercise{
		ID:               req.ExerciseID,
		Name:             req.Name,
		Force:            req.Force,
		Level:            req.Level,
		Mechanic:         req.Mechanic,
		Equipment:        req.Equipment,
		PrimaryMuscles:   req.PrimaryMuscles,
		SecondaryMuscles: req.SecondaryMuscles,
		Instructions:     req.Instructions,
		Category:         req.Category,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mapExerciseToResponse(exercise))
}

// GetExercise handles GET /exercises/:exerciseId.
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	exercise, err := h.exerciseService.GetExercise(c.Request.Context(), c.Param("exerciseId"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapExerciseToResponse(exercise))
}

// DeleteExercise handles DELETE /exercises/:exerciseId.
func (h *ExerciseHandler) DeleteExercise(c *gin.Context) {
	exerciseID := c.Param("exerciseId")
	if err := h.exerciseService.DeleteExercise(c.Request.Context(), exerciseID); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     fmt.Sprintf("Exercise with exercise_id '%s' has been successfully deleted", exerciseID),
		"exercise_id": exerciseID,
	})
}
