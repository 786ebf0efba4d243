package api

import (
	"fmt"
	"net/http"

	"workout-tracker/internal/domain"
	"workout-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// SetHandler holds the set service dependency.
type SetHandler struct {
	setService service.SetService
}

// NewSetHandler creates a new SetHandler.
func NewSetHandler(setService service.SetService) *SetHandler {
	return &SetHandler{setService: setService}
}

// --- DTOs ---

// CreateSetRequest defines the expected JSON for creating a set.
type CreateSetRequest struct {
	Name        string   `json:"name" binding:"required"`
	ExerciseID  string   `json:"exercise_id" binding:"required"`
	Reps        *int     `json:"reps"`
	Weight      *float64 `json:"weight"`
	DurationSec *int     `json:"duration_sec"`
}

// SetResponse is the DTO for returning set details.
type SetResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ExerciseID  string   `json:"exercise_id"`
	Reps        *int     `json:"reps"`
	Weight      *float64 `json:"weight"`
	DurationSec *int     `json:"duration_sec"`
}

func mapSetToResponse(set *domain.Set) SetResponse {
	return SetResponse{
		ID:          set.ID,
		Name:        set.Name,
		ExerciseID:  set.ExerciseID,
		Reps:        set.Reps,
		Weight:      set.Weight,
		DurationSec: set.DurationSec,
	}
}

// --- Handler Methods ---

// CreateSet handles POST /sets.
func (h *SetHandler) CreateSet(c *gin.Context) {
	var req CreateSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	set, err := h.setService.CreateSet(c.Request.Context(), req.Name, req.ExerciseID, req.Reps, req.Weight, req.DurationSec)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mapSetToResponse(set))
}

// GetSet handles GET /sets/:setId.
func (h *SetHandler) GetSet(c *gin.Context) {
	set, err := h.setService.GetSet(c.Request.Context(), c.Param("setId"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSetToResponse(set))
}

// DeleteSet handles DELETE /sets/:setId.
func (h *SetHandler) DeleteSet(c *gin.Context) {
	setID := c.Param("setId")
	if err := h.setService.DeleteSet(c.Request.Context(), setID); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Set with set_id '%s' has been successfully deleted", setID),
		"set_id":  setID,
	})
}
