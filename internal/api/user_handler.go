package api

import (
	"fmt"
	"net/http"

	"workout-tracker/internal/domain"
	"workout-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler holds the user service dependency.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// --- DTOs ---

// UserResponse is the DTO for returning user details.
type UserResponse struct {
	UserID               string   `json:"user_id"`
	AssociatedWorkoutIDs []string `json:"associated_workout_ids"`
	Message              string   `json:"message,omitempty"`
}

func mapUserToResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:               user.ID,
		AssociatedWorkoutIDs: user.AssociatedWorkoutIDs,
	}
}

// --- Handler Methods ---

// CreateUser handles POST /users/:userId.
func (h *UserHandler) CreateUser(c *gin.Context) {
	userID := c.Param("userId")

	user, err := h.userService.CreateUser(c.Request.Context(), userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mapUserToResponse(user))
}

// GetUser handles GET /users/:userId.
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapUserToResponse(user))
}

// DeleteUser handles DELETE /users/:userId.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID := c.Param("userId")
	if err := h.userService.DeleteUser(c.Request.Context(), userID); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("User with user_id '%s' has been successfully deleted", userID),
		"user_id": userID,
	})
}

// AddWorkout handles POST /users/:userId/workouts/:workoutId.
func (h *UserHandler) AddWorkout(c *gin.Context) {
	userID := c.Param("userId")
	workoutID := c.Param("workoutId")

	user, err := h.userService.AddWorkout(c.Request.Context(), userID, workoutID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	resp := mapUserToResponse(user)
	resp.Message = fmt.Sprintf("Successfully added workout '%s' to user '%s'", workoutID, userID)
	c.JSON(http.StatusOK, resp)
}

// RemoveWorkout handles DELETE /users/:userId/workouts/:workoutId.
func (h *UserHandler) RemoveWorkout(c *gin.Context) {
	userID := c.Param("userId")
	workoutID := c.Param("workoutId")

	user, err := h.userService.RemoveWorkout(c.Request.Context(), userID, workoutID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	resp := mapUserToResponse(user)
	resp.Message = fmt.Sprintf("Successfully removed workout '%s' from user '%s'", workoutID, userID)
	c.JSON(http.StatusOK, resp)
}
