package api

import (
	"errors"
	"net/http"
	"time"

	"workout-tracker/internal/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// RequestLogger logs one structured line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.WithFields(log.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		})
		if len(c.Errors) > 0 {
			entry.Error(c.Errors.String())
			return
		}
		entry.Info("request handled")
	}
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// abortWithServiceError maps service-layer errors onto HTTP status codes.
func abortWithServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrWorkoutNotFound),
		errors.Is(err, service.ErrExerciseNotFound),
		errors.Is(err, service.ErrSetNotFoundByID),
		errors.Is(err, service.ErrSetNotFound),
		errors.Is(err, service.ErrEmptyPlan),
		errors.Is(err, service.ErrNoAssociatedWorkouts):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrSetNotInCurrentDay),
		errors.Is(err, service.ErrValidationFailed):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUserAlreadyExists),
		errors.Is(err, service.ErrExerciseAlreadyExists),
		errors.Is(err, service.ErrWorkoutAlreadyAssociated),
		errors.Is(err, service.ErrConcurrentModification):
		abortWithError(c, http.StatusConflict, err.Error())
	default:
		log.WithError(err).Error("unhandled service error")
		abortWithError(c, http.StatusInternalServerError, "internal server error")
	}
}
