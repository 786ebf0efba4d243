package service

import (
	"context"
	"errors"
	"fmt"

	"workout-tracker/internal/domain"
	"workout-tracker/internal/repository"

	log "github.com/sirupsen/logrus"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound      = errors.New("exercise not found")
	ErrExerciseAlreadyExists = errors.New("exercise already exists")
	ErrValidationFailed      = errors.New("validation failed")
)

// ExerciseService manages the exercise definition library.
type ExerciseService interface {
	CreateExercise(ctx context.Context, exercise domain.Exercise) (*domain.Exercise, error)
	GetExercise(ctx context.Context, exerciseID string) (*domain.Exercise, error)
	DeleteExercise(ctx context.Context, exerciseID string) error
}

type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{exerciseRepo: exerciseRepo}
}

func (s *exerciseService) CreateExercise(ctx context.Context, exercise domain.Exercise) (*domain.Exercise, error) {
	if exercise.ID == "" || exercise.Name == "" {
		return nil, fmt.Errorf("%w: exercise id and name are required", ErrValidationFailed)
	}

	if err := s.exerciseRepo.Create(ctx, &exercise); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: %q", ErrExerciseAlreadyExists, exercise.ID)
		}
		return nil, err
	}

	log.WithField("exerciseId", exercise.ID).Info("exercise created")
	return &exercise, nil
}

func (s *exerciseService) GetExercise(ctx context.Context, exerciseID string) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrExerciseNotFound, exerciseID)
		}
		return nil, err
	}
	return exercise, nil
}

func (s *exerciseService) DeleteExercise(ctx context.Context, exerciseID string) error {
	if err := s.exerciseRepo.Delete(ctx, exerciseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: %q", ErrExerciseNotFound, exerciseID)
		}
		return err
	}
	log.WithField("exerciseId", exerciseID).Info("exercise deleted")
	return nil
}
