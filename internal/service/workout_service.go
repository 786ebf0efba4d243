package service

import (
	"context"
	"errors"
	"fmt"

	"workout-tracker/internal/domain"
	"workout-tracker/internal/repository"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// WorkoutService manages workout plans. A workout with an empty plan can be
// stored; it only becomes an error once progress tracking is attempted
// against it.
type WorkoutService interface {
	CreateWorkout(ctx context.Context, plan []domain.DayPlan) (*domain.Workout, error)
	GetWorkout(ctx context.Context, workoutID string) (*domain.Workout, error)
	DeleteWorkout(ctx context.Context, workoutID string) error
}

type workoutService struct {
	workoutRepo repository.WorkoutRepository
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository) WorkoutService {
	return &workoutService{workoutRepo: workoutRepo}
}

func (s *workoutService) CreateWorkout(ctx context.Context, plan []domain.DayPlan) (*domain.Workout, error) {
	if plan == nil {
		return nil, fmt.Errorf("%w: workout plan is required", ErrValidationFailed)
	}
	for i, day := range plan {
		if day.Day == "" {
			return nil, fmt.Errorf("%w: day %d has no label", ErrValidationFailed, i)
		}
	}

	workout := &domain.Workout{
		ID:   uuid.NewString(),
		Plan: plan,
	}
	if err := s.workoutRepo.Create(ctx, workout); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"workoutId": workout.ID, "days": len(plan)}).Info("workout created")
	return workout, nil
}

func (s *workoutService) GetWorkout(ctx context.Context, workoutID string) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrWorkoutNotFound, workoutID)
		}
		return nil, err
	}
	return workout, nil
}

func (s *workoutService) DeleteWorkout(ctx context.Context, workoutID string) error {
	if err := s.workoutRepo.Delete(ctx, workoutID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: %q", ErrWorkoutNotFound, workoutID)
		}
		return err
	}
	log.WithField("workoutId", workoutID).Info("workout deleted")
	return nil
}
