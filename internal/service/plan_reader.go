package service

import (
	"context"
	"errors"

	"workout-tracker/internal/domain"
	"workout-tracker/internal/repository"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound = errors.New("workout not found")
	ErrEmptyPlan       = errors.New("workout plan is empty")
)

// SetDetails is a set prescription enriched with its exercise metadata.
// Exercise is nil when the exercise reference does not resolve.
type SetDetails struct {
	Set      domain.Set
	Exercise *domain.Exercise
}

// PlanReader resolves a workout's ordered day plans and set/exercise
// metadata for display. It is strictly read-only.
type PlanReader interface {
	// DayPlans returns the workout's ordered day sequence, or
	// ErrWorkoutNotFound.
	DayPlans(ctx context.Context, workoutID string) ([]domain.DayPlan, error)
	// SetDetails resolves one set with its exercise. A dangling set
	// reference yields (nil, nil) rather than an error, so one stale id
	// cannot fail a whole projection.
	SetDetails(ctx context.Context, setID string) (*SetDetails, error)
}

type planReader struct {
	workoutRepo  repository.WorkoutRepository
	setRepo      repository.SetRepository
	exerciseRepo repository.ExerciseRepository
}

// NewPlanReader creates a new PlanReader.
func NewPlanReader(
	workoutRepo repository.WorkoutRepository,
	setRepo repository.SetRepository,
	exerciseRepo repository.ExerciseRepository,
) PlanReader {
	return &planReader{
		workoutRepo:  workoutRepo,
		setRepo:      setRepo,
		exerciseRepo: exerciseRepo,
	}
}

func (r *planReader) DayPlans(ctx context.Context, workoutID string) ([]domain.DayPlan, error) {
	workout, err := r.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout.Plan, nil
}

func (r *planReader) SetDetails(ctx context.Context, setID string) (*SetDetails, error) {
	set, err := r.setRepo.GetByID(ctx, setID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	details := &SetDetails{Set: *set}
	if set.ExerciseID == "" {
		return details, nil
	}

	exercise, err := r.exerciseRepo.GetByID(ctx, set.ExerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Exercise was removed; the set is still displayable.
			return details, nil
		}
		return nil, err
	}
	details.Exercise = exercise
	return details, nil
}
