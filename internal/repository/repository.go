package repository

import (
	"context"

	"workout-tracker/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound  = RepositoryError("not found")
	ErrDuplicate = RepositoryError("duplicate key")
	// ErrConflict is returned by conditional updates when the stored record
	// changed since it was read (lost compare-and-swap race).
	ErrConflict = RepositoryError("conflicting concurrent update")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	// AddWorkoutID appends workoutID to the user's associated workouts.
	// Returns ErrDuplicate when already associated.
	AddWorkoutID(ctx context.Context, userID, workoutID string) error
	// RemoveWorkoutID removes workoutID from the user's associated workouts.
	// Returns ErrNotFound when the user does not exist or the workout is not
	// associated.
	RemoveWorkoutID(ctx context.Context, userID, workoutID string) error
}

// ExerciseRepository defines the interface for interacting with exercise data.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) error
	GetByID(ctx context.Context, id string) (*domain.Exercise, error)
	Delete(ctx context.Context, id string) error
}

// SetRepository defines the interface for interacting with set data.
type SetRepository interface {
	Create(ctx context.Context, set *domain.Set) error
	GetByID(ctx context.Context, id string) (*domain.Set, error)
	Delete(ctx context.Context, id string) error
}

// WorkoutRepository defines the interface for interacting with workout data.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) error
	GetByID(ctx context.Context, id string) (*domain.Workout, error)
	Delete(ctx context.Context, id string) error
}

// ProgressRepository stores per-(user, workout) progress records. Update is
// a compare-and-swap keyed on ProgressRecord.Version: it succeeds only when
// the stored version still matches the one that was read, bumping the version
// on success, and returns ErrConflict otherwise. This serializes the
// read-modify-write cycle of concurrent completions.
type ProgressRepository interface {
	GetByID(ctx context.Context, id string) (*domain.ProgressRecord, error)
	Create(ctx context.Context, record *domain.ProgressRecord) error
	Update(ctx context.Context, record *domain.ProgressRecord) error
}
