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
	ErrUserNotFound             = errors.New("user not found")
	ErrUserAlreadyExists        = errors.New("user already exists")
	ErrWorkoutAlreadyAssociated = errors.New("workout is already associated with user")
	ErrNoAssociatedWorkouts     = errors.New("user has no associated workouts")
)

// UserService manages user accounts and their workout associations.
type UserService interface {
	CreateUser(ctx context.Context, userID string) (*domain.User, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string) error

	// AddWorkout associates an existing workout with the user.
	AddWorkout(ctx context.Context, userID, workoutID string) (*domain.User, error)
	// RemoveWorkout removes the association; progress records are left in
	// place and simply become unreachable through this user's defaults.
	RemoveWorkout(ctx context.Context, userID, workoutID string) (*domain.User, error)

	// ActiveWorkoutID resolves the user's default workout: the
	// first-associated one. Callers that have an explicit workout id should
	// not go through this.
	ActiveWorkoutID(ctx context.Context, userID string) (string, error)
}

type userService struct {
	userRepo    repository.UserRepository
	workoutRepo repository.WorkoutRepository
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo repository.UserRepository, workoutRepo repository.WorkoutRepository) UserService {
	return &userService{
		userRepo:    userRepo,
		workoutRepo: workoutRepo,
	}
}

func (s *userService) CreateUser(ctx context.Context, userID string) (*domain.User, error) {
	if userID == "" {
		return nil, errors.New("user id is required")
	}

	user := &domain.User{
		ID:                   userID,
		AssociatedWorkoutIDs: []string{},
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: %q", ErrUserAlreadyExists, userID)
		}
		return nil, err
	}

	log.WithField("userId", userID).Info("user created")
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrUserNotFound, userID)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: %q", ErrUserNotFound, userID)
		}
		return err
	}
	log.WithField("userId", userID).Info("user deleted")
	return nil
}

func (s *userService) AddWorkout(ctx context.Context, userID, workoutID string) (*domain.User, error) {
	// Validate the workout exists before associating it.
	if _, err := s.workoutRepo.GetByID(ctx, workoutID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrWorkoutNotFound, workoutID)
		}
		return nil, err
	}

	if err := s.userRepo.AddWorkoutID(ctx, userID, workoutID); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, fmt.Errorf("%w: %q", ErrUserNotFound, userID)
		case errors.Is(err, repository.ErrDuplicate):
			return nil, fmt.Errorf("%w: workout %q", ErrWorkoutAlreadyAssociated, workoutID)
		default:
			return nil, err
		}
	}

	log.WithFields(log.Fields{"userId": userID, "workoutId": workoutID}).Info("workout associated with user")
	return s.GetUser(ctx, userID)
}

func (s *userService) RemoveWorkout(ctx context.Context, userID, workoutID string) (*domain.User, error) {
	if err := s.userRepo.RemoveWorkoutID(ctx, userID, workoutID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: user %q, workout %q", ErrUserNotFound, userID, workoutID)
		}
		return nil, err
	}

	log.WithFields(log.Fields{"userId": userID, "workoutId": workoutID}).Info("workout dissociated from user")
	return s.GetUser(ctx, userID)
}

func (s *userService) ActiveWorkoutID(ctx context.Context, userID string) (string, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return "", err
	}
	workoutID, ok := user.ActiveWorkoutID()
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNoAssociatedWorkouts, userID)
	}
	return workoutID, nil
}
