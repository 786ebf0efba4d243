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

// ErrSetNotFoundByID is returned when a set id resolves to no stored set.
// Distinct from ErrSetNotFound, which is about plan membership.
var ErrSetNotFoundByID = errors.New("set not found")

// SetService manages set prescriptions. Sets reference exercises by id but
// the reference is deliberately not validated at creation time: plans are
// tolerant of dangling references and the status projection skips them.
type SetService interface {
	CreateSet(ctx context.Context, name, exerciseID string, reps *int, weight *float64, durationSec *int) (*domain.Set, error)
	GetSet(ctx context.Context, setID string) (*domain.Set, error)
	DeleteSet(ctx context.Context, setID string) error
}

type setService struct {
	setRepo repository.SetRepository
}

// NewSetService creates a new instance of setService.
func NewSetService(setRepo repository.SetRepository) SetService {
	return &setService{setRepo: setRepo}
}

func (s *setService) CreateSet(ctx context.Context, name, exerciseID string, reps *int, weight *float64, durationSec *int) (*domain.Set, error) {
	if name == "" || exerciseID == "" {
		return nil, fmt.Errorf("%w: set name and exercise id are required", ErrValidationFailed)
	}

	set := &domain.Set{
		ID:          uuid.NewString(),
		Name:        name,
		ExerciseID:  exerciseID,
		Reps:        reps,
		Weight:      weight,
		DurationSec: durationSec,
	}
	if err := s.setRepo.Create(ctx, set); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"setId": set.ID, "name": name}).Info("set created")
	return set, nil
}

func (s *setService) GetSet(ctx context.Context, setID string) (*domain.Set, error) {
	set, err := s.setRepo.GetByID(ctx, setID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrSetNotFoundByID, setID)
		}
		return nil, err
	}
	return set, nil
}

func (s *setService) DeleteSet(ctx context.Context, setID string) error {
	if err := s.setRepo.Delete(ctx, setID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: %q", ErrSetNotFoundByID, setID)
		}
		return err
	}
	log.WithField("setId", setID).Info("set deleted")
	return nil
}
