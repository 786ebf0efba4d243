package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"workout-tracker/internal/domain"
	"workout-tracker/internal/repository"

	log "github.com/sirupsen/logrus"
)

// --- Error Definitions ---
var (
	ErrSetNotFound        = errors.New("set not found in workout plan")
	ErrSetNotInCurrentDay = errors.New("set is not part of the current day")
	// ErrConcurrentModification means the record changed under us more times
	// than the engine was willing to retry; the caller should repeat the
	// whole operation.
	ErrConcurrentModification = errors.New("progress was modified concurrently, retry the operation")
)

// casRetryLimit bounds how often an operation is recomputed after losing the
// conditional-update race before giving up with ErrConcurrentModification.
const casRetryLimit = 3

// CompletionResult is the outcome of marking one set complete.
type CompletionResult struct {
	Message         string
	WorkoutID       string
	SetID           string
	DayComplete     bool
	NewDayStarted   bool
	NewDayName      string
	CurrentDayIndex int
}

// ProgressService is the workout-progress state machine. It tracks, per
// (user, workout) pair, which day of the plan is active and which of that
// day's sets are complete, advancing the day pointer when a day finishes and
// rolling over to day 0 at the end of the plan.
//
// All three operations go through the same conditional-update discipline:
// even GetStatus can write (reconciliation), so it must not lose races with
// concurrent completions. Every retry re-reads the record and re-derives the
// decision from stored state, never re-applying a remembered delta, which
// keeps retried calls safe after a partial failure.
type ProgressService interface {
	// GetStatus returns the user's current position in the workout,
	// reconciling first: an out-of-range day index is reset to 0, and a day
	// that is already fully complete is advanced past, exactly as a
	// CompleteSet-triggered advancement would.
	GetStatus(ctx context.Context, userID, workoutID string) (*WorkoutStatus, error)
	// CompleteSet marks a set of the current day complete. Completing an
	// already-complete set is idempotent but still performs the
	// day-completion check, so a retry after an interrupted advancement
	// cannot get stuck.
	CompleteSet(ctx context.Context, userID, workoutID, setID string) (*CompletionResult, error)
	// UpdateSetProgress records partial progress (reps/duration) on any set
	// of the plan. It never marks completion and never advances the day.
	UpdateSetProgress(ctx context.Context, userID, workoutID, setID string, completedReps, completedDurationSec *int) (*domain.SetProgress, error)
}

type progressService struct {
	userRepo     repository.UserRepository
	progressRepo repository.ProgressRepository
	planReader   PlanReader
}

// NewProgressService creates a new instance of progressService.
func NewProgressService(
	userRepo repository.UserRepository,
	progressRepo repository.ProgressRepository,
	planReader PlanReader,
) ProgressService {
	return &progressService{
		userRepo:     userRepo,
		progressRepo: progressRepo,
		planReader:   planReader,
	}
}

func (s *progressService) GetStatus(ctx context.Context, userID, workoutID string) (*WorkoutStatus, error) {
	plan, err := s.loadTrackablePlan(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < casRetryLimit; attempt++ {
		record, err := s.getOrCreateRecord(ctx, userID, workoutID)
		if err != nil {
			return nil, err
		}

		changed := s.reconcile(record, plan)
		if changed {
			if err := s.progressRepo.Update(ctx, record); err != nil {
				if errors.Is(err, repository.ErrConflict) {
					continue
				}
				return nil, err
			}
		}

		dayIndex := record.CurrentDayIndex
		day := plan[dayIndex]
		details, err := s.resolveDayDetails(ctx, day)
		if err != nil {
			return nil, err
		}
		return BuildStatus(record, dayIndex, day, details), nil
	}
	return nil, ErrConcurrentModification
}

func (s *progressService) CompleteSet(ctx context.Context, userID, workoutID, setID string) (*CompletionResult, error) {
	plan, err := s.loadTrackablePlan(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < casRetryLimit; attempt++ {
		result, err := s.completeSetOnce(ctx, userID, workoutID, setID, plan)
		if err != nil {
			if errors.Is(err, repository.ErrConflict) {
				continue
			}
			return nil, err
		}
		return result, nil
	}
	return nil, ErrConcurrentModification
}

// completeSetOnce runs one full read-validate-mutate-persist cycle. A
// repository.ErrConflict from either persist aborts the cycle so the caller
// can recompute against fresh state.
func (s *progressService) completeSetOnce(ctx context.Context, userID, workoutID, setID string, plan []domain.DayPlan) (*CompletionResult, error) {
	record, err := s.getOrCreateRecord(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}

	if record.CurrentDayIndex < 0 || record.CurrentDayIndex >= len(plan) {
		record.CurrentDayIndex = 0
	}
	dayIndex := record.CurrentDayIndex
	day := plan[dayIndex]

	if !day.ContainsSet(setID) {
		return nil, fmt.Errorf("%w: set %q, day %q", ErrSetNotInCurrentDay, setID, day.Day)
	}

	wasComplete := record.HasCompleted(setID)
	if !wasComplete {
		record.MarkCompleted(setID)
		if err := s.stampCompletion(ctx, record, setID); err != nil {
			return nil, err
		}
	}

	// Persist the completion before deciding about advancement. If the
	// second write below is lost, a retried call re-derives the same
	// decision from this state.
	if err := s.progressRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	result := &CompletionResult{
		WorkoutID:       workoutID,
		SetID:           setID,
		CurrentDayIndex: dayIndex,
	}
	if wasComplete {
		result.Message = fmt.Sprintf("Set '%s' was already complete. Checking day progress...", setID)
	} else {
		result.Message = fmt.Sprintf("Set '%s' marked as complete", setID)
	}

	if !record.DayComplete(day) {
		return result, nil
	}
	result.DayComplete = true

	nextIndex := advance(record, plan)
	if err := s.progressRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	result.NewDayStarted = true
	result.NewDayName = plan[nextIndex].Day
	result.CurrentDayIndex = nextIndex
	if nextIndex == 0 && dayIndex == len(plan)-1 {
		result.Message = fmt.Sprintf("All sets in '%s' completed! Rolling over to first day '%s'.", day.Day, plan[0].Day)
	} else {
		result.Message = fmt.Sprintf("All sets in '%s' completed! Moving to next day: '%s'", day.Day, plan[nextIndex].Day)
	}

	log.WithFields(log.Fields{
		"userId":    userID,
		"workoutId": workoutID,
		"fromDay":   day.Day,
		"toDay":     plan[nextIndex].Day,
		"dayIndex":  nextIndex,
	}).Info("day complete, advancing")

	return result, nil
}

func (s *progressService) UpdateSetProgress(ctx context.Context, userID, workoutID, setID string, completedReps, completedDurationSec *int) (*domain.SetProgress, error) {
	plan, err := s.planReader.DayPlans(ctx, workoutID)
	if err != nil {
		return nil, err
	}
	if !setInAnyDay(plan, setID) {
		return nil, fmt.Errorf("%w: set %q", ErrSetNotFound, setID)
	}

	for attempt := 0; attempt < casRetryLimit; attempt++ {
		record, err := s.getOrCreateRecord(ctx, userID, workoutID)
		if err != nil {
			return nil, err
		}

		progress := record.SetProgress[setID]
		if completedReps != nil {
			progress.CompletedReps = completedReps
		}
		if completedDurationSec != nil {
			progress.CompletedDurationSec = completedDurationSec
		}
		progress.UpdatedAt = time.Now().UTC()
		record.SetProgress[setID] = progress

		if err := s.progressRepo.Update(ctx, record); err != nil {
			if errors.Is(err, repository.ErrConflict) {
				continue
			}
			return nil, err
		}
		return &progress, nil
	}
	return nil, ErrConcurrentModification
}

// loadTrackablePlan validates user and workout and returns a non-empty plan.
func (s *progressService) loadTrackablePlan(ctx context.Context, userID, workoutID string) ([]domain.DayPlan, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: user %q", ErrUserNotFound, userID)
		}
		return nil, err
	}

	plan, err := s.planReader.DayPlans(ctx, workoutID)
	if err != nil {
		return nil, err
	}
	if len(plan) == 0 {
		return nil, fmt.Errorf("%w: workout %q", ErrEmptyPlan, workoutID)
	}
	return plan, nil
}

// getOrCreateRecord lazily creates the progress record on first contact with
// a (user, workout) pair. Losing the create race to a concurrent caller is
// fine; the winner's record is re-read.
func (s *progressService) getOrCreateRecord(ctx context.Context, userID, workoutID string) (*domain.ProgressRecord, error) {
	id := domain.ProgressID(userID, workoutID)
	record, err := s.progressRepo.GetByID(ctx, id)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	record = domain.NewProgressRecord(userID, workoutID)
	if err := s.progressRepo.Create(ctx, record); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return s.progressRepo.GetByID(ctx, id)
		}
		return nil, err
	}
	log.WithFields(log.Fields{"userId": userID, "workoutId": workoutID}).Info("created progress record")
	return record, nil
}

// reconcile corrects the record in memory: an out-of-range day index is
// treated as a completed-but-unobserved rollover and reset to 0, and a fully
// complete current day is advanced past (single step). Reports whether the
// record changed and needs persisting.
func (s *progressService) reconcile(record *domain.ProgressRecord, plan []domain.DayPlan) bool {
	changed := false
	if record.CurrentDayIndex < 0 || record.CurrentDayIndex >= len(plan) {
		log.WithFields(log.Fields{
			"userId":   record.UserID,
			"dayIndex": record.CurrentDayIndex,
		}).Warn("day index out of range, resetting to day 0")
		record.CurrentDayIndex = 0
		changed = true
	}
	if record.DayComplete(plan[record.CurrentDayIndex]) {
		advance(record, plan)
		changed = true
	}
	return changed
}

// advance moves the record to the next day, clearing the finished day's
// completion marks so a future repeat of that day starts unmarked. On
// rollover the new day 0 is cleared as well; marks of all other days stay
// until they are themselves advanced past. Returns the new day index.
func advance(record *domain.ProgressRecord, plan []domain.DayPlan) int {
	current := record.CurrentDayIndex
	record.ClearCompleted(plan[current].SetIDs)
	next := current + 1
	if next >= len(plan) {
		next = 0
		record.ClearCompleted(plan[0].SetIDs)
	}
	record.CurrentDayIndex = next
	return next
}

// stampCompletion fills the set's display progress at completion time,
// defaulting completed reps/duration to the prescribed targets when the
// client reported nothing more precise.
func (s *progressService) stampCompletion(ctx context.Context, record *domain.ProgressRecord, setID string) error {
	now := time.Now().UTC()
	progress := record.SetProgress[setID]
	progress.IsComplete = true
	progress.CompletedAt = &now
	progress.UpdatedAt = now

	details, err := s.planReader.SetDetails(ctx, setID)
	if err != nil {
		return err
	}
	if details != nil {
		if details.Set.Reps != nil && progress.CompletedReps == nil {
			progress.CompletedReps = details.Set.Reps
		}
		if details.Set.DurationSec != nil && progress.CompletedDurationSec == nil {
			progress.CompletedDurationSec = details.Set.DurationSec
		}
	}

	record.SetProgress[setID] = progress
	return nil
}

func (s *progressService) resolveDayDetails(ctx context.Context, day domain.DayPlan) (map[string]*SetDetails, error) {
	details := make(map[string]*SetDetails, len(day.SetIDs))
	for _, setID := range day.SetIDs {
		d, err := s.planReader.SetDetails(ctx, setID)
		if err != nil {
			return nil, err
		}
		if d != nil {
			details[setID] = d
		}
	}
	return details, nil
}

func setInAnyDay(plan []domain.DayPlan, setID string) bool {
	for _, day := range plan {
		if day.ContainsSet(setID) {
			return true
		}
	}
	return false
}
