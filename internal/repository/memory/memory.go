// Package memory provides in-memory implementations of the repository
// interfaces. They mirror the MongoDB implementations' semantics — including
// the version-conditional progress update — and back the service and handler
// tests, where a running mongod is not available.
package memory

import (
	"context"
	"sync"
	"time"

	"workout-tracker/internal/domain"
	"workout-tracker/internal/repository"
)

// Store holds all collections behind a single lock.
type Store struct {
	mu        sync.RWMutex
	users     map[string]*domain.User
	exercises map[string]*domain.Exercise
	sets      map[string]*domain.Set
	workouts  map[string]*domain.Workout
	progress  map[string]*domain.ProgressRecord
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		users:     map[string]*domain.User{},
		exercises: map[string]*domain.Exercise{},
		sets:      map[string]*domain.Set{},
		workouts:  map[string]*domain.Workout{},
		progress:  map[string]*domain.ProgressRecord{},
	}
}

func (s *Store) Users() repository.UserRepository         { return &userRepo{s} }
func (s *Store) Exercises() repository.ExerciseRepository { return &exerciseRepo{s} }
func (s *Store) Sets() repository.SetRepository           { return &setRepo{s} }
func (s *Store) Workouts() repository.WorkoutRepository   { return &workoutRepo{s} }
func (s *Store) Progress() repository.ProgressRepository  { return &progressRepo{s} }

// --- users ---

type userRepo struct{ store *Store }

func (r *userRepo) Create(_ context.Context, user *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.users[user.ID]; ok {
		return repository.ErrDuplicate
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.AssociatedWorkoutIDs == nil {
		user.AssociatedWorkoutIDs = []string{}
	}
	r.store.users[user.ID] = copyUser(user)
	return nil
}

func (r *userRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	user, ok := r.store.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return copyUser(user), nil
}

func (r *userRepo) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.store.users, id)
	return nil
}

func (r *userRepo) AddWorkoutID(_ context.Context, userID, workoutID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	user, ok := r.store.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	if user.HasWorkout(workoutID) {
		return repository.ErrDuplicate
	}
	user.AssociatedWorkoutIDs = append(user.AssociatedWorkoutIDs, workoutID)
	user.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *userRepo) RemoveWorkoutID(_ context.Context, userID, workoutID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	user, ok := r.store.users[userID]
	if !ok || !user.HasWorkout(workoutID) {
		return repository.ErrNotFound
	}
	kept := user.AssociatedWorkoutIDs[:0]
	for _, id := range user.AssociatedWorkoutIDs {
		if id != workoutID {
			kept = append(kept, id)
		}
	}
	user.AssociatedWorkoutIDs = kept
	user.UpdatedAt = time.Now().UTC()
	return nil
}

// --- exercises ---

type exerciseRepo struct{ store *Store }

func (r *exerciseRepo) Create(_ context.Context, exercise *domain.Exercise) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.exercises[exercise.ID]; ok {
		return repository.ErrDuplicate
	}
	now := time.Now().UTC()
	exercise.CreatedAt = now
	exercise.UpdatedAt = now
	clone := *exercise
	r.store.exercises[exercise.ID] = &clone
	return nil
}

func (r *exerciseRepo) GetByID(_ context.Context, id string) (*domain.Exercise, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	exercise, ok := r.store.exercises[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *exercise
	return &clone, nil
}

func (r *exerciseRepo) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.exercises[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.store.exercises, id)
	return nil
}

// --- sets ---

type setRepo struct{ store *Store }

func (r *setRepo) Create(_ context.Context, set *domain.Set) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.sets[set.ID]; ok {
		return repository.ErrDuplicate
	}
	now := time.Now().UTC()
	set.CreatedAt = now
	set.UpdatedAt = now
	clone := *set
	r.store.sets[set.ID] = &clone
	return nil
}

func (r *setRepo) GetByID(_ context.Context, id string) (*domain.Set, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	set, ok := r.store.sets[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *set
	return &clone, nil
}

func (r *setRepo) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.sets[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.store.sets, id)
	return nil
}

// --- workouts ---

type workoutRepo struct{ store *Store }

func (r *workoutRepo) Create(_ context.Context, workout *domain.Workout) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.workouts[workout.ID]; ok {
		return repository.ErrDuplicate
	}
	now := time.Now().UTC()
	workout.CreatedAt = now
	workout.UpdatedAt = now
	if workout.Plan == nil {
		workout.Plan = []domain.DayPlan{}
	}
	r.store.workouts[workout.ID] = copyWorkout(workout)
	return nil
}

func (r *workoutRepo) GetByID(_ context.Context, id string) (*domain.Workout, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	workout, ok := r.store.workouts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return copyWorkout(workout), nil
}

func (r *workoutRepo) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.workouts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.store.workouts, id)
	return nil
}

// --- progress ---

type progressRepo struct{ store *Store }

func (r *progressRepo) GetByID(_ context.Context, id string) (*domain.ProgressRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	record, ok := r.store.progress[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return copyProgress(record), nil
}

func (r *progressRepo) Create(_ context.Context, record *domain.ProgressRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.progress[record.ID]; ok {
		return repository.ErrDuplicate
	}
	record.Version = 0
	r.store.progress[record.ID] = copyProgress(record)
	return nil
}

// Update applies the same compare-and-swap rule as the MongoDB repository:
// it succeeds only when the stored version matches the version the caller
// read, and bumps the version on success.
func (r *progressRepo) Update(_ context.Context, record *domain.ProgressRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	stored, ok := r.store.progress[record.ID]
	if !ok {
		return repository.ErrNotFound
	}
	if stored.Version != record.Version {
		return repository.ErrConflict
	}
	record.UpdatedAt = time.Now().UTC()
	record.Version++
	r.store.progress[record.ID] = copyProgress(record)
	return nil
}

// --- deep copies: callers must never share slices/maps with stored state ---

func copyUser(u *domain.User) *domain.User {
	clone := *u
	clone.AssociatedWorkoutIDs = append([]string{}, u.AssociatedWorkoutIDs...)
	return &clone
}

func copyWorkout(w *domain.Workout) *domain.Workout {
	clone := *w
	clone.Plan = make([]domain.DayPlan, len(w.Plan))
	for i, day := range w.Plan {
		clone.Plan[i] = domain.DayPlan{
			Day:    day.Day,
			SetIDs: append([]string{}, day.SetIDs...),
		}
	}
	return &clone
}

func copyProgress(p *domain.ProgressRecord) *domain.ProgressRecord {
	clone := *p
	clone.CompletedSetIDs = append([]string{}, p.CompletedSetIDs...)
	clone.SetProgress = make(map[string]domain.SetProgress, len(p.SetProgress))
	for k, v := range p.SetProgress {
		clone.SetProgress[k] = v
	}
	return &clone
}
