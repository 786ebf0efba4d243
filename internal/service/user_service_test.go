package service

import (
	"context"
	"testing"

	"workout-tracker/internal/domain"
	"workout-tracker/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserServiceFixture(t *testing.T) (*memory.Store, UserService) {
	t.Helper()
	store := memory.NewStore()
	return store, NewUserService(store.Users(), store.Workouts())
}

func TestUserService_CreateAndGet(t *testing.T) {
	_, svc := newUserServiceFixture(t)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.ID)
	assert.Empty(t, user.AssociatedWorkoutIDs)

	_, err = svc.CreateUser(ctx, "alice")
	require.ErrorIs(t, err, ErrUserAlreadyExists)

	fetched, err := svc.GetUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", fetched.ID)

	_, err = svc.GetUser(ctx, "bob")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_AddWorkout(t *testing.T) {
	store, svc := newUserServiceFixture(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "alice")
	require.NoError(t, err)
	require.NoError(t, store.Workouts().Create(ctx, &domain.Workout{ID: "w1"}))
	require.NoError(t, store.Workouts().Create(ctx, &domain.Workout{ID: "w2"}))

	user, err := svc.AddWorkout(ctx, "alice", "w1")
	require.NoError(t, err)
	assert.Equal(t, []string{"w1"}, user.AssociatedWorkoutIDs)

	// Associating the same workout twice is rejected.
	_, err = svc.AddWorkout(ctx, "alice", "w1")
	require.ErrorIs(t, err, ErrWorkoutAlreadyAssociated)

	// Unknown workout is rejected before touching the user.
	_, err = svc.AddWorkout(ctx, "alice", "missing")
	require.ErrorIs(t, err, ErrWorkoutNotFound)

	user, err = svc.AddWorkout(ctx, "alice", "w2")
	require.NoError(t, err)
	assert.Equal(t, []string{"w1", "w2"}, user.AssociatedWorkoutIDs)
}

func TestUserService_RemoveWorkout(t *testing.T) {
	store, svc := newUserServiceFixture(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "alice")
	require.NoError(t, err)
	require.NoError(t, store.Workouts().Create(ctx, &domain.Workout{ID: "w1"}))
	_, err = svc.AddWorkout(ctx, "alice", "w1")
	require.NoError(t, err)

	user, err := svc.RemoveWorkout(ctx, "alice", "w1")
	require.NoError(t, err)
	assert.Empty(t, user.AssociatedWorkoutIDs)

	_, err = svc.RemoveWorkout(ctx, "alice", "w1")
	require.ErrorIs(t, err, ErrUserNotFound)
}

// The default workout is the first-associated one, in association order.
func TestUserService_ActiveWorkoutID(t *testing.T) {
	store, svc := newUserServiceFixture(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "alice")
	require.NoError(t, err)

	_, err = svc.ActiveWorkoutID(ctx, "alice")
	require.ErrorIs(t, err, ErrNoAssociatedWorkouts)

	require.NoError(t, store.Workouts().Create(ctx, &domain.Workout{ID: "w1"}))
	require.NoError(t, store.Workouts().Create(ctx, &domain.Workout{ID: "w2"}))
	_, err = svc.AddWorkout(ctx, "alice", "w1")
	require.NoError(t, err)
	_, err = svc.AddWorkout(ctx, "alice", "w2")
	require.NoError(t, err)

	active, err := svc.ActiveWorkoutID(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "w1", active)

	// Removing the first association promotes the next one.
	_, err = svc.RemoveWorkout(ctx, "alice", "w1")
	require.NoError(t, err)
	active, err = svc.ActiveWorkoutID(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "w2", active)
}
