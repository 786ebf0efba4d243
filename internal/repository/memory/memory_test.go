package memory

import (
	"context"
	"testing"

	"workout-tracker/internal/domain"
	"workout-tracker/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressRepo_VersionConditionalUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Progress()

	record := domain.NewProgressRecord("u1", "w1")
	require.NoError(t, repo.Create(ctx, record))
	require.ErrorIs(t, repo.Create(ctx, domain.NewProgressRecord("u1", "w1")), repository.ErrDuplicate)

	// Two readers load the same version.
	first, err := repo.GetByID(ctx, record.ID)
	require.NoError(t, err)
	second, err := repo.GetByID(ctx, record.ID)
	require.NoError(t, err)

	first.MarkCompleted("A")
	require.NoError(t, repo.Update(ctx, first))
	assert.Equal(t, int64(1), first.Version)

	// The stale reader's write is rejected.
	second.MarkCompleted("B")
	require.ErrorIs(t, repo.Update(ctx, second), repository.ErrConflict)

	// A fresh read carries the winning state and can write again.
	fresh, err := repo.GetByID(ctx, record.ID)
	require.NoError(t, err)
	assert.True(t, fresh.HasCompleted("A"))
	assert.False(t, fresh.HasCompleted("B"))
	fresh.MarkCompleted("B")
	require.NoError(t, repo.Update(ctx, fresh))
	assert.Equal(t, int64(2), fresh.Version)
}

func TestProgressRepo_UpdateMissingRecord(t *testing.T) {
	repo := NewStore().Progress()
	err := repo.Update(context.Background(), domain.NewProgressRecord("u1", "w1"))
	require.ErrorIs(t, err, repository.ErrNotFound)
}

// Stored state must not be mutable through values handed back to callers.
func TestStore_ReturnsIsolatedCopies(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	require.NoError(t, store.Workouts().Create(ctx, &domain.Workout{
		ID:   "w1",
		Plan: []domain.DayPlan{{Day: "Monday", SetIDs: []string{"A"}}},
	}))
	workout, err := store.Workouts().GetByID(ctx, "w1")
	require.NoError(t, err)
	workout.Plan[0].SetIDs[0] = "mutated"

	again, err := store.Workouts().GetByID(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, "A", again.Plan[0].SetIDs[0])

	record := domain.NewProgressRecord("u1", "w1")
	require.NoError(t, store.Progress().Create(ctx, record))
	loaded, err := store.Progress().GetByID(ctx, record.ID)
	require.NoError(t, err)
	loaded.MarkCompleted("A")
	loaded.SetProgress["A"] = domain.SetProgress{IsComplete: true}

	reloaded, err := store.Progress().GetByID(ctx, record.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.HasCompleted("A"))
	assert.Empty(t, reloaded.SetProgress)
}
