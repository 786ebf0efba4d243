package service

import (
	"context"
	"testing"

	"workout-tracker/internal/domain"
	"workout-tracker/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanReader_DayPlans(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	reader := NewPlanReader(store.Workouts(), store.Sets(), store.Exercises())

	require.NoError(t, store.Workouts().Create(ctx, &domain.Workout{
		ID: "w1",
		Plan: []domain.DayPlan{
			{Day: "Monday", SetIDs: []string{"A"}},
			{Day: "Friday", SetIDs: []string{"B"}},
		},
	}))

	plan, err := reader.DayPlans(ctx, "w1")
	require.NoError(t, err)
	require.Len(t, plan, 2)
	assert.Equal(t, "Monday", plan[0].Day)
	assert.Equal(t, "Friday", plan[1].Day)

	_, err = reader.DayPlans(ctx, "missing")
	require.ErrorIs(t, err, ErrWorkoutNotFound)
}

func TestPlanReader_SetDetails(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	reader := NewPlanReader(store.Workouts(), store.Sets(), store.Exercises())

	require.NoError(t, store.Exercises().Create(ctx, &domain.Exercise{ID: "bench", Name: "Bench Press"}))
	require.NoError(t, store.Sets().Create(ctx, &domain.Set{ID: "A", Name: "Set A", ExerciseID: "bench"}))
	require.NoError(t, store.Sets().Create(ctx, &domain.Set{ID: "B", Name: "Set B", ExerciseID: "gone"}))

	details, err := reader.SetDetails(ctx, "A")
	require.NoError(t, err)
	require.NotNil(t, details)
	assert.Equal(t, "Set A", details.Set.Name)
	require.NotNil(t, details.Exercise)
	assert.Equal(t, "Bench Press", details.Exercise.Name)

	// A set whose exercise no longer exists is still returned.
	details, err = reader.SetDetails(ctx, "B")
	require.NoError(t, err)
	require.NotNil(t, details)
	assert.Nil(t, details.Exercise)

	// A dangling set reference is not an error.
	details, err = reader.SetDetails(ctx, "ghost")
	require.NoError(t, err)
	assert.Nil(t, details)
}
