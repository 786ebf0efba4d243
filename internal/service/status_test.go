package service

import (
	"testing"

	"workout-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusDetails(sets ...domain.Set) map[string]*SetDetails {
	details := make(map[string]*SetDetails, len(sets))
	for _, set := range sets {
		details[set.ID] = &SetDetails{
			Set:      set,
			Exercise: &domain.Exercise{ID: set.ExerciseID, Name: "Bench Press"},
		}
	}
	return details
}

func TestBuildStatus_PercentageRounding(t *testing.T) {
	day := domain.DayPlan{Day: "Monday", SetIDs: []string{"a", "b", "c"}}
	details := statusDetails(
		domain.Set{ID: "a", Name: "Set a", ExerciseID: "bench"},
		domain.Set{ID: "b", Name: "Set b", ExerciseID: "bench"},
		domain.Set{ID: "c", Name: "Set c", ExerciseID: "bench"},
	)

	record := domain.NewProgressRecord("u", "w")
	record.MarkCompleted("a")
	status := BuildStatus(record, 0, day, details)
	assert.Equal(t, 1, status.Progress.CompletedSets)
	assert.Equal(t, 3, status.Progress.TotalSets)
	assert.Equal(t, 33, status.Progress.CompletionPercentage)

	record.MarkCompleted("b")
	status = BuildStatus(record, 0, day, details)
	assert.Equal(t, 67, status.Progress.CompletionPercentage)

	record.MarkCompleted("c")
	status = BuildStatus(record, 0, day, details)
	assert.Equal(t, 100, status.Progress.CompletionPercentage)
}

func TestBuildStatus_EmptyDay(t *testing.T) {
	record := domain.NewProgressRecord("u", "w")
	status := BuildStatus(record, 0, domain.DayPlan{Day: "Rest"}, nil)

	assert.Empty(t, status.Sets)
	assert.Equal(t, 0, status.Progress.TotalSets)
	assert.Equal(t, 0, status.Progress.CompletionPercentage)
	assert.Equal(t, "Rest", status.DayName)
}

func TestBuildStatus_SkipsDanglingAndNamesUnknownExercise(t *testing.T) {
	day := domain.DayPlan{Day: "Monday", SetIDs: []string{"a", "ghost", "orphan"}}
	details := map[string]*SetDetails{
		"a": {
			Set:      domain.Set{ID: "a", Name: "Set a", ExerciseID: "bench"},
			Exercise: &domain.Exercise{ID: "bench", Name: "Bench Press"},
		},
		// Set whose exercise no longer resolves.
		"orphan": {
			Set: domain.Set{ID: "orphan", Name: "Set orphan", ExerciseID: "gone"},
		},
	}

	record := domain.NewProgressRecord("u", "w")
	status := BuildStatus(record, 0, day, details)

	require.Len(t, status.Sets, 2)
	assert.Equal(t, "Bench Press", status.Sets[0].ExerciseName)
	assert.Equal(t, "orphan", status.Sets[1].SetID)
	assert.Equal(t, unknownExerciseName, status.Sets[1].ExerciseName)
	assert.Equal(t, 2, status.Progress.TotalSets)
}

func TestBuildStatus_CarriesPartialProgress(t *testing.T) {
	day := domain.DayPlan{Day: "Monday", SetIDs: []string{"a"}}
	details := statusDetails(domain.Set{ID: "a", Name: "Set a", ExerciseID: "bench", Reps: intPtr(12)})

	record := domain.NewProgressRecord("u", "w")
	record.SetProgress["a"] = domain.SetProgress{CompletedReps: intPtr(5)}

	status := BuildStatus(record, 0, day, details)
	require.Len(t, status.Sets, 1)
	require.NotNil(t, status.Sets[0].TargetReps)
	assert.Equal(t, 12, *status.Sets[0].TargetReps)
	require.NotNil(t, status.Sets[0].CompletedReps)
	assert.Equal(t, 5, *status.Sets[0].CompletedReps)
	assert.False(t, status.Sets[0].IsComplete)
	assert.Equal(t, 0, status.Progress.CompletedSets)
}
