package service

import (
	"math"
	"time"

	"workout-tracker/internal/domain"
)

// SetStatus is one set of the current day, annotated with target vs
// completed values.
type SetStatus struct {
	SetID                string
	SetName              string
	ExerciseID           string
	ExerciseName         string
	TargetReps           *int
	TargetWeight         *float64
	TargetDurationSec    *int
	CompletedReps        *int
	CompletedDurationSec *int
	IsComplete           bool
	CompletedAt          *time.Time
	Exercise             *domain.Exercise
}

// ProgressSummary totals the current day's completion.
type ProgressSummary struct {
	CompletedSets        int
	TotalSets            int
	CompletionPercentage int
}

// WorkoutStatus is the engine's view of where a user stands in a workout.
type WorkoutStatus struct {
	UserID          string
	WorkoutID       string
	DayName         string
	CurrentDayIndex int
	Sets            []SetStatus
	Progress        ProgressSummary
}

const unknownExerciseName = "Unknown Exercise"

// BuildStatus projects a progress record and the current day plan into a
// WorkoutStatus. details maps set id to resolved metadata; day set ids with
// no entry (dangling references) are skipped. Pure function, no side effects.
func BuildStatus(
	record *domain.ProgressRecord,
	dayIndex int,
	day domain.DayPlan,
	details map[string]*SetDetails,
) *WorkoutStatus {
	sets := make([]SetStatus, 0, len(day.SetIDs))
	completed := 0
	for _, setID := range day.SetIDs {
		d, ok := details[setID]
		if !ok || d == nil {
			continue
		}

		status := SetStatus{
			SetID:             setID,
			SetName:           d.Set.Name,
			ExerciseID:        d.Set.ExerciseID,
			ExerciseName:      unknownExerciseName,
			TargetReps:        d.Set.Reps,
			TargetWeight:      d.Set.Weight,
			TargetDurationSec: d.Set.DurationSec,
			IsComplete:        record.HasCompleted(setID),
			Exercise:          d.Exercise,
		}
		if d.Exercise != nil {
			status.ExerciseName = d.Exercise.Name
		}
		if progress, ok := record.SetProgress[setID]; ok {
			status.CompletedReps = progress.CompletedReps
			status.CompletedDurationSec = progress.CompletedDurationSec
			status.CompletedAt = progress.CompletedAt
		}
		if status.IsComplete {
			completed++
		}
		sets = append(sets, status)
	}

	summary := ProgressSummary{
		CompletedSets: completed,
		TotalSets:     len(sets),
	}
	if summary.TotalSets > 0 {
		summary.CompletionPercentage = int(math.Round(float64(completed) / float64(summary.TotalSets) * 100))
	}

	return &WorkoutStatus{
		UserID:          record.UserID,
		WorkoutID:       record.WorkoutID,
		DayName:         day.Day,
		CurrentDayIndex: dayIndex,
		Sets:            sets,
		Progress:        summary,
	}
}
