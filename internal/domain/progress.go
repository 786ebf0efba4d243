package domain

import (
	"fmt"
	"time"
)

// SetProgress holds partial-progress data for a single set. It is display
// state only: day completion is decided by CompletedSetIDs membership, not
// by these fields.
type SetProgress struct {
	CompletedReps        *int       `bson:"completedReps,omitempty" json:"completedReps,omitempty"`
	CompletedDurationSec *int       `bson:"completedDurationSec,omitempty" json:"completedDurationSec,omitempty"`
	IsComplete           bool       `bson:"isComplete" json:"isComplete"`
	CompletedAt          *time.Time `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	UpdatedAt            time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// ProgressRecord tracks one user's position in one workout plan. Exactly one
// record exists per (user, workout) pair, keyed by ProgressID. Completed set
// ids are not partitioned by day; the engine cross-references them against
// the current day's set list. Version backs the conditional update that
// serializes concurrent writers.
type ProgressRecord struct {
	ID              string                 `bson:"_id" json:"id"`
	UserID          string                 `bson:"userId" json:"userId"`
	WorkoutID       string                 `bson:"workoutId" json:"workoutId"`
	CurrentDayIndex int                    `bson:"currentDayIndex" json:"currentDayIndex"`
	CompletedSetIDs []string               `bson:"completedSetIds" json:"completedSetIds"`
	SetProgress     map[string]SetProgress `bson:"setProgress" json:"setProgress"`
	Version         int64                  `bson:"version" json:"-"`
	CreatedAt       time.Time              `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time              `bson:"updatedAt" json:"updatedAt"`
}

// ProgressID derives the composite document key for a (user, workout) pair.
func ProgressID(userID, workoutID string) string {
	return fmt.Sprintf("%s_%s", userID, workoutID)
}

// NewProgressRecord returns a fresh record positioned at day 0.
func NewProgressRecord(userID, workoutID string) *ProgressRecord {
	now := time.Now().UTC()
	return &ProgressRecord{
		ID:              ProgressID(userID, workoutID),
		UserID:          userID,
		WorkoutID:       workoutID,
		CurrentDayIndex: 0,
		CompletedSetIDs: []string{},
		SetProgress:     map[string]SetProgress{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// HasCompleted reports whether setID is marked complete.
func (p *ProgressRecord) HasCompleted(setID string) bool {
	for _, id := range p.CompletedSetIDs {
		if id == setID {
			return true
		}
	}
	return false
}

// MarkCompleted adds setID to the completed set; adding an already-completed
// id is a no-op.
func (p *ProgressRecord) MarkCompleted(setID string) {
	if !p.HasCompleted(setID) {
		p.CompletedSetIDs = append(p.CompletedSetIDs, setID)
	}
}

// ClearCompleted removes every id in setIDs from the completed set, leaving
// ids belonging to other days untouched.
func (p *ProgressRecord) ClearCompleted(setIDs []string) {
	if len(setIDs) == 0 {
		return
	}
	drop := make(map[string]struct{}, len(setIDs))
	for _, id := range setIDs {
		drop[id] = struct{}{}
	}
	kept := p.CompletedSetIDs[:0]
	for _, id := range p.CompletedSetIDs {
		if _, ok := drop[id]; !ok {
			kept = append(kept, id)
		}
	}
	p.CompletedSetIDs = kept
}

// DayComplete reports whether every set of a day is complete. A day with no
// sets is never considered complete, so an empty "rest day" entry cannot
// trigger advancement on its own.
func (p *ProgressRecord) DayComplete(day DayPlan) bool {
	if len(day.SetIDs) == 0 {
		return false
	}
	for _, id := range day.SetIDs {
		if !p.HasCompleted(id) {
			return false
		}
	}
	return true
}
