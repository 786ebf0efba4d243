package domain

import "time"

// DayPlan is one position in a workout's ordered day sequence: a label and
// the ordered set ids prescribed for that day. The label is display-only and
// may repeat ("Monday", "Push Day", ...); day identity is positional.
type DayPlan struct {
	Day    string   `bson:"day" json:"day"`
	SetIDs []string `bson:"setIds" json:"setIds"`
}

// ContainsSet reports whether setID is prescribed on this day.
func (d DayPlan) ContainsSet(setID string) bool {
	for _, id := range d.SetIDs {
		if id == setID {
			return true
		}
	}
	return false
}

// Workout is a multi-day plan. Plan order is significant: progress tracking
// indexes days by position, never by label.
type Workout struct {
	ID        string    `bson:"_id" json:"workoutId"`
	Plan      []DayPlan `bson:"workoutPlan" json:"workoutPlan"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// SetInAnyDay reports whether setID appears in any day of the plan.
func (w *Workout) SetInAnyDay(setID string) bool {
	for _, day := range w.Plan {
		if day.ContainsSet(setID) {
			return true
		}
	}
	return false
}
