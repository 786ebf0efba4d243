package domain

import "time"

// Set is one prescribed unit of exercise within a workout: a named target
// (reps, weight and/or duration) referencing an exercise definition.
// Target fields are pointers because a set prescribes only the ones that
// apply to its exercise type.
type Set struct {
	ID          string    `bson:"_id" json:"setId"`
	Name        string    `bson:"name" json:"name"`
	ExerciseID  string    `bson:"exerciseId" json:"exerciseId"`
	Reps        *int      `bson:"reps,omitempty" json:"reps,omitempty"`
	Weight      *float64  `bson:"weight,omitempty" json:"weight,omitempty"`
	DurationSec *int      `bson:"durationSec,omitempty" json:"durationSec,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
