package domain

import "time"

// User represents an account in the system. Users carry no credentials;
// they exist to own workout associations and progress records.
type User struct {
	ID                   string    `bson:"_id" json:"userId"`
	AssociatedWorkoutIDs []string  `bson:"associatedWorkoutIds" json:"associatedWorkoutIds"`
	CreatedAt            time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ActiveWorkoutID returns the workout treated as the user's current one.
// Policy: the first-associated workout is the active workout. The second
// return value is false when the user has no associated workouts.
func (u *User) ActiveWorkoutID() (string, bool) {
	if len(u.AssociatedWorkoutIDs) == 0 {
		return "", false
	}
	return u.AssociatedWorkoutIDs[0], true
}

// HasWorkout reports whether workoutID is already associated with the user.
func (u *User) HasWorkout(workoutID string) bool {
	for _, id := range u.AssociatedWorkoutIDs {
		if id == workoutID {
			return true
		}
	}
	return false
}
