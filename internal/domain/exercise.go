package domain

import "time"

// Exercise is a single exercise definition in the library.
// The ID is caller-supplied (e.g. "3_4_Sit-Up") rather than generated,
// so imported exercise catalogs keep their identifiers.
type Exercise struct {
	ID               string    `bson:"_id" json:"exerciseId"`
	Name             string    `bson:"name" json:"name"`
	Force            string    `bson:"force,omitempty" json:"force,omitempty"`         // "pull" or "push"
	Level            string    `bson:"level,omitempty" json:"level,omitempty"`         // "beginner", "intermediate", "expert"
	Mechanic         string    `bson:"mechanic,omitempty" json:"mechanic,omitempty"`   // "compound" or "isolation"
	Equipment        string    `bson:"equipment,omitempty" json:"equipment,omitempty"` // e.g. "body only"
	PrimaryMuscles   []string  `bson:"primaryMuscles,omitempty" json:"primaryMuscles,omitempty"`
	SecondaryMuscles []string  `bson:"secondaryMuscles,omitempty" json:"secondaryMuscles,omitempty"`
	Instructions     []string  `bson:"instructions,omitempty" json:"instructions,omitempty"`
	Category         string    `bson:"category,omitempty" json:"category,omitempty"` // e.g. "strength"
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt" json:"updatedAt"`
}
