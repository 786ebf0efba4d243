package mongo

import (
	"context"
	"errors"
	"time"

	"workout-tracker/internal/domain"
	"workout-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const setCollectionName = "sets"

// setDocument is the stored shape of a set. Legacy documents spell the
// exercise reference "excersise_id"; both keys are read and written here so
// the rest of the codebase only ever sees the canonical field.
type setDocument struct {
	ID               string    `bson:"_id"`
	Name             string    `bson:"name"`
	ExerciseID       string    `bson:"exerciseId,omitempty"`
	LegacyExerciseID string    `bson:"excersise_id,omitempty"`
	Reps             *int      `bson:"reps,omitempty"`
	Weight           *float64  `bson:"weight,omitempty"`
	DurationSec      *int      `bson:"durationSec,omitempty"`
	CreatedAt        time.Time `bson:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt"`
}

func (d *setDocument) toDomain() *domain.Set {
	exerciseID := d.ExerciseID
	if exerciseID == "" {
		exerciseID = d.LegacyExerciseID
	}
	return &domain.Set{
		ID:          d.ID,
		Name:        d.Name,
		ExerciseID:  exerciseID,
		Reps:        d.Reps,
		Weight:      d.Weight,
		DurationSec: d.DurationSec,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// mongoSetRepository implements repository.SetRepository
type mongoSetRepository struct {
	collection *mongo.Collection
}

// NewMongoSetRepository creates a new Set repository.
func NewMongoSetRepository(db *mongo.Database) repository.SetRepository {
	return &mongoSetRepository{
		collection: db.Collection(setCollectionName),
	}
}

// Create inserts a new set. Both exercise-reference spellings are written so
// readers that still use the legacy key keep working.
func (r *mongoSetRepository) Create(ctx context.Context, set *domain.Set) error {
	if set.ID == "" || set.Name == "" || set.ExerciseID == "" {
		return errors.New("set requires an id, a name and an exercise id")
	}
	now := time.Now().UTC()
	set.CreatedAt = now
	set.UpdatedAt = now

	doc := setDocument{
		ID:               set.ID,
		Name:             set.Name,
		ExerciseID:       set.ExerciseID,
		LegacyExerciseID: set.ExerciseID,
		Reps:             set.Reps,
		Weight:           set.Weight,
		DurationSec:      set.DurationSec,
		CreatedAt:        set.CreatedAt,
		UpdatedAt:        set.UpdatedAt,
	}

	_, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

// GetByID retrieves a single set by its id.
func (r *mongoSetRepository) GetByID(ctx context.Context, id string) (*domain.Set, error) {
	var doc setDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// Delete removes a set by id.
func (r *mongoSetRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
