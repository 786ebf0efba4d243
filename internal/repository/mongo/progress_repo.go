package mongo

import (
	"context"
	"errors"
	"time"

	"workout-tracker/internal/domain"
	"workout-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const progressCollectionName = "user_workout_progress"

// mongoProgressRepository implements repository.ProgressRepository
type mongoProgressRepository struct {
	collection *mongo.Collection
}

// NewMongoProgressRepository creates a new Progress repository.
func NewMongoProgressRepository(db *mongo.Database) repository.ProgressRepository {
	return &mongoProgressRepository{
		collection: db.Collection(progressCollectionName),
	}
}

// GetByID retrieves a progress record by its composite key.
func (r *mongoProgressRepository) GetByID(ctx context.Context, id string) (*domain.ProgressRecord, error) {
	var record domain.ProgressRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// Create inserts a fresh progress record at version 0. A concurrent creator
// for the same (user, workout) pair loses with ErrDuplicate and must re-read.
func (r *mongoProgressRepository) Create(ctx context.Context, record *domain.ProgressRecord) error {
	if record.ID == "" || record.UserID == "" || record.WorkoutID == "" {
		return errors.New("progress record requires id, userId and workoutId")
	}
	record.Version = 0

	_, err := r.collection.InsertOne(ctx, record)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

// Update persists the record conditionally: the filter matches only when the
// stored version equals the version that was read. A concurrent writer that
// got there first bumps the version, the filter stops matching and the caller
// gets ErrConflict — it must re-read and recompute, never re-apply a delta.
func (r *mongoProgressRepository) Update(ctx context.Context, record *domain.ProgressRecord) error {
	record.UpdatedAt = time.Now().UTC()

	filter := bson.M{
		"_id":     record.ID,
		"version": record.Version,
	}
	update := bson.M{
		"$set": bson.M{
			"currentDayIndex": record.CurrentDayIndex,
			"completedSetIds": record.CompletedSetIDs,
			"setProgress":     record.SetProgress,
			"updatedAt":       record.UpdatedAt,
			"version":         record.Version + 1,
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrConflict
	}
	record.Version++
	return nil
}

// EnsureProgressIndexes creates necessary indexes. Call during startup.
func EnsureProgressIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "workoutId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
