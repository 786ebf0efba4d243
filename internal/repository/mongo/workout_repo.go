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

const workoutCollectionName = "workouts"

// mongoWorkoutRepository implements repository.WorkoutRepository
type mongoWorkoutRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutRepository creates a new Workout repository.
func NewMongoWorkoutRepository(db *mongo.Database) repository.WorkoutRepository {
	return &mongoWorkoutRepository{
		collection: db.Collection(workoutCollectionName),
	}
}

// Create inserts a new workout. The plan array is stored as-is; day order is
// positional and must survive round-trips.
func (r *mongoWorkoutRepository) Create(ctx context.Context, workout *domain.Workout) error {
	if workout.ID == "" {
		return errors.New("workout requires an id")
	}
	now := time.Now().UTC()
	workout.CreatedAt = now
	workout.UpdatedAt = now
	if workout.Plan == nil {
		workout.Plan = []domain.DayPlan{}
	}

	_, err := r.collection.InsertOne(ctx, workout)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

// GetByID retrieves a single workout by its id.
func (r *mongoWorkoutRepository) GetByID(ctx context.Context, id string) (*domain.Workout, error) {
	var workout domain.Workout
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&workout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// Delete removes a workout by id.
func (r *mongoWorkoutRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
