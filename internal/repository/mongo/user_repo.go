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

const userCollectionName = "users"

// mongoUserRepository implements repository.UserRepository
type mongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a new User repository.
func NewMongoUserRepository(db *mongo.Database) repository.UserRepository {
	return &mongoUserRepository{
		collection: db.Collection(userCollectionName),
	}
}

// Create inserts a new user. The user id is caller-supplied; inserting an
// existing id returns ErrDuplicate.
func (r *mongoUserRepository) Create(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		return errors.New("user requires an id")
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.AssociatedWorkoutIDs == nil {
		user.AssociatedWorkoutIDs = []string{}
	}

	_, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

// GetByID retrieves a single user by its id.
func (r *mongoUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Delete removes a user by id.
func (r *mongoUserRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// AddWorkoutID appends workoutID to the user's associated workouts.
// The filter excludes users that already carry the id, so a duplicate
// association never matches; the follow-up lookup disambiguates "missing
// user" from "already associated".
func (r *mongoUserRepository) AddWorkoutID(ctx context.Context, userID, workoutID string) error {
	filter := bson.M{
		"_id":                  userID,
		"associatedWorkoutIds": bson.M{"$ne": workoutID},
	}
	update := bson.M{
		"$push": bson.M{"associatedWorkoutIds": workoutID},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		if _, err := r.GetByID(ctx, userID); err != nil {
			return err
		}
		return repository.ErrDuplicate
	}
	return nil
}

// RemoveWorkoutID removes workoutID from the user's associated workouts.
func (r *mongoUserRepository) RemoveWorkoutID(ctx context.Context, userID, workoutID string) error {
	filter := bson.M{
		"_id":                  userID,
		"associatedWorkoutIds": workoutID,
	}
	update := bson.M{
		"$pull": bson.M{"associatedWorkoutIds": workoutID},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
