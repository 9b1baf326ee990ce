package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"library-backend/internal/domains/user"
	"library-backend/internal/infrastructure/database"
)

type mongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *database.MongoDB) user.Repository {
	return &mongoRepository{
		coll: db.Collection(database.CollectionUsers),
	}
}

func (r *mongoRepository) Create(ctx context.Context, u *user.User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}

	_, err := r.coll.InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		// Keep the store's own message as context for the caller
		return fmt.Errorf("%w: %s", user.ErrUsernameTaken, err.Error())
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *mongoRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	var u user.User
	err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	return &u, nil
}

func (r *mongoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*user.User, error) {
	var u user.User
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &u, nil
}
