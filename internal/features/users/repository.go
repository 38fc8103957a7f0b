package users

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/TheYuvrajMishra/upwork-standard/internal/features/auth"
)

// Repository reads from the users collection owned by the auth feature.
// This feature never mutates users.
type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection("users")}
}

// List returns all users. The password field is excluded at the query
// level on top of the model's `json:"-"` tag.
func (r *Repository) List(ctx context.Context) ([]auth.User, error) {
	opts := options.Find().SetProjection(bson.M{"password": 0})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var list []auth.User
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}

	if list == nil {
		list = []auth.User{}
	}

	return list, nil
}
