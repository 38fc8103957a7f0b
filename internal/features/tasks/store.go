package tasks

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidID = errors.New("Invalid Task ID format")
	ErrNotFound  = errors.New("Task not found")
)

// Store is the persistence surface the task handlers run against
type Store interface {
	List(ctx context.Context) ([]PopulatedTask, error)
	Insert(ctx context.Context, task *Task) error
	Update(ctx context.Context, id string, update bson.M) (*Task, error)
	Delete(ctx context.Context, id string) error
	UserExists(ctx context.Context, userID primitive.ObjectID) (bool, error)
}
