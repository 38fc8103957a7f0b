package events

import (
	"context"
	"errors"
)

var (
	ErrInvalidID = errors.New("Invalid event ID")
	ErrNotFound  = errors.New("Event not found")
)

// Store is the persistence surface the event handlers run against
type Store interface {
	List(ctx context.Context) ([]Event, error)
	Insert(ctx context.Context, event *Event) error
	FindByID(ctx context.Context, id string) (*Event, error)
	Replace(ctx context.Context, id string, event *Event) error
	Delete(ctx context.Context, id string) error
}
