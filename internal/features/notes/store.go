package notes

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

var (
	ErrInvalidID = errors.New("Invalid note ID")
	ErrNotFound  = errors.New("Note not found")
	// ErrForbidden means the credential is well-formed but does not own the note
	ErrForbidden = errors.New("not the note owner")
)

// Store is the persistence surface the notes handlers run against.
// Implemented by Repository for MongoDB and by an in-memory fake in tests.
type Store interface {
	ListByOwner(ctx context.Context, owner OwnerKey) ([]Note, error)
	Insert(ctx context.Context, note *Note) error
	FindByID(ctx context.Context, id string) (*Note, error)
	Update(ctx context.Context, id string, update bson.M) (*Note, error)
	Delete(ctx context.Context, id string) error
}

// Authorize decides whether the holder of owner may mutate the note with
// the given id. ErrNotFound when the note is absent, ErrForbidden when the
// stored owner key differs from the presented token. The comparison is
// exact byte equality of the raw token strings.
func Authorize(ctx context.Context, store Store, id string, owner OwnerKey) error {
	note, err := store.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if note == nil {
		return ErrNotFound
	}
	if note.Owner != owner {
		return ErrForbidden
	}
	return nil
}
