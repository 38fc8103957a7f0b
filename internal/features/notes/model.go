package notes

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OwnerKey is the ownership key for a note: the entire raw bearer token
// string presented when the note was created. Two callers are the same
// owner iff their bearer strings are byte-identical. Deriving a user id
// from the token instead would change observable behavior (a refreshed
// token would orphan existing notes), so the raw string is kept as-is.
type OwnerKey string

// Note is a private note owned by exactly one identity token
type Note struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Owner     OwnerKey           `bson:"user" json:"-"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateNoteRequest represents note creation data
type CreateNoteRequest struct {
	Title   string `json:"title" example:"Standup notes"`
	Content string `json:"content" example:"Discussed the release plan"`
}

// UpdateNoteRequest represents note update data
type UpdateNoteRequest struct {
	Title   string `json:"title" example:"Standup notes"`
	Content string `json:"content" example:"Discussed the release plan"`
}
