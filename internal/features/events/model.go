package events

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event types known to the calendar
const (
	TypeMeeting         = "Meeting"
	TypeDeadline        = "Deadline"
	TypeTeamBuilding    = "Team Building"
	TypeProjectTimeline = "Project Timeline"
	TypePersonal        = "Personal"
)

// ColorMap is the default color palette per event type. An event keeps a
// per-instance color override until its type changes; changing type
// recomputes the color from this palette.
var ColorMap = map[string]string{
	TypeMeeting:         "#3174ad", // Blue
	TypeDeadline:        "#d9534f", // Red
	TypeTeamBuilding:    "#5cb85c", // Green
	TypeProjectTimeline: "#f0ad4e", // Orange
	TypePersonal:        "#5bc0de", // Cyan
}

func validType(t string) bool {
	_, ok := ColorMap[t]
	return ok
}

// Event is a calendar event. Invariant: End never precedes Start; when
// AllDay is set, Start and End sit on the canonical day boundaries of the
// same calendar day.
type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Start       time.Time          `bson:"start" json:"start"`
	End         time.Time          `bson:"end" json:"end"`
	AllDay      bool               `bson:"allDay" json:"allDay"`
	Type        string             `bson:"type" json:"type" enums:"Meeting,Deadline,Team Building,Project Timeline,Personal"`
	Color       string             `bson:"color" json:"color"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateEventRequest represents event creation data
type CreateEventRequest struct {
	Title       string     `json:"title" example:"Sprint review"`
	Description string     `json:"description" example:"Demo the new dashboard"`
	Start       *time.Time `json:"start" example:"2024-06-01T10:00:00Z"`
	End         *time.Time `json:"end" example:"2024-06-01T11:00:00Z"`
	AllDay      bool       `json:"allDay" example:"false"`
	Type        string     `json:"type" example:"Meeting"`
	Color       string     `json:"color" example:"#3174ad"`
}

// UpdateEventRequest represents a full or partial event update. Drag and
// resize gestures send only start/end; form edits send every field.
type UpdateEventRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Start       *time.Time `json:"start"`
	End         *time.Time `json:"end"`
	AllDay      *bool      `json:"allDay"`
	Type        *string    `json:"type"`
	Color       *string    `json:"color"`
}
