package tasks

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Priority levels and statuses a task can hold
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"

	StatusToDo       = "To Do"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

func validPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

func validStatus(s string) bool {
	return s == StatusToDo || s == StatusInProgress || s == StatusCompleted
}

// Task represents a task assignable to one or more users
type Task struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title       string               `bson:"title" json:"title"`
	Description string               `bson:"description" json:"description"`
	Priority    string               `bson:"priority" json:"priority" enums:"Low,Medium,High"`
	Status      string               `bson:"status" json:"status" enums:"To Do,In Progress,Completed"`
	AssignedTo  []primitive.ObjectID `bson:"assignedTo" json:"assignedTo"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// Assignee is the populated view of an assigned user
type Assignee struct {
	ID    primitive.ObjectID `bson:"_id" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
}

// PopulatedTask is a task with its assignee references resolved to
// names and emails for display.
type PopulatedTask struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Priority    string             `bson:"priority" json:"priority"`
	Status      string             `bson:"status" json:"status"`
	AssignedTo  []Assignee         `bson:"assignedTo" json:"assignedTo"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateTaskRequest represents task creation data
type CreateTaskRequest struct {
	Title       string   `json:"title" example:"Prepare quarterly report"`
	Description string   `json:"description" example:"Numbers due by Friday"`
	Priority    string   `json:"priority" example:"Medium" enums:"Low,Medium,High"`
	AssignedTo  []string `json:"assignedTo" example:"507f1f77bcf86cd799439011"`
	Status      string   `json:"status" example:"To Do" enums:"To Do,In Progress,Completed"`
}

// UpdateTaskRequest represents task update data
type UpdateTaskRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	Priority    string   `json:"priority"`
	AssignedTo  []string `json:"assignedTo"`
}
