package tasks

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeStore struct {
	mu    sync.Mutex
	tasks map[string]*Task
	users map[primitive.ObjectID]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		tasks: make(map[string]*Task),
		users: make(map[primitive.ObjectID]bool),
	}
}

func (s *fakeStore) List(_ context.Context) ([]PopulatedTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := []PopulatedTask{}
	for _, t := range s.tasks {
		p := PopulatedTask{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Priority:    t.Priority,
			Status:      t.Status,
			AssignedTo:  []Assignee{},
		}
		for _, uid := range t.AssignedTo {
			if s.users[uid] {
				p.AssignedTo = append(p.AssignedTo, Assignee{ID: uid, Name: "user", Email: "user@example.com"})
			}
		}
		list = append(list, p)
	}
	return list, nil
}

func (s *fakeStore) Insert(_ context.Context, task *Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	task.ID = primitive.NewObjectID()
	clone := *task
	s.tasks[task.ID.Hex()] = &clone
	return nil
}

func (s *fakeStore) Update(_ context.Context, id string, update bson.M) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return nil, ErrNotFound
	}
	if v, ok := update["title"].(string); ok {
		t.Title = v
	}
	if v, ok := update["description"].(string); ok {
		t.Description = v
	}
	if v, ok := update["status"].(string); ok {
		t.Status = v
	}
	if v, ok := update["priority"].(string); ok {
		t.Priority = v
	}
	if v, ok := update["assignedTo"].([]primitive.ObjectID); ok {
		t.AssignedTo = v
	}
	clone := *t
	return &clone, nil
}

func (s *fakeStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[id]; !ok {
		return ErrNotFound
	}
	delete(s.tasks, id)
	return nil
}

func (s *fakeStore) UserExists(_ context.Context, userID primitive.ObjectID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users[userID], nil
}

func (s *fakeStore) addUser() primitive.ObjectID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := primitive.NewObjectID()
	s.users[id] = true
	return id
}

func (s *fakeStore) seed(t Task) string {
	_ = s.Insert(context.Background(), &t)
	return t.ID.Hex()
}

func newTestRouter(store Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(store)

	group := r.Group("/api/tasks")
	group.GET("", h.List)
	group.POST("", h.Create)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	parsed := map[string]any{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func TestCreateTask_Defaults(t *testing.T) {
	store := newFakeStore()
	uid := store.addUser()
	r := newTestRouter(store)

	w, body := doJSON(t, r, "POST", "/api/tasks", map[string]any{
		"title":       "Prepare quarterly report",
		"description": "Numbers due by Friday",
		"assignedTo":  []string{uid.Hex()},
	})

	require.Equal(t, 201, w.Code)
	require.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	require.Equal(t, PriorityMedium, data["priority"])
	require.Equal(t, StatusToDo, data["status"])
}

func TestCreateTask_MissingFields(t *testing.T) {
	store := newFakeStore()
	r := newTestRouter(store)

	w, body := doJSON(t, r, "POST", "/api/tasks", map[string]any{
		"title": "No assignees",
	})

	require.Equal(t, 400, w.Code)
	require.Equal(t, false, body["success"])
	require.Equal(t, "Title, description, and assignedTo are required fields.", body["message"])
	require.Empty(t, store.tasks)
}

func TestCreateTask_UnknownAssignee(t *testing.T) {
	store := newFakeStore()
	r := newTestRouter(store)

	w, body := doJSON(t, r, "POST", "/api/tasks", map[string]any{
		"title":       "Orphan task",
		"description": "Nobody home",
		"assignedTo":  []string{primitive.NewObjectID().Hex()},
	})

	require.Equal(t, 404, w.Code)
	require.Equal(t, "The user assigned to this task does not exist.", body["message"])
	require.Empty(t, store.tasks)
}

func TestCreateTask_InvalidAssigneeID(t *testing.T) {
	store := newFakeStore()
	r := newTestRouter(store)

	w, body := doJSON(t, r, "POST", "/api/tasks", map[string]any{
		"title":       "Bad ref",
		"description": "x",
		"assignedTo":  []string{"not-hex"},
	})

	require.Equal(t, 400, w.Code)
	require.Equal(t, "Invalid assignee ID format", body["message"])
}

func TestCreateTask_InvalidPriority(t *testing.T) {
	store := newFakeStore()
	uid := store.addUser()
	r := newTestRouter(store)

	w, body := doJSON(t, r, "POST", "/api/tasks", map[string]any{
		"title":       "x",
		"description": "y",
		"priority":    "Urgent",
		"assignedTo":  []string{uid.Hex()},
	})

	require.Equal(t, 400, w.Code)
	require.Equal(t, "Priority must be one of Low, Medium, High.", body["message"])
}

func TestUpdateTask_RequiredFields(t *testing.T) {
	store := newFakeStore()
	id := store.seed(Task{Title: "old", Description: "d", Priority: PriorityLow, Status: StatusToDo})
	r := newTestRouter(store)

	w, body := doJSON(t, r, "PUT", "/api/tasks/"+id, map[string]any{
		"title": "only title",
	})

	require.Equal(t, 400, w.Code)
	require.Equal(t, "Missing required fields: title, status, and priority are required.", body["message"])
}

func TestUpdateTask_Success(t *testing.T) {
	store := newFakeStore()
	id := store.seed(Task{Title: "old", Description: "d", Priority: PriorityLow, Status: StatusToDo})
	r := newTestRouter(store)

	w, body := doJSON(t, r, "PUT", "/api/tasks/"+id, map[string]any{
		"title":    "renamed",
		"status":   StatusInProgress,
		"priority": PriorityHigh,
	})

	require.Equal(t, 200, w.Code)
	require.Equal(t, "Task updated successfully", body["message"])
	require.Equal(t, "renamed", store.tasks[id].Title)
	require.Equal(t, StatusInProgress, store.tasks[id].Status)
}

func TestUpdateTask_InvalidID(t *testing.T) {
	store := newFakeStore()
	r := newTestRouter(store)

	w, body := doJSON(t, r, "PUT", "/api/tasks/123", map[string]any{
		"title": "x", "status": StatusToDo, "priority": PriorityLow,
	})

	require.Equal(t, 400, w.Code)
	require.Equal(t, "Invalid Task ID format", body["message"])
}

func TestDeleteTask_NotFound(t *testing.T) {
	store := newFakeStore()
	r := newTestRouter(store)

	w, body := doJSON(t, r, "DELETE", "/api/tasks/"+primitive.NewObjectID().Hex(), nil)

	require.Equal(t, 404, w.Code)
	require.Equal(t, false, body["success"])
	require.Equal(t, "Task not found", body["message"])
}

func TestDeleteTask_Success(t *testing.T) {
	store := newFakeStore()
	id := store.seed(Task{Title: "temp", Description: "d", Priority: PriorityLow, Status: StatusToDo})
	r := newTestRouter(store)

	w, body := doJSON(t, r, "DELETE", "/api/tasks/"+id, nil)

	require.Equal(t, 200, w.Code)
	require.Equal(t, "Task deleted successfully", body["message"])
	require.Empty(t, store.tasks)
}

func TestListTasks_PopulatesAssignees(t *testing.T) {
	store := newFakeStore()
	uid := store.addUser()
	store.seed(Task{Title: "t", Description: "d", Priority: PriorityLow, Status: StatusToDo, AssignedTo: []primitive.ObjectID{uid}})
	r := newTestRouter(store)

	w, body := doJSON(t, r, "GET", "/api/tasks", nil)

	require.Equal(t, 200, w.Code)
	list := body["data"].([]any)
	require.Len(t, list, 1)
	task := list[0].(map[string]any)
	assignees := task["assignedTo"].([]any)
	require.Len(t, assignees, 1)
	assignee := assignees[0].(map[string]any)
	require.Equal(t, uid.Hex(), assignee["id"])
	require.NotEmpty(t, assignee["name"])
	require.NotEmpty(t, assignee["email"])
}
