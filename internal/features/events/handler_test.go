package events

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeStore struct {
	mu     sync.Mutex
	events map[string]*Event
}

func newFakeStore() *fakeStore {
	return &fakeStore{events: make(map[string]*Event)}
}

func (s *fakeStore) List(_ context.Context) ([]Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := []Event{}
	for _, e := range s.events {
		list = append(list, *e)
	}
	return list, nil
}

func (s *fakeStore) Insert(_ context.Context, event *Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	event.ID = primitive.NewObjectID()
	event.CreatedAt = time.Now()
	event.UpdatedAt = event.CreatedAt
	clone := *event
	s.events[event.ID.Hex()] = &clone
	return nil
}

func (s *fakeStore) FindByID(_ context.Context, id string) (*Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.events[id]
	if !ok {
		return nil, nil
	}
	clone := *e
	return &clone, nil
}

func (s *fakeStore) Replace(_ context.Context, id string, event *Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[id]; !ok {
		return ErrNotFound
	}
	clone := *event
	s.events[id] = &clone
	return nil
}

func (s *fakeStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[id]; !ok {
		return ErrNotFound
	}
	delete(s.events, id)
	return nil
}

func (s *fakeStore) get(id string) *Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.events[id]
}

func (s *fakeStore) seed(e Event) string {
	_ = s.Insert(context.Background(), &e)
	return e.ID.Hex()
}

func newTestRouter(store Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(store)

	group := r.Group("/api/events")
	group.GET("", h.List)
	group.POST("", h.Create)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
	group.POST("/:id/duplicate", h.Duplicate)
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

func baseEvent() Event {
	return Event{
		Title:       "Sprint review",
		Description: "Demo the new dashboard",
		Start:       time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		End:         time.Date(2024, 6, 1, 11, 0, 0, 0, time.UTC),
		Type:        TypeMeeting,
		Color:       ColorMap[TypeMeeting],
	}
}

func TestCreateEvent_DefaultsColorFromPalette(t *testing.T) {
	store := newFakeStore()
	r := newTestRouter(store)

	w, body := doJSON(t, r, "POST", "/api/events", map[string]any{
		"title": "Release deadline",
		"start": "2024-06-01T10:00:00Z",
		"end":   "2024-06-01T11:00:00Z",
		"type":  TypeDeadline,
	})

	require.Equal(t, 201, w.Code)
	data := body["data"].(map[string]any)
	require.Equal(t, "#d9534f", data["color"])
}

func TestCreateEvent_EndBeforeStart(t *testing.T) {
	store := newFakeStore()
	r := newTestRouter(store)

	w, body := doJSON(t, r, "POST", "/api/events", map[string]any{
		"title": "Backwards",
		"start": "2024-06-01T11:00:00Z",
		"end":   "2024-06-01T10:00:00Z",
		"type":  TypeMeeting,
	})

	require.Equal(t, 400, w.Code)
	require.Equal(t, "End time cannot be earlier than start time", body["error"])
	require.Empty(t, store.events)
}

func TestCreateEvent_MissingFields(t *testing.T) {
	store := newFakeStore()
	r := newTestRouter(store)

	cases := []struct {
		name string
		req  map[string]any
		msg  string
	}{
		{"no title", map[string]any{"start": "2024-06-01T10:00:00Z", "end": "2024-06-01T11:00:00Z", "type": TypeMeeting}, "Please provide a title for the event."},
		{"no start", map[string]any{"title": "x", "end": "2024-06-01T11:00:00Z", "type": TypeMeeting}, "Please provide a start date."},
		{"no end", map[string]any{"title": "x", "start": "2024-06-01T10:00:00Z", "type": TypeMeeting}, "Please provide an end date."},
		{"bad type", map[string]any{"title": "x", "start": "2024-06-01T10:00:00Z", "end": "2024-06-01T11:00:00Z", "type": "Party"}, "Invalid event type"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, body := doJSON(t, r, "POST", "/api/events", tc.req)
			require.Equal(t, 400, w.Code)
			require.Equal(t, tc.msg, body["error"])
		})
	}
	require.Empty(t, store.events)
}

func TestUpdateEvent_DragPatchPreservesUnrelatedFields(t *testing.T) {
	store := newFakeStore()
	e := baseEvent()
	e.Color = "#123456"
	id := store.seed(e)

	r := newTestRouter(store)
	w, _ := doJSON(t, r, "PUT", "/api/events/"+id, map[string]any{
		"start": "2024-06-02T09:00:00Z",
		"end":   "2024-06-02T10:00:00Z",
	})

	require.Equal(t, 200, w.Code)
	stored := store.get(id)
	require.Equal(t, time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC), stored.Start.UTC())
	require.Equal(t, time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC), stored.End.UTC())
	require.Equal(t, "Sprint review", stored.Title)
	require.Equal(t, "Demo the new dashboard", stored.Description)
	require.Equal(t, TypeMeeting, stored.Type)
	require.Equal(t, "#123456", stored.Color)
}

func TestUpdateEvent_MergedRangeValidated(t *testing.T) {
	store := newFakeStore()
	id := store.seed(baseEvent())

	r := newTestRouter(store)
	// Only the end moves, to before the stored start
	w, body := doJSON(t, r, "PUT", "/api/events/"+id, map[string]any{
		"end": "2024-06-01T09:00:00Z",
	})

	require.Equal(t, 400, w.Code)
	require.Equal(t, "End time cannot be earlier than start time", body["error"])
	stored := store.get(id)
	require.Equal(t, time.Date(2024, 6, 1, 11, 0, 0, 0, time.UTC), stored.End.UTC())
}

func TestUpdateEvent_TypeChangeResetsColor(t *testing.T) {
	store := newFakeStore()
	e := baseEvent()
	e.Color = "#ff0000"
	id := store.seed(e)

	r := newTestRouter(store)
	w, _ := doJSON(t, r, "PUT", "/api/events/"+id, map[string]any{
		"type": TypePersonal,
	})

	require.Equal(t, 200, w.Code)
	stored := store.get(id)
	require.Equal(t, TypePersonal, stored.Type)
	require.Equal(t, "#5bc0de", stored.Color)
}

func TestUpdateEvent_ExplicitColorHonoredAfterTypeChange(t *testing.T) {
	store := newFakeStore()
	id := store.seed(baseEvent())

	r := newTestRouter(store)
	w, _ := doJSON(t, r, "PUT", "/api/events/"+id, map[string]any{
		"type":  TypeDeadline,
		"color": "#abcdef",
	})

	require.Equal(t, 200, w.Code)
	stored := store.get(id)
	require.Equal(t, TypeDeadline, stored.Type)
	require.Equal(t, "#abcdef", stored.Color)
}

func TestUpdateEvent_NotFound(t *testing.T) {
	store := newFakeStore()
	r := newTestRouter(store)

	w, body := doJSON(t, r, "PUT", "/api/events/"+primitive.NewObjectID().Hex(), map[string]any{
		"title": "ghost",
	})
	require.Equal(t, 404, w.Code)
	require.Equal(t, "Event not found", body["error"])
}

func TestDeleteEvent_EmptyDataEnvelope(t *testing.T) {
	store := newFakeStore()
	id := store.seed(baseEvent())

	r := newTestRouter(store)
	w, body := doJSON(t, r, "DELETE", "/api/events/"+id, nil)

	require.Equal(t, 200, w.Code)
	require.Equal(t, true, body["success"])
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	require.Empty(t, data)
	require.Nil(t, store.get(id))
}

func TestDeleteEvent_InvalidID(t *testing.T) {
	store := newFakeStore()
	r := newTestRouter(store)

	w, body := doJSON(t, r, "DELETE", "/api/events/nope", nil)
	require.Equal(t, 400, w.Code)
	require.Equal(t, "Invalid event ID", body["error"])
}

func TestDuplicateEvent(t *testing.T) {
	store := newFakeStore()
	id := store.seed(baseEvent())

	r := newTestRouter(store)
	w, body := doJSON(t, r, "POST", "/api/events/"+id+"/duplicate", nil)

	require.Equal(t, 201, w.Code)
	data := body["data"].(map[string]any)
	require.NotEqual(t, id, data["id"])
	require.Equal(t, "Sprint review", data["title"])
	require.Equal(t, "2024-06-01T10:00:00Z", data["start"])
	require.Equal(t, "2024-06-01T11:00:00Z", data["end"])

	// Original untouched, two events total
	require.NotNil(t, store.get(id))
	require.Len(t, store.events, 2)
}

func TestDuplicateEvent_NotFound(t *testing.T) {
	store := newFakeStore()
	r := newTestRouter(store)

	w, body := doJSON(t, r, "POST", "/api/events/"+primitive.NewObjectID().Hex()+"/duplicate", nil)
	require.Equal(t, 404, w.Code)
	require.Equal(t, "Event not found", body["error"])
}
