package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// eventServer is a minimal stand-in for the events API with switchable
// write behavior
type eventServer struct {
	mu         sync.Mutex
	events     map[string]Event
	rejectPuts bool
}

func newEventServer() *eventServer {
	return &eventServer{events: make(map[string]Event)}
}

func (s *eventServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/events", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		list := make([]Event, 0, len(s.events))
		for _, e := range s.events {
			list = append(list, e)
		}
		s.mu.Unlock()
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": list})
	})
	mux.HandleFunc("PUT /api/events/{id}", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()

		if s.rejectPuts {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "End time cannot be earlier than start time"})
			return
		}

		id := r.PathValue("id")
		e, ok := s.events[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "Event not found"})
			return
		}

		var patch struct {
			Start *time.Time `json:"start"`
			End   *time.Time `json:"end"`
		}
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if patch.Start != nil {
			e.Start = *patch.Start
		}
		if patch.End != nil {
			e.End = *patch.End
		}
		s.events[id] = e
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": e})
	})
	return mux
}

func (s *eventServer) seed(e Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[e.ID] = e
}

func TestCalendarView_MoveCommits(t *testing.T) {
	srv := newEventServer()
	srv.seed(Event{
		ID:    "ev1",
		Title: "Sprint review",
		Start: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 6, 1, 11, 0, 0, 0, time.UTC),
		Type:  "Meeting",
	})
	ts := httptest.NewServer(srv.handler())
	defer ts.Close()

	view := NewCalendarView(New(ts.URL))
	require.NoError(t, view.Refresh(context.Background()))

	newStart := time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC)
	newEnd := time.Date(2024, 6, 2, 11, 0, 0, 0, time.UTC)
	state, err := view.Move(context.Background(), "ev1", newStart, newEnd)

	require.NoError(t, err)
	require.Equal(t, Committed, state)

	local, ok := view.Get("ev1")
	require.True(t, ok)
	require.True(t, local.Start.Equal(newStart))
	require.True(t, local.End.Equal(newEnd))

	// The server also holds the new range
	srv.mu.Lock()
	require.True(t, srv.events["ev1"].Start.Equal(newStart))
	srv.mu.Unlock()
}

func TestCalendarView_FailedMoveRollsBack(t *testing.T) {
	origStart := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	origEnd := time.Date(2024, 6, 1, 11, 0, 0, 0, time.UTC)

	srv := newEventServer()
	srv.seed(Event{ID: "ev1", Title: "Sprint review", Start: origStart, End: origEnd, Type: "Meeting"})
	ts := httptest.NewServer(srv.handler())
	defer ts.Close()

	view := NewCalendarView(New(ts.URL))
	require.NoError(t, view.Refresh(context.Background()))

	srv.mu.Lock()
	srv.rejectPuts = true
	srv.mu.Unlock()

	state, err := view.Move(context.Background(), "ev1",
		time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC))

	require.Error(t, err)
	require.Equal(t, RolledBack, state)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 400, apiErr.StatusCode)
	require.Equal(t, "End time cannot be earlier than start time", apiErr.Message)

	// The speculative range is gone; the view holds the server's truth
	local, ok := view.Get("ev1")
	require.True(t, ok)
	require.True(t, local.Start.Equal(origStart))
	require.True(t, local.End.Equal(origEnd))
}

func TestCalendarView_MoveUnknownEvent(t *testing.T) {
	srv := newEventServer()
	ts := httptest.NewServer(srv.handler())
	defer ts.Close()

	view := NewCalendarView(New(ts.URL))
	require.NoError(t, view.Refresh(context.Background()))

	state, err := view.Move(context.Background(), "ghost", time.Now(), time.Now().Add(time.Hour))
	require.Error(t, err)
	require.Equal(t, RolledBack, state)
}

func TestMutationState_String(t *testing.T) {
	require.Equal(t, "Pending", Pending.String())
	require.Equal(t, "Committed", Committed.String())
	require.Equal(t, "RolledBack", RolledBack.String())
}
