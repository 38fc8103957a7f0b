package client

import (
	"context"
	"sync"
	"time"
)

// MutationState is the lifecycle of one in-flight optimistic mutation
type MutationState int

const (
	// Pending: the speculative value is applied locally, the write is in flight
	Pending MutationState = iota
	// Committed: the store accepted the write; the speculative value is authoritative
	Committed
	// RolledBack: the write failed; the speculative value was discarded and
	// the view re-synchronized from the store
	RolledBack
)

func (s MutationState) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Committed:
		return "Committed"
	case RolledBack:
		return "RolledBack"
	}
	return "Unknown"
}

// CalendarView is a local, optimistically updated mirror of the event
// list. Drag and resize apply the new time range locally before the
// persistence call resolves; on failure the speculative state is thrown
// away and the full list is re-fetched. The view never computes inverse
// transforms — racing edits would compound errors.
type CalendarView struct {
	mu     sync.Mutex
	client *Client
	events map[string]Event
}

func NewCalendarView(c *Client) *CalendarView {
	return &CalendarView{
		client: c,
		events: make(map[string]Event),
	}
}

// Refresh replaces the local snapshot with the authoritative list
func (v *CalendarView) Refresh(ctx context.Context) error {
	list, err := v.client.ListEvents(ctx)
	if err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.events = make(map[string]Event, len(list))
	for _, e := range list {
		v.events[e.ID] = e
	}
	return nil
}

// Events returns a copy of the current local snapshot
func (v *CalendarView) Events() []Event {
	v.mu.Lock()
	defer v.mu.Unlock()

	list := make([]Event, 0, len(v.events))
	for _, e := range v.events {
		list = append(list, e)
	}
	return list
}

// Get returns the local view of one event
func (v *CalendarView) Get(id string) (Event, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	e, ok := v.events[id]
	return e, ok
}

// Move applies a drag gesture: the event keeps its duration as computed
// by the gesture and shifts to the new range.
func (v *CalendarView) Move(ctx context.Context, id string, start, end time.Time) (MutationState, error) {
	return v.mutateTimes(ctx, id, start, end)
}

// Resize applies a resize gesture; typically only one end of the range moved
func (v *CalendarView) Resize(ctx context.Context, id string, start, end time.Time) (MutationState, error) {
	return v.mutateTimes(ctx, id, start, end)
}

func (v *CalendarView) mutateTimes(ctx context.Context, id string, start, end time.Time) (MutationState, error) {
	v.mu.Lock()
	prev, ok := v.events[id]
	if !ok {
		v.mu.Unlock()
		return RolledBack, &APIError{StatusCode: 404, Message: "Event not found"}
	}

	// Phase 1: speculative local apply
	speculative := prev
	speculative.Start = start
	speculative.End = end
	v.events[id] = speculative
	v.mu.Unlock()

	// Phase 2: issue the write
	if err := v.client.UpdateEventTimes(ctx, id, start, end); err != nil {
		// Phase 3: discard the speculative value and re-read the
		// authoritative list. A refresh failure leaves the view stale
		// but never half-reverted.
		if refreshErr := v.Refresh(ctx); refreshErr != nil {
			return RolledBack, refreshErr
		}
		return RolledBack, err
	}

	return Committed, nil
}
