// Package client is a typed Go client for the dashboard API. It speaks the
// JSON envelope the server emits and implements the optimistic
// mutation contract the calendar UI relies on: apply speculative local
// state, issue the write, and on failure discard the speculative value and
// re-read the authoritative list.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Event mirrors the server's calendar event wire shape
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	AllDay      bool      `json:"allDay"`
	Type        string    `json:"type"`
	Color       string    `json:"color"`
}

// Note mirrors the server's note wire shape
type Note struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// APIError is a failure envelope returned by the server
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken sets the bearer credential sent on authorized requests
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		var envelope struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		_ = json.Unmarshal(raw, &envelope)
		msg := envelope.Message
		if msg == "" {
			msg = envelope.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out != nil {
		return json.Unmarshal(raw, out)
	}
	return nil
}

// ListEvents fetches the full authoritative event list
func (c *Client) ListEvents(ctx context.Context) ([]Event, error) {
	var envelope struct {
		Data []Event `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/events", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// CreateEvent persists a new event
func (c *Client) CreateEvent(ctx context.Context, event Event) (*Event, error) {
	var envelope struct {
		Data Event `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/events", event, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

// UpdateEventTimes sends the start/end-only patch a drag or resize
// gesture produces
func (c *Client) UpdateEventTimes(ctx context.Context, id string, start, end time.Time) error {
	patch := map[string]interface{}{"start": start, "end": end}
	return c.do(ctx, http.MethodPut, "/api/events/"+id, patch, nil)
}

// DeleteEvent removes an event
func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/events/"+id, nil, nil)
}

// DuplicateEvent clones an event server-side under a new id
func (c *Client) DuplicateEvent(ctx context.Context, id string) (*Event, error) {
	var envelope struct {
		Data Event `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/events/"+id+"/duplicate", nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

// ListNotes fetches the notes owned by the configured token
func (c *Client) ListNotes(ctx context.Context) ([]Note, error) {
	var envelope struct {
		Notes []Note `json:"notes"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/notes", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Notes, nil
}

// CreateNote persists a new note owned by the configured token
func (c *Client) CreateNote(ctx context.Context, title, content string) (*Note, error) {
	var envelope struct {
		Note Note `json:"note"`
	}
	body := map[string]string{"title": title, "content": content}
	if err := c.do(ctx, http.MethodPost, "/api/notes", body, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Note, nil
}

// UpdateNote updates a note the configured token owns
func (c *Client) UpdateNote(ctx context.Context, id, title, content string) error {
	body := map[string]string{"title": title, "content": content}
	return c.do(ctx, http.MethodPut, "/api/notes/"+id, body, nil)
}

// DeleteNote removes a note the configured token owns
func (c *Client) DeleteNote(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/notes/"+id, nil, nil)
}
