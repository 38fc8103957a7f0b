package events

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/TheYuvrajMishra/upwork-standard/internal/pkg/logger"
)

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// List godoc
// @Summary List events
// @Description Get all calendar events. Type filtering is done client-side.
// @Tags events
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /events [get]
func (h *Handler) List(c *gin.Context) {
	list, err := h.store.List(c.Request.Context())
	if err != nil {
		logger.Error("events: list failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Failed to fetch events"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

// Create godoc
// @Summary Create an event
// @Description Create a calendar event; color defaults from the type palette
// @Tags events
// @Accept json
// @Produce json
// @Param request body CreateEventRequest true "Event data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /events [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request format"})
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Please provide a title for the event."})
		return
	}
	if req.Start == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Please provide a start date."})
		return
	}
	if req.End == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Please provide an end date."})
		return
	}
	if !validType(req.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid event type"})
		return
	}
	if req.End.Before(*req.Start) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "End time cannot be earlier than start time"})
		return
	}

	event := &Event{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Start:       *req.Start,
		End:         *req.End,
		AllDay:      req.AllDay,
		Type:        req.Type,
		Color:       ResolveColor(req.Type, req.Color),
	}

	if err := h.store.Insert(c.Request.Context(), event); err != nil {
		logger.Error("events: insert failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Failed to create event"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": event})
}

// Update godoc
// @Summary Update an event
// @Description Full or partial update. Drag and resize send only start/end;
// @Description the merged record is validated and persisted whole.
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body UpdateEventRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /events/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	eventID := c.Param("id")

	if _, err := primitive.ObjectIDFromHex(eventID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid event ID"})
		return
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request format"})
		return
	}

	existing, err := h.store.FindByID(c.Request.Context(), eventID)
	if err != nil {
		logger.Error("events: lookup failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Failed to fetch event"})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Event not found"})
		return
	}

	merged := *existing
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Please provide a title for the event."})
			return
		}
		merged.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		merged.Description = strings.TrimSpace(*req.Description)
	}
	if req.Start != nil {
		merged.Start = *req.Start
	}
	if req.End != nil {
		merged.End = *req.End
	}
	if req.AllDay != nil {
		merged.AllDay = *req.AllDay
	}
	if req.Type != nil {
		if !validType(*req.Type) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid event type"})
			return
		}
		if *req.Type != existing.Type {
			// Type change discards any per-instance color override
			merged = ApplyTypeChange(merged, *req.Type)
		}
	}
	if req.Color != nil && *req.Color != "" {
		merged.Color = *req.Color
	}

	// The invariant holds on the merged record, not the patch
	if merged.End.Before(merged.Start) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "End time cannot be earlier than start time"})
		return
	}

	if err := h.store.Replace(c.Request.Context(), eventID, &merged); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Event not found"})
			return
		}
		logger.Error("events: replace failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Failed to update event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": merged})
}

// Delete godoc
// @Summary Delete an event
// @Description Unconditional delete. Confirmation is a UI concern.
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /events/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	eventID := c.Param("id")

	if _, err := primitive.ObjectIDFromHex(eventID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid event ID"})
		return
	}

	if err := h.store.Delete(c.Request.Context(), eventID); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Event not found"})
			return
		}
		logger.Error("events: delete failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Failed to delete event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{}})
}

// Duplicate godoc
// @Summary Duplicate an event
// @Description Clone an event under a new id, preserving start and end exactly
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /events/{id}/duplicate [post]
func (h *Handler) Duplicate(c *gin.Context) {
	eventID := c.Param("id")

	if _, err := primitive.ObjectIDFromHex(eventID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid event ID"})
		return
	}

	existing, err := h.store.FindByID(c.Request.Context(), eventID)
	if err != nil {
		logger.Error("events: lookup failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Failed to fetch event"})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Event not found"})
		return
	}

	clone := Duplicate(*existing)
	if err := h.store.Insert(c.Request.Context(), &clone); err != nil {
		logger.Error("events: duplicate insert failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Failed to duplicate event"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": clone})
}
