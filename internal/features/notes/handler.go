package notes

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/TheYuvrajMishra/upwork-standard/internal/middleware"
	"github.com/TheYuvrajMishra/upwork-standard/internal/pkg/logger"
)

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

func callerToken(c *gin.Context) OwnerKey {
	return OwnerKey(c.GetString(middleware.ContextToken))
}

// List godoc
// @Summary List notes
// @Description Get all notes owned by the presented bearer token
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /notes [get]
func (h *Handler) List(c *gin.Context) {
	list, err := h.store.ListByOwner(c.Request.Context(), callerToken(c))
	if err != nil {
		logger.Error("notes: list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch notes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "notes": list})
}

// Create godoc
// @Summary Create a note
// @Description Create a note owned by the presented bearer token
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateNoteRequest true "Note data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /notes [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request format"})
		return
	}

	if strings.TrimSpace(req.Title) == "" || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Title and content are required"})
		return
	}

	note := &Note{
		Owner:   callerToken(c),
		Title:   strings.TrimSpace(req.Title),
		Content: req.Content,
	}

	if err := h.store.Insert(c.Request.Context(), note); err != nil {
		logger.Error("notes: insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create note"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Note created successfully", "note": note})
}

// Update godoc
// @Summary Update a note
// @Description Update a note; only the owning token may do this
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Note ID"
// @Param request body UpdateNoteRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /notes/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	noteID := c.Param("id")

	if err := Authorize(c.Request.Context(), h.store, noteID, callerToken(c)); err != nil {
		h.rejectMutation(c, err, "Unauthorized: You can only edit your own notes")
		return
	}

	var req UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request format"})
		return
	}

	update := bson.M{}
	if strings.TrimSpace(req.Title) != "" {
		update["title"] = strings.TrimSpace(req.Title)
	}
	if req.Content != "" {
		update["content"] = req.Content
	}

	if len(update) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No fields to update"})
		return
	}

	note, err := h.store.Update(c.Request.Context(), noteID, update)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Note not found"})
			return
		}
		logger.Error("notes: update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update note"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "note": note})
}

// Delete godoc
// @Summary Delete a note
// @Description Delete a note; only the owning token may do this
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Note ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /notes/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	noteID := c.Param("id")

	if err := Authorize(c.Request.Context(), h.store, noteID, callerToken(c)); err != nil {
		h.rejectMutation(c, err, "Unauthorized: You can only delete your own notes")
		return
	}

	if err := h.store.Delete(c.Request.Context(), noteID); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Note not found"})
			return
		}
		logger.Error("notes: delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete note"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) rejectMutation(c *gin.Context, err error, forbiddenMsg string) {
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Note not found"})
	case errors.Is(err, ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": forbiddenMsg})
	case errors.Is(err, ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid note ID"})
	default:
		logger.Error("notes: ownership check failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to verify note ownership"})
	}
}
