package tasks

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/TheYuvrajMishra/upwork-standard/internal/pkg/logger"
	"github.com/TheYuvrajMishra/upwork-standard/internal/pkg/response"
)

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// List godoc
// @Summary List tasks
// @Description Get all tasks with assignee names and emails populated
// @Tags tasks
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /tasks [get]
func (h *Handler) List(c *gin.Context) {
	list, err := h.store.List(c.Request.Context())
	if err != nil {
		logger.Error("tasks: list failed: %v", err)
		response.Fail(c, http.StatusInternalServerError, "Server error while fetching tasks.")
		return
	}

	response.OK(c, list)
}

// Create godoc
// @Summary Create a task
// @Description Create a task assigned to one or more existing users
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body CreateTaskRequest true "Task creation data"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /tasks [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" || len(req.AssignedTo) == 0 {
		response.Fail(c, http.StatusBadRequest, "Title, description, and assignedTo are required fields.")
		return
	}

	if req.Priority == "" {
		req.Priority = PriorityMedium
	}
	if req.Status == "" {
		req.Status = StatusToDo
	}
	if !validPriority(req.Priority) {
		response.Fail(c, http.StatusBadRequest, "Priority must be one of Low, Medium, High.")
		return
	}
	if !validStatus(req.Status) {
		response.Fail(c, http.StatusBadRequest, "Status must be one of To Do, In Progress, Completed.")
		return
	}

	assignees, err := h.resolveAssignees(c, req.AssignedTo)
	if err != nil {
		return // response already written
	}

	task := &Task{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
		AssignedTo:  assignees,
	}

	if err := h.store.Insert(c.Request.Context(), task); err != nil {
		logger.Error("tasks: insert failed: %v", err)
		response.Fail(c, http.StatusInternalServerError, "An internal server error occurred.")
		return
	}

	response.Created(c, task)
}

// Update godoc
// @Summary Update a task
// @Description Update a task; title, status, and priority are required
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body UpdateTaskRequest true "Task update data"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /tasks/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	taskID := c.Param("id")

	if _, err := primitive.ObjectIDFromHex(taskID); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid Task ID format")
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if strings.TrimSpace(req.Title) == "" || req.Status == "" || req.Priority == "" {
		response.Fail(c, http.StatusBadRequest, "Missing required fields: title, status, and priority are required.")
		return
	}
	if !validPriority(req.Priority) {
		response.Fail(c, http.StatusBadRequest, "Priority must be one of Low, Medium, High.")
		return
	}
	if !validStatus(req.Status) {
		response.Fail(c, http.StatusBadRequest, "Status must be one of To Do, In Progress, Completed.")
		return
	}

	update := bson.M{
		"title":       strings.TrimSpace(req.Title),
		"description": req.Description,
		"status":      req.Status,
		"priority":    req.Priority,
	}

	if req.AssignedTo != nil {
		ids := make([]primitive.ObjectID, 0, len(req.AssignedTo))
		for _, raw := range req.AssignedTo {
			oid, err := primitive.ObjectIDFromHex(raw)
			if err != nil {
				response.Fail(c, http.StatusBadRequest, "Invalid assignee ID format")
				return
			}
			ids = append(ids, oid)
		}
		update["assignedTo"] = ids
	}

	task, err := h.store.Update(c.Request.Context(), taskID, update)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "Task not found")
			return
		}
		logger.Error("tasks: update failed: %v", err)
		response.Fail(c, http.StatusInternalServerError, "An error occurred while updating the task")
		return
	}

	response.OKWithMessage(c, "Task updated successfully", task)
}

// Delete godoc
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /tasks/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	taskID := c.Param("id")

	if _, err := primitive.ObjectIDFromHex(taskID); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid Task ID format")
		return
	}

	if err := h.store.Delete(c.Request.Context(), taskID); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "Task not found")
			return
		}
		logger.Error("tasks: delete failed: %v", err)
		response.Fail(c, http.StatusInternalServerError, "An error occurred while deleting the task")
		return
	}

	response.OKWithMessage(c, "Task deleted successfully", nil)
}

// resolveAssignees parses and verifies every assignee id, writing the
// error response itself when something is off.
func (h *Handler) resolveAssignees(c *gin.Context, raw []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(raw))
	for _, idStr := range raw {
		oid, err := primitive.ObjectIDFromHex(idStr)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, "Invalid assignee ID format")
			return nil, err
		}

		exists, err := h.store.UserExists(c.Request.Context(), oid)
		if err != nil {
			logger.Error("tasks: assignee lookup failed: %v", err)
			response.Fail(c, http.StatusInternalServerError, "An internal server error occurred.")
			return nil, err
		}
		if !exists {
			response.Fail(c, http.StatusNotFound, "The user assigned to this task does not exist.")
			return nil, errors.New("assignee not found")
		}

		ids = append(ids, oid)
	}
	return ids, nil
}
