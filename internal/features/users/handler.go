package users

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TheYuvrajMishra/upwork-standard/internal/pkg/logger"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// List godoc
// @Summary List users
// @Description Get all users for task assignment. Password hashes are never included.
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /users [get]
func (h *Handler) List(c *gin.Context) {
	list, err := h.repo.List(c.Request.Context())
	if err != nil {
		logger.Error("users: list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error while fetching users."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "users": list})
}
