package tasks

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// RegisterRoutes mounts the task endpoints. No auth middleware: any
// caller may read and mutate tasks in the current design.
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database) {
	repo := NewRepository(db)
	handler := NewHandler(repo)

	tasksGroup := router.Group("/tasks")
	{
		tasksGroup.GET("", handler.List)
		tasksGroup.POST("", handler.Create)
		tasksGroup.PUT("/:id", handler.Update)
		tasksGroup.DELETE("/:id", handler.Delete)
	}
}
