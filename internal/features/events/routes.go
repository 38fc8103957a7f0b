package events

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// RegisterRoutes mounts the event endpoints. Events are not
// ownership-scoped; no auth middleware is applied.
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database) {
	repo := NewRepository(db)
	handler := NewHandler(repo)

	eventsGroup := router.Group("/events")
	{
		eventsGroup.GET("", handler.List)
		eventsGroup.POST("", handler.Create)
		eventsGroup.PUT("/:id", handler.Update)
		eventsGroup.DELETE("/:id", handler.Delete)
		eventsGroup.POST("/:id/duplicate", handler.Duplicate)
	}
}
