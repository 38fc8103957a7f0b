package notes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/TheYuvrajMishra/upwork-standard/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database) {
	repo := NewRepository(db)
	handler := NewHandler(repo)

	notesGroup := router.Group("/notes")
	notesGroup.Use(middleware.RequireToken())
	{
		// Read paths additionally require a structurally valid token
		notesGroup.GET("", middleware.RequireIdentity(), handler.List)
		notesGroup.POST("", middleware.RequireIdentity(), handler.Create)
		notesGroup.PUT("/:id", handler.Update)
		notesGroup.DELETE("/:id", handler.Delete)
	}
}
