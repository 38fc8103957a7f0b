package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/TheYuvrajMishra/upwork-standard/internal/features/auth"
	"github.com/TheYuvrajMishra/upwork-standard/internal/features/events"
	"github.com/TheYuvrajMishra/upwork-standard/internal/features/notes"
	"github.com/TheYuvrajMishra/upwork-standard/internal/features/tasks"
	"github.com/TheYuvrajMishra/upwork-standard/internal/features/users"
)

func SetupRoutes(router *gin.Engine, db *mongo.Database) {
	api := router.Group("/api")

	auth.RegisterRoutes(api, db)
	users.RegisterRoutes(api, db)
	notes.RegisterRoutes(api, db)
	tasks.RegisterRoutes(api, db)
	events.RegisterRoutes(api, db)
}
