package auth

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/TheYuvrajMishra/upwork-standard/internal/middleware"
	"github.com/TheYuvrajMishra/upwork-standard/internal/pkg/ratelimit"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database) {
	repo := NewRepository(db)
	handler := NewHandler(repo)

	// Credential endpoints get a tight per-IP limit
	limiter := ratelimit.New(20, time.Minute)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", ratelimit.Middleware(limiter), handler.Register)
		authGroup.POST("/login", ratelimit.Middleware(limiter), handler.Login)
		authGroup.GET("/me", middleware.Auth(), handler.Me)
	}
}
