package ratelimit

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Middleware limits requests per client IP. Mounted on the auth routes to
// slow down credential guessing.
func Middleware(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		if !limiter.Allow(key) {
			resetTime := limiter.ResetTime(key)

			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", resetTime.Format(time.RFC3339))
			c.Header("Retry-After", "60")

			c.JSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "Too many requests. Try again later.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
