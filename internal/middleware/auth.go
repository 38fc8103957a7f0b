package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/TheYuvrajMishra/upwork-standard/internal/pkg/token"
)

// Context keys set by the middleware in this file.
const (
	ContextToken    = "token"
	ContextIdentity = "identity"
	ContextUserID   = "userID"
)

// BearerToken extracts the raw credential from the Authorization header.
// Both "Bearer <token>" and "bearer <token>" are accepted; a header with
// no scheme prefix is treated as the token itself.
func BearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	fields := strings.Fields(authHeader)
	if len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
		return fields[1], true
	}
	return authHeader, true
}

// RequireToken aborts with 401 when no bearer credential is present.
// The raw token string is stored in the context; note ownership checks
// compare it byte-for-byte, so it is never normalized or decoded here.
func RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		tok, ok := BearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authorization token required"})
			c.Abort()
			return
		}

		c.Set(ContextToken, tok)
		c.Next()
	}
}

// RequireIdentity additionally runs the structural token decode and aborts
// with 401 when the credential is not shaped like a JWT. The decoded
// display identity is advisory; it is stored for logging only.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := c.GetString(ContextToken)

		identity, err := token.Identity(tok)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set(ContextIdentity, identity)
		c.Next()
	}
}

// Auth performs full signature validation. Only routes that need a trusted
// caller identity (the profile endpoint) mount this.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tok, ok := BearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authorization header required"})
			c.Abort()
			return
		}

		claims, err := token.ValidateToken(tok)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid token"})
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Next()
	}
}
