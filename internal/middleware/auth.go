package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/harivola/medbot-api/internal/utils"
)

// AuthMiddleware guards a route behind a bearer token. A missing
// Authorization header yields 401; a present but invalid or expired token
// yields 403.
func AuthMiddleware(tokens *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.Validate(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid token"})
			return
		}

		// Set user info in the context for handlers to use
		c.Set("userID", claims.UserID)

		c.Next()
	}
}
