package middleware

import (
	"github.com/gin-gonic/gin"

	"arte-gallery-backend/internal/shared/response"
)

// AdminMiddleware checks if the authenticated user has the admin role.
// Must run after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get(ContextRole)
		if !ok || role != "admin" {
			response.Forbidden(c, "Access denied: admin role required")
			c.Abort()
			return
		}

		c.Next()
	}
}
