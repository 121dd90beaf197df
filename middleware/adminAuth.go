package middleware

import (
	"net/http"

	"github.com/ArafatSadi1/doctors-portal/utils"

	"github.com/gin-gonic/gin"
)

// AdminMiddleware must run after JWTAuthMiddleware. It checks the stored role of the
// authenticated email.
func (g *AuthGate) AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := ContextEmail(c)
		if email == "" {
			utils.JSONError(c, http.StatusUnauthorized, "Unauthorized access", "authentication required")
			c.Abort()
			return
		}
		if err := g.RequireAdmin(c.Request.Context(), email); err != nil {
			utils.AbortWithError(c, err)
			return
		}
		c.Set("isAdmin", true)
		c.Next()
	}
}
