package middleware

import (
	"net/http"
	"strings"

	"darshanam/services/session"

	"github.com/gin-gonic/gin"
)

// SessionAuthMiddleware resolves the bearer token into a devotee session
// and stores it on the request context. Requests without a valid session
// are rejected with 401.
func SessionAuthMiddleware(sessions session.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		sess, err := sessions.FromToken(c.Request.Context(), tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication error",
			})
			return
		}

		c.Set("session", sess)
		c.Set("userID", sess.UserID)
		c.Set("accessToken", tokenString)
		c.Next()
	}
}
