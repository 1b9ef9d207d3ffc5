package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/resenia/reviews-backend/internal/config"
	"github.com/resenia/reviews-backend/internal/utils"
)

// AuthMiddleware resolves the current user from the bearer token and
// injects the identity into the request context. Every operation that
// needs identity reads it from there; nothing is held globally.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.SendUnauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			utils.SendUnauthorized(c, "Bearer token required")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString, cfg.JWTSecret)
		if err != nil {
			utils.SendUnauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		if claims.Type != string(utils.AccessToken) {
			utils.SendUnauthorized(c, "Access token required")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Next()
	}
}
