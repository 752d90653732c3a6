package middleware

import (
	"net/http"
	"strings"

	"github.com/iamkimedel22/SAVR/auth"
	"github.com/iamkimedel22/SAVR/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserIDKey is the gin context key under which the authenticated user id
// is stored by AuthMiddleware.
const UserIDKey = "userID"

// AuthMiddleware verifies the bearer token on every request it guards.
// A missing token and a failed verification both abort with 401, with
// distinct messages.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c.Request)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		claims, err := auth.ParseToken(tokenString, secret)
		if err != nil {
			logger.Get().Debug("token verification failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}

// extractToken reads the Authorization header and returns the bearer
// token, or "" when the header is missing or not in Bearer form.
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}
