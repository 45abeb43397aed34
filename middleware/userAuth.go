package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"tourvia/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextUserIDKey is where the authenticated user's uid is stored on the
// request context.
const ContextUserIDKey = "userID"

// AuthSessionStore checks a token hash against the user's registered
// session, enabling revocation. Satisfied by utils.AuthSessionCache.
type AuthSessionStore interface {
	Validate(ctx context.Context, uid, tokenHash string) error
}

// JWTAuthUserMiddleware validates the bearer session token, checks it
// against the session registry, and sets the authenticated user ID on the
// context. Requests without a valid identity never reach the workflow.
func JWTAuthUserMiddleware(sessions AuthSessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
			})
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired session",
			})
			return
		}

		if sessions != nil {
			err := sessions.Validate(c.Request.Context(), userID, utils.HashToken(tokenString))
			if errors.Is(err, utils.ErrAuthSessionInvalid) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Session revoked, please sign in again",
				})
				return
			}
			if err != nil {
				// The token signature already checked out; a registry outage
				// must not lock every caller out.
				utils.GetLogger().Warn("auth session check unavailable",
					zap.String("uid", userID), zap.Error(err))
			}
		}

		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

// UserIDFromContext returns the authenticated user ID, if any.
func UserIDFromContext(c *gin.Context) string {
	if v, ok := c.Get(ContextUserIDKey); ok {
		if uid, ok := v.(string); ok {
			return uid
		}
	}
	return ""
}
