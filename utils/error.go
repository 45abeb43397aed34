package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the JSON shape of every error reply this service sends.
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler converts unhandled panics into a structured 500 so a bug in
// a handler or adapter never leaks a stack trace to clients.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				GetLogger().Error("unhandled panic",
					zap.Any("panic", r),
					zap.String("path", c.FullPath()))
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
			}
		}()
		c.Next()
	}
}

// JSONError writes a standardized error reply and records it at warn level.
func JSONError(c *gin.Context, status int, message, details string) {
	GetLogger().Warn(message,
		zap.Int("status", status),
		zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}
