package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// getClientIP resolves the originating address for rate limiting. Proxy
// headers win over the socket address since deployments sit behind a load
// balancer.
func getClientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		// First entry in the chain is the client itself.
		first, _, _ := strings.Cut(xff, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if xri := c.GetHeader("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	if host, _, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil {
		return host
	}
	return c.Request.RemoteAddr
}
