package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// clientAddress extracts the caller's network address. The edge proxy's
// dedicated header wins; otherwise the first hop of X-Forwarded-For is
// taken, and a direct connection falls back to the socket peer.
func clientAddress(c *gin.Context) string {
	if addr := c.GetHeader("CF-Connecting-IP"); addr != "" {
		return addr
	}
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		first := strings.Split(forwarded, ",")[0]
		return strings.TrimSpace(first)
	}
	return c.ClientIP()
}

// intQuery parses an optional integer query parameter, returning 0 when the
// parameter is absent or malformed.
func intQuery(c *gin.Context, name string) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return value
}
