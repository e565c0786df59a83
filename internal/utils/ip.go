package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// identifierUserAgentMax caps the user-agent fallback identifier length.
const identifierUserAgentMax = 50

// ClientIdentifier derives the rate-limit key for a request: the first
// entry of X-Forwarded-For, else X-Real-IP, else a truncated User-Agent.
// None of these are verified identities; the result is a best-effort
// abuse-mitigation key. When every source is empty the empty string is
// returned and those requests share a single bucket.
func ClientIdentifier(c *gin.Context) string {
	if forwardedFor := c.GetHeader("X-Forwarded-For"); forwardedFor != "" {
		// Comma-separated list: client, proxy1, proxy2, ...
		first := strings.TrimSpace(strings.Split(forwardedFor, ",")[0])
		if first != "" {
			return first
		}
	}

	if realIP := c.GetHeader("X-Real-IP"); realIP != "" {
		return realIP
	}

	userAgent := c.Request.UserAgent()
	if len(userAgent) > identifierUserAgentMax {
		userAgent = userAgent[:identifierUserAgentMax]
	}
	return userAgent
}

// GetRealIP extracts the client IP for logging, respecting reverse proxies.
func GetRealIP(c *gin.Context) string {
	if ip := c.GetHeader("X-Real-IP"); ip != "" {
		return ip
	}

	if forwardedFor := c.GetHeader("X-Forwarded-For"); forwardedFor != "" {
		ips := strings.Split(forwardedFor, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	return c.ClientIP()
}
