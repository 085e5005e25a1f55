package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gradelens/gradelens-api/internal/server/ratelimit"
)

// Manager wires all HTTP middlewares with shared dependencies.
type Manager struct {
	rateLimiter *ratelimit.Limiter
}

// NewManager builds a middleware manager for the HTTP server.
func NewManager(limiter *ratelimit.Limiter) *Manager {
	return &Manager{rateLimiter: limiter}
}

// RequestID tags every request with a generated ID so log lines and error
// reports can be correlated.
func (m *Manager) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// RateLimit enforces per-client request limits, keyed by client IP.
func (m *Manager) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		if !m.rateLimiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		c.Next()
	}
}
