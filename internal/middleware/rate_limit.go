package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/willowbrook-labs/sitter-scheduler/internal/httperr"
	"github.com/willowbrook-labs/sitter-scheduler/internal/ratelimit"
)

// RateLimitMiddleware limits requests per client IP against an injected
// counter store. The store is the only state; losing it fails open.
func RateLimitMiddleware(store ratelimit.Store, limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ratelimit:" + c.ClientIP()

		count, retryAfter, err := store.Hit(c.Request.Context(), key)
		if err != nil {
			zap.L().Warn("rate limit store unavailable", zap.Error(err))
			c.Next()
			return
		}

		remaining := int64(limit) - count
		if remaining < 0 {
			remaining = 0
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))

		if count > int64(limit) {
			c.Header("Retry-After", fmt.Sprintf("%d", int(retryAfter/time.Second)+1))
			httperr.TooManyRequests(c, "rate_limited", "Too many requests.")
			c.Abort()
			return
		}

		c.Next()
	}
}
