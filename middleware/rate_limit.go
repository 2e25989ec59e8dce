package middleware

import (
	"net/http"
	"time"

	"github.com/Mdken1/storefront-api/cache"
	"github.com/gin-gonic/gin"
)

const (
	rateLimitPeriod = 1 * time.Minute
	rateLimitCount  = 120
)

// RateLimiter applies a fixed-window per-IP limit backed by Redis. Without
// Redis, or when Redis errors, traffic passes through.
func RateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		if cache.Client == nil {
			c.Next()
			return
		}

		key := "rate_limit:" + c.ClientIP()
		count, err := cache.Client.Incr(c.Request.Context(), key).Result()
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			cache.Client.Expire(c.Request.Context(), key, rateLimitPeriod)
		}
		if count > rateLimitCount {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			c.Abort()
			return
		}

		c.Next()
	}
}
