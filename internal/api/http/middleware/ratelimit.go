package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// LoginRateLimit throttles an endpoint per client IP with a token bucket.
// Entries idle longer than an hour are dropped to bound the map.
func LoginRateLimit(perMinute int) gin.HandlerFunc {
	if perMinute <= 0 {
		perMinute = 10
	}

	type entry struct {
		limiter  *rate.Limiter
		lastSeen time.Time
	}

	var (
		mu      sync.Mutex
		clients = make(map[string]*entry)
	)

	limit := rate.Every(time.Minute / time.Duration(perMinute))
	burst := perMinute

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		e, ok := clients[ip]
		if !ok {
			e = &entry{limiter: rate.NewLimiter(limit, burst)}
			clients[ip] = e
		}
		e.lastSeen = time.Now()

		if len(clients) > 1000 {
			cutoff := time.Now().Add(-time.Hour)
			for k, v := range clients {
				if v.lastSeen.Before(cutoff) {
					delete(clients, k)
				}
			}
		}
		mu.Unlock()

		if !e.limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"message": "Too many attempts, try again later"})
			c.Abort()
			return
		}

		c.Next()
	}
}
