package middleware

import (
	"math/rand"
	"time"

	"github.com/gin-gonic/gin"
)

// SimulatedLatency sleeps for a random duration in [min, max] before
// handling the request, emulating network latency the way the SPA's
// dev mock did. Enable only in memory mode; health endpoints should
// stay outside the group this is attached to.
func SimulatedLatency(min, max time.Duration) gin.HandlerFunc {
	spread := max - min
	return func(c *gin.Context) {
		delay := min
		if spread > 0 {
			delay += time.Duration(rand.Int63n(int64(spread) + 1))
		}
		time.Sleep(delay)
		c.Next()
	}
}
