package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/watcher/internal/metrics"
)

// Logger logs every request served by the metrics server with zerolog and
// counts it by route and status. Scrapes are frequent, so the entry is debug level.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		metrics.APIRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()

		event := log.Debug().
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Int("status", status).
			Str("ip", c.ClientIP()).
			Dur("latency", time.Since(start))
		if len(c.Errors) > 0 {
			event = event.Str("error", c.Errors.String())
		}
		event.Msg("incoming request")
	}
}
