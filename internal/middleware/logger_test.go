package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/thirdweb-dev/watcher/internal/metrics"
)

func TestLogger_CountsRequestsByRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Logger())
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	healthBefore := testutil.ToFloat64(metrics.APIRequests.WithLabelValues("/health", "200"))
	unmatchedBefore := testutil.ToFloat64(metrics.APIRequests.WithLabelValues("unmatched", "404"))

	for _, path := range []string{"/health", "/health", "/missing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, healthBefore+2, testutil.ToFloat64(metrics.APIRequests.WithLabelValues("/health", "200")))
	assert.Equal(t, unmatchedBefore+1, testutil.ToFloat64(metrics.APIRequests.WithLabelValues("unmatched", "404")))
}
