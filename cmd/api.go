package cmd

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	config "github.com/thirdweb-dev/watcher/configs"
	"github.com/thirdweb-dev/watcher/internal/middleware"
)

var (
	apiCmd = &cobra.Command{
		Use:   "api",
		Short: "Serve metrics and health endpoints",
		Long:  "Serves prometheus metrics on /metrics and a liveness check on /health without running a watch session.",
		Run: func(cmd *cobra.Command, args []string) {
			RunApi(cmd, args)
		},
	}
)

func RunApi(cmd *cobra.Command, args []string) {
	if err := NewRouter().Run(fmt.Sprintf(":%d", config.Cfg.Metrics.Port)); err != nil {
		log.Error().Err(err).Msg("Metrics server stopped")
	}
}

func NewRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Logger())
	r.Use(gin.Recovery())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}
