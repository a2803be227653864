package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/starboard/internal/config"
	"github.com/vovakirdan/starboard/internal/core"
	"github.com/vovakirdan/starboard/internal/metrics"
)

// NewServer builds the HTTP server with the board API, static page and health routes.
// m may be nil, in which case /metrics is not served.
func NewServer(board *core.Board, cfg config.Config, m *metrics.Metrics, logger *zerolog.Logger) *stdhttp.Server {
	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           NewRouter(board, cfg, m, logger),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

// NewRouter registers every route on a fresh gin engine.
func NewRouter(board *core.Board, cfg config.Config, m *metrics.Metrics, logger *zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(RecoveryMiddleware(logger))
	router.Use(LoggerMiddleware(logger))
	if m != nil {
		router.Use(MetricsMiddleware(m))
	}
	router.Use(CORSMiddleware())
	router.Use(BodyLimitMiddleware(cfg.MaxBodyBytes))

	boardHandlers := NewBoardHandlers(board, logger)
	userHandlers := NewUserHandlers(board, logger)

	router.GET("/", pageHandler)
	router.GET("/health", healthHandler)
	router.GET("/palette", boardHandlers.Palette)
	router.GET("/messages", boardHandlers.Messages)
	router.POST("/send", boardHandlers.Send)
	router.POST("/user", userHandlers.UpdateUser)

	if m != nil {
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	return router
}

func healthHandler(c *gin.Context) {
	c.String(stdhttp.StatusOK, "ok")
}
