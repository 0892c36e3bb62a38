// Package api serves the engine and extension-problem authoring over JSON
// HTTP.
package api

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhisek/mathstudio/internal/engine"
	"github.com/abhisek/mathstudio/internal/metrics"
	"github.com/abhisek/mathstudio/internal/store"
)

// Options are the dependencies of a Server. Extension and OnProblemsChanged
// may be nil.
type Options struct {
	Engine    *engine.Engine
	Extension *engine.Extension
	Problems  store.ProblemRepo
	Events    store.EventRepo
	Metrics   *metrics.Metrics
	Logger    *zap.Logger

	// OnProblemsChanged runs after an approval or deletion, e.g. to reload
	// the extension pool.
	OnProblemsChanged func(ctx context.Context) error
}

// Server holds the HTTP handlers.
type Server struct {
	engine   *engine.Engine
	ext      *engine.Extension
	problems store.ProblemRepo
	events   store.EventRepo
	metrics  *metrics.Metrics
	logger   *zap.Logger
	onChange func(ctx context.Context) error
}

// New creates a Server.
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}
	return &Server{
		engine:   opts.Engine,
		ext:      opts.Extension,
		problems: opts.Problems,
		events:   opts.Events,
		metrics:  m,
		logger:   logger,
		onChange: opts.OnProblemsChanged,
	}
}

// Router builds the gin engine with every route registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(s.recovery(), s.requestLogger(), s.metrics.Middleware())

	r.GET("/health", s.health)
	r.GET("/metrics", s.metrics.Handler())

	v1 := r.Group("/api/v1")
	{
		v1.GET("/problem", s.getProblem)
		v1.POST("/challenge", s.buildChallenge)
		v1.POST("/check", s.check)
		v1.POST("/hint", s.hint)
		v1.GET("/stats", s.stats)

		v1.GET("/problems", s.listProblems)
		v1.POST("/problems", s.addProblem)
		v1.GET("/problems/:id", s.getStoredProblem)
		v1.POST("/problems/:id/approve", s.approveProblem)
		v1.DELETE("/problems/:id", s.deleteProblem)
	}
	return r
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}

func (s *Server) recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		s.logger.Error("panic in handler", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		errorResponse(c, http.StatusInternalServerError, "internal server error")
	})
}

func (s *Server) health(c *gin.Context) {
	success(c, gin.H{"status": "ok"})
}
