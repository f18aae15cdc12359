package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Jack28cas/zeroshade/internal/adapter"
	"github.com/Jack28cas/zeroshade/internal/api/middleware"
	"github.com/Jack28cas/zeroshade/internal/api/rest"
	"github.com/Jack28cas/zeroshade/internal/api/shared/executor"
	"github.com/Jack28cas/zeroshade/internal/logger"
	"github.com/Jack28cas/zeroshade/internal/metrics"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	Auth         middleware.AuthConfig
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	executor   executor.Executor
	clock      adapter.Clock
	metrics    *metrics.Metrics
	gatherer   prometheus.Gatherer
	httpServer *http.Server
}

// New creates a new API server
func New(cfg Config, exec executor.Executor, clock adapter.Clock, m *metrics.Metrics, gatherer prometheus.Gatherer) *Server {
	return &Server{
		config:   cfg,
		executor: exec,
		clock:    clock,
		metrics:  m,
		gatherer: gatherer,
	}
}

// Router builds the gin engine with middleware and every route mounted
func (s *Server) Router() (*gin.Engine, error) {
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics(s.metrics))
	router.Use(middleware.SetupCORS())

	// Deploy is only guarded when credentials are configured
	var deployGuards []gin.HandlerFunc
	if s.config.Auth.Enabled() {
		authenticator, err := middleware.NewAuthenticator(s.config.Auth)
		if err != nil {
			return nil, fmt.Errorf("failed to create authenticator: %w", err)
		}
		deployGuards = append(deployGuards, authenticator.Middleware())
	}

	restHandler := rest.NewHandler(s.executor, s.clock)
	rest.SetupRoutes(router, restHandler, deployGuards...)

	if s.gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}

	return router, nil
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	router, err := s.Router()
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
		zap.Bool("deploy_auth", s.config.Auth.Enabled()),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
