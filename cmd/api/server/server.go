package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	ginhandler "user-directory-service/internal/adapter/gin/handler"
	"user-directory-service/internal/adapter/gin/middleware"
	ginrouter "user-directory-service/internal/adapter/gin/router"
	"user-directory-service/internal/config"

	"go.uber.org/zap"
)

// Server wraps the HTTP server serving the user directory API
type Server struct {
	Config *config.Config
	Logger *zap.Logger
	HTTP   *http.Server
}

// New creates a new server instance around the configured Gin router
func New(
	cfg *config.Config,
	l *zap.Logger,
	userHandler *ginhandler.UserHandler,
	authHandler *ginhandler.AuthHandler,
	auth middleware.Authenticator,
) *Server {
	router := ginrouter.SetupRouter(userHandler, authHandler, auth, l)

	return &Server{
		Config: cfg,
		Logger: l,
		HTTP: &http.Server{
			Addr:              ":" + cfg.App.HTTPPort,
			Handler:           router,
			ReadHeaderTimeout: 2 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
	}
}

// Start starts the HTTP server and blocks until it stops. A shutdown via
// Shutdown is not reported as an error.
func (s *Server) Start() error {
	s.Logger.Info("HTTP server running", zap.String("address", s.HTTP.Addr))

	if err := s.HTTP.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.Logger.Info("shutting down HTTP server...")
	return s.HTTP.Shutdown(ctx)
}
