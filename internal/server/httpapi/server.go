// Package httpapi exposes the account service over HTTP/JSON.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/okozlov/accountd/internal/logging"
	"github.com/okozlov/accountd/internal/server/services"
)

type Server struct {
	address string
	logger  logging.Logger
	auth    *services.AuthService
	users   *services.UsersService
	avatars *services.AvatarService
}

func NewServer(address string, l logging.Logger, auth *services.AuthService, users *services.UsersService, avatars *services.AvatarService) *Server {
	return &Server{
		address: address,
		logger:  l.With("module", "http_server"),
		auth:    auth,
		users:   users,
		avatars: avatars,
	}
}

func (s *Server) router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	api.POST("/auth/register", s.handleRegister)
	api.POST("/auth/login", s.handleLogin)
	api.GET("/auth/verify", s.handleVerify)

	protected := api.Group("/")
	protected.Use(s.requireAuth())

	protected.GET("/users", s.handleListUsers)
	protected.GET("/users/:id", s.handleGetUser)
	protected.PUT("/users/:id", s.handleUpdateUser)
	protected.DELETE("/users/:id", s.handleDeleteUser)

	protected.POST("/avatars/upload-url", s.handleAvatarUploadURL)
	protected.GET("/avatars/download-url", s.handleAvatarDownloadURL)

	return router
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
