// Package httpapi is the HTTP boundary of the credential service. It only
// parses requests and maps service errors to status codes; all credential
// logic lives in the services package.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/credkeeper/internal/logging"
	"github.com/dmitrijs2005/credkeeper/internal/metrics"
	"github.com/dmitrijs2005/credkeeper/internal/server/services"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address string
	users   *services.UserService
	logger  logging.Logger
	engine  *gin.Engine
}

func NewServer(address string, l logging.Logger, us *services.UserService) *Server {
	s := &Server{
		address: address,
		users:   us,
		logger:  l.With("module", "httpapi"),
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), metrics.GinMiddleware())

	r.POST("/login", s.login)
	r.POST("/token", s.login) // alias kept for OAuth2 password-flow clients
	r.POST("/users", s.createUser)
	r.GET("/users/me", s.bearerAuth(), s.currentUser)
	r.GET("/ping", s.ping)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	s.engine = r
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{Addr: s.address, Handler: s.engine}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
