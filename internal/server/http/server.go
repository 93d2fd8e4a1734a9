// Package http serves the Mnemos REST API with gin. It mirrors the gRPC
// service for browser and script clients.
package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/mnemos/internal/logging"
	"github.com/dmitrijs2005/mnemos/internal/server/readiness"
	"github.com/dmitrijs2005/mnemos/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	Engine   *gin.Engine
	address  string
	services services.Set
	gate     *readiness.Gate
	logger   logging.Logger
}

func NewServer(a string, l logging.Logger, gate *readiness.Gate, s services.Set) *Server {
	srv := &Server{
		address:  a,
		logger:   l.With("module", "http_server"),
		gate:     gate,
		services: s,
	}
	srv.Engine = srv.newRouter()
	return srv
}

func (s *Server) newRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(s.logger))
	r.Use(CORS())

	r.GET("/healthcheck", s.healthCheck)

	api := r.Group("/api")
	api.Use(RequireReady(s.gate))
	{
		api.GET("/items", s.listItems)
		api.POST("/items", s.createItem)
		api.PUT("/items/:id", s.updateItem)
		api.DELETE("/items/:id", s.deleteItem)

		api.GET("/settings", s.getSettings)
		api.PUT("/settings", s.updateSettings)

		api.GET("/categories", s.listCategories)
		api.POST("/categories", s.addCategory)
		api.PUT("/categories/:name", s.renameCategory)
		api.DELETE("/categories/:name", s.deleteCategory)

		api.GET("/data", s.getData)
	}
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

func (s *Server) Serve(ctx context.Context, listen net.Listener) error {
	srv := &http.Server{
		Handler:           s.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP shutdown failed", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
