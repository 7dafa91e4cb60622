// Package serve runs instruction sets submitted over HTTP.
package serve

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"go.uber.org/zap"
)

// maxInstructionBytes caps the size of a submitted instruction file.
const maxInstructionBytes = 1 << 20

type Server struct {
	Addr   string
	logger *zap.SugaredLogger
	srv    *http.Server
}

func NewServer(addr string, logger *zap.SugaredLogger) *Server {
	s := &Server{Addr: addr, logger: logger}
	s.srv = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	return s
}

// Router wires the endpoints:
//
//	POST /run  instruction file in, JSON results out
//	GET  /ws   websocket, one instruction file per message, streamed events
func (s *Server) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.NoCache)

	router.Post("/run", s.RunHandler)
	router.Get("/ws", s.StreamHandler)
	return router
}

// ListenAndServe blocks until the server stops. It returns
// http.ErrServerClosed after Shutdown.
func (s *Server) ListenAndServe() error {
	s.logger.Infow("listening", "addr", s.Addr)
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown() error {
	s.logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.srv.Shutdown(ctx)
}
