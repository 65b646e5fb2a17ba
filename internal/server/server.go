package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"max.ks1230/open-rates/internal/logger"
)

const readHeaderTimeout = 5 * time.Second

type config interface {
	Addr() string
}

// Server exposes the rate lookup API next to /metrics and /healthz.
type Server struct {
	server *http.Server
	lis    net.Listener
}

func NewServer(config config, rates rateGetter) (*Server, error) {
	lis, err := net.Listen("tcp", config.Addr())
	if err != nil {
		return nil, errors.Wrap(err, "cannot create server")
	}

	return &Server{
		server: &http.Server{
			Handler:           newRouter(rates),
			ReadHeaderTimeout: readHeaderTimeout,
		},
		lis: lis,
	}, nil
}

func newRouter(rates rateGetter) *mux.Router {
	router := mux.NewRouter()
	router.Use(requestIDMiddleware, loggingMiddleware)

	h := &rateHandler{rates: rates}
	router.HandleFunc("/v1/rates/{from}/{to}", h.getRate).Methods(http.MethodGet)
	router.HandleFunc("/healthz", healthz).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler())
	return router
}

func (s *Server) Serve() {
	logger.Info("http server listening", zap.Any("addr", s.lis.Addr()))
	err := s.server.Serve(s.lis)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("failed to serve http", zap.Error(err))
	}
}

func (s *Server) Shutdown(ctx context.Context) {
	if err := s.server.Shutdown(ctx); err != nil {
		logger.Error("http server shutdown", zap.Error(err))
		return
	}
	logger.Info("http server stopped")
}
