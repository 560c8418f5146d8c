// Package server предоставляет общую функциональность для запуска HTTP и HTTPS серверов
// и их корректной остановки.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/InQaaaaGit/batchsum/internal/config"
	"go.uber.org/zap"
)

// HTTPServer представляет HTTP сервер с общей логикой запуска и остановки
type HTTPServer struct {
	server *http.Server
	config *config.Config
	logger *zap.Logger
}

// NewHTTPServer создает сервер с таймаутами для production использования
func NewHTTPServer(handler http.Handler, cfg *config.Config, logger *zap.Logger) *HTTPServer {
	return &HTTPServer{
		server: &http.Server{
			Addr:              cfg.ServerAddress,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       30 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		config: cfg,
		logger: logger,
	}
}

// Start запускает HTTP или HTTPS сервер в зависимости от конфигурации.
// Блокирует до остановки сервера, после Shutdown возвращает nil.
func (s *HTTPServer) Start() error {
	var err error
	if s.config.IsHTTPSEnabled() {
		s.logger.Info("Starting HTTPS server",
			zap.String("address", s.config.ServerAddress),
			zap.String("cert", s.config.TLSCertFile),
			zap.String("key", s.config.TLSKeyFile))
		err = s.server.ListenAndServeTLS(s.config.TLSCertFile, s.config.TLSKeyFile)
	} else {
		s.logger.Info("Starting HTTP server", zap.String("address", s.config.ServerAddress))
		err = s.server.ListenAndServe()
	}

	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Run запускает сервер и останавливает его после отмены ctx,
// давая активным запросам завершиться за ShutdownTimeout
func (s *HTTPServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server", zap.Duration("timeout", s.config.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	return <-errCh
}
