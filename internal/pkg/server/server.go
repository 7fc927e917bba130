package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/minh-swinburne/ridelink/internal/pkg/logger"
)

// GracefulServer wraps an Echo server with graceful shutdown handling
type GracefulServer struct {
	echo   *echo.Echo
	logger *logger.AppLogger
	port   int
}

// NewGracefulServer creates a new server with graceful shutdown
func NewGracefulServer(e *echo.Echo, appLogger *logger.AppLogger, port int) *GracefulServer {
	return &GracefulServer{
		echo:   e,
		logger: appLogger,
		port:   port,
	}
}

// Start starts the server and blocks until a shutdown signal arrives.
func (s *GracefulServer) Start() error {
	go func() {
		addr := fmt.Sprintf(":%d", s.port)
		s.logger.WithFields(logrus.Fields{"address": addr}).Info("Starting HTTP server")

		if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
			s.logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	// SIGTERM is what Kubernetes and Docker send; Interrupt covers Ctrl+C
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	sig := <-quit
	s.logger.WithFields(logrus.Fields{"signal": sig.String()}).Info("Received shutdown signal")

	return s.Shutdown()
}

// Shutdown gracefully shuts down the server
func (s *GracefulServer) Shutdown() error {
	s.logger.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		s.logger.WithError(err).Error("Server forced to shutdown")
		return err
	}

	s.logger.Info("Server shutdown completed")
	return nil
}
