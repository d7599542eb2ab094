package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// Run serves until SIGINT/SIGTERM, then drains in-flight requests for
// up to 30 seconds before closing server resources.
func (s *Server) Run() {
	done := make(chan bool, 1)

	go s.gracefulShutdown(done)

	s.logger.Info("Server listening", zap.String("addr", s.Addr))

	err := s.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		s.logger.Fatal("HTTP server error", zap.Error(err))
	}

	// Wait for the graceful shutdown to complete
	<-done
	s.logger.Info("Graceful shutdown complete")
}

func (s *Server) gracefulShutdown(done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Listen for the interrupt signal.
	<-ctx.Done()

	s.logger.Info("Shutting down gracefully, press Ctrl+C again to force")
	stop() // Allow Ctrl+C to force shutdown

	// The context is used to inform the server it has 30 seconds to finish
	// the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", zap.Error(err))
	}

	// Close server resources
	if err := s.Close(); err != nil {
		s.logger.Error("Error closing server resources", zap.Error(err))
	}

	s.logger.Info("Server exiting")

	// Notify the main goroutine that the shutdown is complete
	done <- true
}
