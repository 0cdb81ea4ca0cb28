package kit

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

type ServerOptions struct {
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

// RunHTTPServer serves h on addr until SIGINT/SIGTERM, then drains in-flight
// requests for at most opts.ShutdownTimeout.
func RunHTTPServer(addr string, h http.Handler, log *zap.Logger, opts ServerOptions) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server starting", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), opts.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
