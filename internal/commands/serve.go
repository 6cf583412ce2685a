package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	stdlog "log"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"

	"github.com/0xDVC/hellocpu/internal/config"
)

// BindError reports that the listen address could not be bound.
type BindError struct {
	Addr string
	Err  error
}

func (e *BindError) Error() string {
	if errors.Is(e.Err, unix.EADDRINUSE) {
		return fmt.Sprintf("cannot listen on %s: address already in use", e.Addr)
	}
	return fmt.Sprintf("cannot listen on %s: %v", e.Addr, e.Err)
}

func (e *BindError) Unwrap() error { return e.Err }

// Listen binds addr over TCP. Failures are returned as *BindError.
func Listen(addr string) (net.Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, &BindError{Addr: addr, Err: err}
	}
	return ln, nil
}

// Serve builds the handler for cfg, binds, and serves until ctx is done.
// Handler construction (including the hostname lookup) happens before the
// bind, so a broken config never holds the port.
func Serve(ctx context.Context, cfg config.Config, logger zerolog.Logger, echo io.Writer) error {
	h, err := Handler(cfg, logger, echo)
	if err != nil {
		return err
	}
	ln, err := Listen(cfg.Addr())
	if err != nil {
		return err
	}
	logger.Info().
		Str("addr", ln.Addr().String()).
		Str("variant", cfg.Variant).
		Msg("listening")
	return Run(ctx, ln, h, cfg.ShutdownGrace, logger)
}

// Run serves h on ln until ctx is done, then shuts down, giving in-flight
// requests up to grace to finish before their connections are closed. A
// shutdown triggered by ctx is not an error.
func Run(ctx context.Context, ln net.Listener, h http.Handler, grace time.Duration, logger zerolog.Logger) error {
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          stdlog.New(logger.With().Str("component", "http").Logger(), "", 0),
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(ln)
	}()
	notify(logger, sdReady)

	select {
	case err := <-errc:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	notify(logger, sdStopping)
	logger.Info().Dur("grace", grace).Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		logger.Warn().Err(err).Msg("in-flight requests did not finish, closing connections")
		srv.Close()
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	logger.Info().Msg("stopped")
	return nil
}
