package bridge

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/taglme/langswitch/internal/inject"
)

// Defaults for Config. The bridge only listens on loopback.
const (
	DefaultHost = "127.0.0.1"
	DefaultPort = 8181
)

const shutdownTimeout = 5 * time.Second

// Config holds the listen address. Port 0 picks a free port.
type Config struct {
	Host string
	Port int
	// Shortcuts maps a layout name to its comma separated key list
	Shortcuts map[string]string
}

// DefaultConfig returns the loopback address on port 8181
func DefaultConfig() Config {
	return Config{Host: DefaultHost, Port: DefaultPort}
}

// Addr returns host:port
func (c Config) Addr() string {
	host := c.Host
	if host == "" {
		host = DefaultHost
	}
	return net.JoinHostPort(host, strconv.Itoa(c.Port))
}

// Logger is the subset of the log manager the bridge uses
type Logger interface {
	LogInfo(message string, keyValuePairs ...string)
	LogError(message string, err error, keyValuePairs ...string)
}

// Notifier surfaces press results on the desktop
type Notifier interface {
	NotifySuccess(message string)
	NotifyError(message string)
}

type nopNotifier struct{}

func (nopNotifier) NotifySuccess(string) {}
func (nopNotifier) NotifyError(string)   {}

// Server is the shortcut bridge HTTP server
type Server struct {
	config   Config
	injector inject.Injector
	logger   Logger
	notifier Notifier
	handler  http.Handler
}

// NewServer creates a bridge server. notifier may be nil.
func NewServer(cfg Config, injector inject.Injector, logger Logger, notifier Notifier) *Server {
	if notifier == nil {
		notifier = nopNotifier{}
	}

	s := &Server{
		config:   cfg,
		injector: injector,
		logger:   logger,
		notifier: notifier,
	}
	s.handler = s.routes()
	return s
}

// Handler returns the routed handler with CORS headers applied
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /press_shortcut", s.handlePressShortcut)
	mux.HandleFunc("GET /switch_layout", s.handleSwitchLayout)
	mux.HandleFunc("GET /status", s.handleStatus)

	return withCORS(mux)
}

// Listen binds the configured address
func (s *Server) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", s.config.Addr())
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", s.config.Addr(), err)
	}
	return ln, nil
}

// Serve handles requests on ln until ctx is cancelled, then shuts down gracefully
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	s.logger.LogInfo("Bridge listening", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.LogInfo("Shutting down bridge")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
