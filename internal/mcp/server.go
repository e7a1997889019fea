package mcp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/resume-assistant/internal/config"
	"github.com/honeycarbs/resume-assistant/pkg/logging"
)

const (
	serverName    = "resume-assistant"
	serverVersion = "0.1.0"
)

// Server exposes the resume assistant tools over streamable HTTP
type Server struct {
	logger *logging.Logger

	srv     *http.Server
	started atomic.Bool
}

// NewServer wires resources and constructs a new MCP HTTP server
func NewServer(ctx context.Context, log *logging.Logger, cfg config.Config) (*Server, error) {
	res, err := initializeResources(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	return newServerWithResources(log, cfg, res), nil
}

func newServerWithResources(log *logging.Logger, cfg config.Config, res *Resources) *Server {
	mcpServer := newMCPServer(log, res)

	handler := sdkmcp.NewStreamableHTTPHandler(func(req *http.Request) *sdkmcp.Server {
		return mcpServer
	}, nil)

	var stream http.Handler = handler
	if cfg.HTTP.RatePerSecond > 0 {
		stream = rateLimit(newClientLimiter(cfg.HTTP.RatePerSecond, cfg.HTTP.Burst), log, stream)
	}

	mux := http.NewServeMux()
	mux.Handle("/mcp/stream", stream)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	httpSrv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:           accessLog(log.Named("http"), mux),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		logger: log,
		srv:    httpSrv,
	}
}

func newMCPServer(log *logging.Logger, res *Resources) *sdkmcp.Server {
	impl := &sdkmcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}

	mcpServer := sdkmcp.NewServer(impl, nil)
	NewToolRegistry(log).RegisterAll(mcpServer, res)
	return mcpServer
}

// Handler exposes the HTTP routes, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Run listens on the configured address and serves until Shutdown
func (s *Server) Run() error {
	l, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("mcp: listen on %s: %w", s.srv.Addr, err)
	}
	return s.Serve(l)
}

// Serve accepts connections on l. A second call, or a call after Shutdown,
// returns without serving.
func (s *Server) Serve(l net.Listener) error {
	if !s.started.CompareAndSwap(false, true) {
		_ = l.Close()
		return nil
	}

	s.logger.Info("resume assistant listening", "addr", l.Addr().String(), "endpoint", "/mcp/stream")

	if err := s.srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("mcp: serve: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for active requests
func (s *Server) Shutdown(ctx context.Context) error {
	s.started.Store(true)
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Warn("HTTP server shutdown with error", "err", err)
		return fmt.Errorf("mcp: shutdown: %w", err)
	}
	s.logger.Info("HTTP server stopped")
	return nil
}
