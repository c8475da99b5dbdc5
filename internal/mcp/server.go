package mcp

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hirewire/pinpoint-mcp/internal/config"
	"github.com/hirewire/pinpoint-mcp/pkg/logging"
)

// Server wraps an MCP SDK server with either a stdio or an HTTP transport
type Server struct {
	logger *logging.Logger
	config config.Config

	mcpServer *sdkmcp.Server
	srv       *http.Server // http mode only
	started   atomic.Bool
}

// NewServer constructs the MCP server for the configured transport
func NewServer(log *logging.Logger, cfg config.Config) *Server {
	impl := &sdkmcp.Implementation{
		Name:    "pinpoint-mcp",
		Version: "0.1.0",
	}

	mcpServer := sdkmcp.NewServer(impl, nil)

	s := &Server{
		logger:    log,
		config:    cfg,
		mcpServer: mcpServer,
	}

	if cfg.Transport == config.TransportHTTP {
		handler := sdkmcp.NewStreamableHTTPHandler(func(req *http.Request) *sdkmcp.Server {
			return mcpServer
		}, nil)

		mux := http.NewServeMux()
		mux.Handle("/mcp/stream", handler)
		mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})

		s.srv = &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
	}

	return s
}

// MCP exposes the underlying SDK server for tool and prompt registration
func (s *Server) MCP() *sdkmcp.Server {
	return s.mcpServer
}

// Run serves the configured transport and blocks until shutdown. In stdio
// mode the host process owns the lifecycle: Run returns when stdin closes.
func (s *Server) Run() error {
	if !s.started.CompareAndSwap(false, true) {
		return nil
	}

	if s.srv != nil {
		s.logger.Info("MCP HTTP server listening", "addr", s.srv.Addr)

		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	s.logger.Info("MCP server serving on stdio")
	return s.mcpServer.Run(context.Background(), &sdkmcp.StdioTransport{})
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}

	s.logger.Info("shutdown requested for MCP HTTP server")
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Warn("MCP HTTP server shutdown with error", "err", err)
		return err
	}

	s.logger.Info("MCP HTTP server shutdown complete")
	return nil
}
