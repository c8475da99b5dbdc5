package main

import (
	"log"
	"net"
	"os"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hirewire/pinpoint-mcp/internal/config"
	"github.com/hirewire/pinpoint-mcp/internal/mcp"
	"github.com/hirewire/pinpoint-mcp/pkg/logging"
	"github.com/hirewire/pinpoint-mcp/pkg/shutdown"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	res, err := mcp.InitializeResources(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize resources", "err", err)
		os.Exit(1)
	}

	srv := mcp.NewServer(logger, cfg)
	mcp.NewToolRegistry(logger).RegisterAll(srv.MCP(), res)

	if cfg.Transport == config.TransportHTTP {
		go shutdown.Graceful(
			[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
			srv,
			10*time.Second,
			logger,
		)

		logger.Info("MCP server initialized and starting", "addr", net.JoinHostPort(cfg.Host, cfg.Port))
	} else {
		logger.Info("MCP server initialized and starting", "transport", "stdio", "subdomain", cfg.Pinpoint.Subdomain)
	}

	if err := srv.Run(); err != nil {
		logger.Error("MCP server exited with error", "err", err)
	} else {
		logger.Info("MCP server stopped")
	}
}
