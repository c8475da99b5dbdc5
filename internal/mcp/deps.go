package mcp

import (
	"github.com/hirewire/pinpoint-mcp/internal/config"
	"github.com/hirewire/pinpoint-mcp/pkg/cvparse"
	"github.com/hirewire/pinpoint-mcp/pkg/logging"
	"github.com/hirewire/pinpoint-mcp/pkg/pinpoint"
)

// providePinpointConfig extracts Pinpoint client config from main config
func providePinpointConfig(cfg config.Config, logger *logging.Logger) pinpoint.Config {
	return pinpoint.Config{
		APIKey:    cfg.Pinpoint.APIKey,
		Subdomain: cfg.Pinpoint.Subdomain,
		Logger:    logger,
	}
}

// provideExtractor creates the CV extractor with the default HTTP client
func provideExtractor(logger *logging.Logger) *cvparse.Extractor {
	return cvparse.New(nil, logger)
}
