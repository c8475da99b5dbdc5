package config

import (
	"fmt"
	"os"
	"strings"
)

// Transport values accepted in MCP_TRANSPORT.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config contains runtime settings for the MCP server
type Config struct {
	LogLevel  string
	Transport string // stdio (default) or http
	Host      string // default 0.0.0.0, http mode only
	Port      string // default PORT env or 8080, http mode only
	Pinpoint  struct {
		APIKey    string
		Subdomain string
	} // Pinpoint ATS credentials
}

// Load populates config from environment variables
func Load() (Config, error) {
	cfg := Config{
		LogLevel:  "info",
		Transport: TransportStdio,
		Host:      "0.0.0.0",
		Port:      "8080",
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv("MCP_TRANSPORT"); v != "" {
		cfg.Transport = strings.ToLower(v)
	}

	if v := os.Getenv("MCP_HOST"); v != "" {
		cfg.Host = v
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	cfg.Pinpoint.APIKey = os.Getenv("PINPOINT_API_KEY")
	cfg.Pinpoint.Subdomain = os.Getenv("PINPOINT_SUBDOMAIN")

	if cfg.Transport != TransportStdio && cfg.Transport != TransportHTTP {
		return cfg, fmt.Errorf("invalid MCP_TRANSPORT %q: must be %q or %q", cfg.Transport, TransportStdio, TransportHTTP)
	}

	var missingVars []string

	if cfg.Pinpoint.APIKey == "" {
		missingVars = append(missingVars, "PINPOINT_API_KEY")
	}

	if cfg.Pinpoint.Subdomain == "" {
		missingVars = append(missingVars, "PINPOINT_SUBDOMAIN")
	}

	if len(missingVars) > 0 {
		return cfg, fmt.Errorf("missing required environment variables: %s", strings.Join(missingVars, ", "))
	}

	return cfg, nil
}
