package config

import (
	"strings"
	"testing"
)

func TestLoadMissingCredentials(t *testing.T) {
	t.Setenv("PINPOINT_API_KEY", "")
	t.Setenv("PINPOINT_SUBDOMAIN", "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error when credentials are unset")
	}

	for _, name := range []string{"PINPOINT_API_KEY", "PINPOINT_SUBDOMAIN"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not name %s", err, name)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PINPOINT_API_KEY", "key")
	t.Setenv("PINPOINT_SUBDOMAIN", "acme")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("MCP_TRANSPORT", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Transport != TransportStdio {
		t.Errorf("Transport = %q, want stdio", cfg.Transport)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
}

func TestLoadRejectsUnknownTransport(t *testing.T) {
	t.Setenv("PINPOINT_API_KEY", "key")
	t.Setenv("PINPOINT_SUBDOMAIN", "acme")
	t.Setenv("MCP_TRANSPORT", "websocket")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown transport")
	}
}
