package tools

import (
	"context"
	"encoding/json"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hirewire/pinpoint-mcp/pkg/logging"
	"github.com/hirewire/pinpoint-mcp/pkg/pinpoint"
)

// JobAPI is the subset of the Pinpoint client the tools call. Kept as an
// interface so handlers are testable without a live upstream.
type JobAPI interface {
	ListJobs(ctx context.Context, filters pinpoint.JobFilters) (json.RawMessage, error)
	GetJob(ctx context.Context, id string) (json.RawMessage, error)
	CreateApplication(ctx context.Context, app pinpoint.NewApplication) (json.RawMessage, error)
	ListApplications(ctx context.Context, filters pinpoint.ApplicationFilters) (json.RawMessage, error)
	GetApplication(ctx context.Context, id string) (json.RawMessage, error)
}

// CVExtractor recovers plain text from a PDF at a URL.
type CVExtractor interface {
	FromURL(ctx context.Context, rawURL string) (string, error)
}

// Option configures which tools are registered
type Option func(*registry)

type registry struct {
	server *sdkmcp.Server
	api    JobAPI
	cv     CVExtractor
	logger *logging.Logger
}

// Register applies the provided tool options
func Register(server *sdkmcp.Server, api JobAPI, cv CVExtractor, logger *logging.Logger, opts ...Option) {
	reg := &registry{server: server, api: api, cv: cv, logger: logger}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(reg)
	}
}

// Defaults lists every tool this server exposes.
func Defaults() []Option {
	return []Option{
		WithGetJobs(),
		WithGetJob(),
		WithCreateApplication(),
		WithGetApplications(),
		WithGetApplicationByID(),
		WithParseCVFromURL(),
	}
}
