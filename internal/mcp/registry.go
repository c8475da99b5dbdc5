package mcp

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hirewire/pinpoint-mcp/internal/mcp/prompts"
	"github.com/hirewire/pinpoint-mcp/internal/mcp/tools"
	"github.com/hirewire/pinpoint-mcp/pkg/cvparse"
	"github.com/hirewire/pinpoint-mcp/pkg/logging"
	"github.com/hirewire/pinpoint-mcp/pkg/pinpoint"
)

type ToolRegistry struct {
	logger *logging.Logger
}

// Resources holds everything the tools need to serve requests.
type Resources struct {
	API       *pinpoint.Client
	Extractor *cvparse.Extractor
}

func NewToolRegistry(logger *logging.Logger) *ToolRegistry {
	return &ToolRegistry{logger: logger}
}

// RegisterAll installs every tool and prompt into the SDK server.
func (r *ToolRegistry) RegisterAll(server *sdkmcp.Server, res Resources) {
	tools.Register(server, res.API, res.Extractor, r.logger, tools.Defaults()...)
	prompts.Register(server, prompts.Defaults()...)
}
