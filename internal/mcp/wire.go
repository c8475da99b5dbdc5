//go:build wireinject
// +build wireinject

package mcp

import (
	"github.com/google/wire"

	"github.com/hirewire/pinpoint-mcp/internal/config"
	"github.com/hirewire/pinpoint-mcp/pkg/logging"
	"github.com/hirewire/pinpoint-mcp/pkg/pinpoint"
)

// InitializeResources creates Resources with all dependencies wired up
func InitializeResources(cfg config.Config, logger *logging.Logger) (Resources, error) {
	wire.Build(
		providePinpointConfig,
		pinpoint.NewClient,
		provideExtractor,
		wire.Struct(new(Resources), "*"),
	)

	return Resources{}, nil
}
