package prompts

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Option configures which prompts are registered
type Option func(*registry)

type registry struct {
	server *sdkmcp.Server
}

// Register applies the provided prompt options
func Register(server *sdkmcp.Server, opts ...Option) {
	reg := &registry{server: server}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(reg)
	}
}

// Defaults lists every prompt this server exposes.
func Defaults() []Option {
	return []Option{
		WithRecruitmentSummary(),
		WithApplicationScreening(),
		WithJobPerformanceAnalysis(),
		WithCandidatePipelineReport(),
		WithQuickApplicationSubmit(),
		WithRecruitmentInsights(),
	}
}

// userMessage wraps a single instruction into a one-turn conversation.
func userMessage(description, text string) *sdkmcp.GetPromptResult {
	return &sdkmcp.GetPromptResult{
		Description: description,
		Messages: []*sdkmcp.PromptMessage{
			{
				Role:    "user",
				Content: &sdkmcp.TextContent{Text: text},
			},
		},
	}
}
