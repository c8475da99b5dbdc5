package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// ParseCVParams defines the arguments for the parse-cv-from-url tool
type ParseCVParams struct {
	URL string `json:"url" jsonschema:"Absolute http(s) URL of the candidate's CV in PDF format"`
}

// WithParseCVFromURL registers the parse-cv-from-url tool
func WithParseCVFromURL() Option {
	return func(reg *registry) {
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "parse-cv-from-url",
			Description: "Download a candidate CV (PDF) from a URL and extract its plain text",
		}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params *ParseCVParams) (*sdkmcp.CallToolResult, any, error) {
			_ = req
			return reg.parseCV(ctx, params)
		})
	}
}

func (reg *registry) parseCV(ctx context.Context, params *ParseCVParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil || params.URL == "" {
		return textResult("url is required"), nil, nil
	}

	text, err := reg.cv.FromURL(ctx, params.URL)
	if err != nil {
		reg.logger.Error("parse-cv-from-url failed", "url", params.URL, "err", err)
		return textResult(fmt.Sprintf("Failed to parse CV: %v", err)), nil, nil
	}

	return textResult(text), nil, nil
}
