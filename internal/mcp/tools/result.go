package tools

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// textResult returns a text-only ToolResult. Failures use the same envelope:
// the calling assistant always receives well-formed content, never a
// protocol-level fault.
func textResult(msg string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: msg},
		},
	}
}

// jsonResult pretty-prints an upstream response body into text content.
func jsonResult(raw json.RawMessage) *sdkmcp.CallToolResult {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return textResult(string(raw))
	}
	return textResult(buf.String())
}

// validateEnum checks val against the allowed set; empty values pass so that
// optional filters stay optional.
func validateEnum(field, val string, allowed []string) error {
	if val == "" {
		return nil
	}
	for _, a := range allowed {
		if val == a {
			return nil
		}
	}
	return fmt.Errorf("invalid %s %q: must be one of %s", field, val, strings.Join(allowed, ", "))
}

// validateEnumList checks a comma-joined list against the allowed set.
func validateEnumList(field, val string, allowed []string) error {
	if val == "" {
		return nil
	}
	for _, part := range strings.Split(val, ",") {
		if err := validateEnum(field, strings.TrimSpace(part), allowed); err != nil {
			return err
		}
	}
	return nil
}

// normalizePagination applies the page/per_page defaults and rejects
// non-positive values.
func normalizePagination(page, perPage int) (int, int, error) {
	if page < 0 {
		return 0, 0, fmt.Errorf("page must be a positive integer")
	}
	if perPage < 0 {
		return 0, 0, fmt.Errorf("per_page must be a positive integer")
	}
	if page == 0 {
		page = defaultPage
	}
	if perPage == 0 {
		perPage = defaultPerPage
	}
	return page, perPage, nil
}
