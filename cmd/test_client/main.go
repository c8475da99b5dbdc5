package main

import (
	"context"
	"fmt"
	"log"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Manual smoke-test client. Run the server with MCP_TRANSPORT=http first.
func main() {
	ctx := context.Background()

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "pinpoint-mcp-test-client",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: "http://localhost:8080/mcp/stream",
	}, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	log.Printf("Connected to server (session ID: %s)\n", session.ID())

	testListTools(ctx, session)
	testGetJobs(ctx, session)
	testRecruitmentSummary(ctx, session)

	fmt.Println("\nAll tests completed")
}

func testListTools(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: tools/list")

	result, err := session.ListTools(ctx, nil)
	if err != nil {
		log.Printf("tools/list failed: %v", err)
		return
	}

	for _, tool := range result.Tools {
		fmt.Printf("- %s: %s\n", tool.Name, tool.Description)
	}
}

func testGetJobs(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: get-jobs")

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "get-jobs",
		Arguments: map[string]any{
			"status":   "open",
			"per_page": 5,
		},
	})
	if err != nil {
		log.Printf("get-jobs failed: %v", err)
		return
	}

	printResult(result)
	fmt.Println("get-jobs passed")
}

func testRecruitmentSummary(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: recruitment-summary")

	result, err := session.GetPrompt(ctx, &mcp.GetPromptParams{
		Name: "recruitment-summary",
		Arguments: map[string]string{
			"jobTitle": "Software Engineer",
		},
	})
	if err != nil {
		log.Printf("recruitment-summary failed: %v", err)
		return
	}

	for _, msg := range result.Messages {
		if tc, ok := msg.Content.(*mcp.TextContent); ok {
			fmt.Printf("[%s] %s\n", msg.Role, tc.Text)
		}
	}
	fmt.Println("recruitment-summary passed")
}

func printResult(result *mcp.CallToolResult) {
	for _, content := range result.Content {
		if tc, ok := content.(*mcp.TextContent); ok {
			fmt.Println(tc.Text)
		}
	}
}
