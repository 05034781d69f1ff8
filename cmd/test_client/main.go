package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	endpoint := flag.String("endpoint", "http://localhost:8000/mcp/stream", "MCP streamable HTTP endpoint")
	owner := flag.String("owner", "octocat", "repository owner used by read-only tests")
	repo := flag.String("repo", "Hello-World", "repository name used by read-only tests")
	writes := flag.Bool("writes", false, "also exercise create_issue and create_pull_request")
	flag.Parse()

	ctx := context.Background()

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "github-mcp-test-client",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: *endpoint,
	}, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	log.Printf("Connected to server (session ID: %s)\n", session.ID())

	testListTools(ctx, session)

	target := map[string]any{"owner": *owner, "repo": *repo}
	runTool(ctx, session, "list_repositories", map[string]any{"sort": "pushed"})
	runTool(ctx, session, "get_repository", target)
	runTool(ctx, session, "list_issues", with(target, "state", "all"))
	runTool(ctx, session, "list_pull_requests", with(target, "state", "closed"))
	runTool(ctx, session, "list_directory", target)
	runTool(ctx, session, "get_file_content", with(target, "path", "README"))

	// Directory paths are rejected by get_file_content
	runTool(ctx, session, "get_file_content", with(target, "path", ""))

	if *writes {
		runTool(ctx, session, "create_issue", with(target, "title", "test issue from github-mcp"))
		runTool(ctx, session, "create_pull_request", with(with(target, "title", "test pull request"), "head", "test-branch"))
	}

	fmt.Println("\nAll tests completed")
}

func testListTools(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: list tools")

	res, err := session.ListTools(ctx, &mcp.ListToolsParams{})
	if err != nil {
		log.Printf("list tools failed: %v", err)
		return
	}
	for _, tool := range res.Tools {
		fmt.Printf("  %s: %s\n", tool.Name, tool.Description)
	}
}

func runTool(ctx context.Context, session *mcp.ClientSession, name string, args map[string]any) {
	fmt.Printf("\nTEST: %s\n", name)

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		log.Printf("%s failed: %v", name, err)
		return
	}

	printResult(result)
	if result.IsError {
		fmt.Printf("%s returned a tool error\n", name)
		return
	}
	fmt.Printf("%s passed\n", name)
}

func with(args map[string]any, key string, value any) map[string]any {
	out := make(map[string]any, len(args)+1)
	for k, v := range args {
		out[k] = v
	}
	out[key] = value
	return out
}

func printResult(res *mcp.CallToolResult) {
	for _, c := range res.Content {
		if txt, ok := c.(*mcp.TextContent); ok {
			fmt.Println(txt.Text)
		}
	}
}
