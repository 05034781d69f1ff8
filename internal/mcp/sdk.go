package mcp

import (
	"context"
	"encoding/json"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/github-mcp/internal/catalog"
)

// newSDKServer exposes every advertised tool over the MCP protocol, routing
// calls through the façade.
func newSDKServer(f *Facade) *sdkmcp.Server {
	impl := &sdkmcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}

	server := sdkmcp.NewServer(impl, &sdkmcp.ServerOptions{HasTools: true})
	for _, d := range f.Tools() {
		server.AddTool(&sdkmcp.Tool{
			Name:        d.Name,
			Description: d.Description,
			InputSchema: d.Schema.JSONSchema(),
		}, f.sdkHandler(d.Name))
	}
	return server
}

func (f *Facade) sdkHandler(name string) sdkmcp.ToolHandler {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest) (*sdkmcp.CallToolResult, error) {
		var params map[string]any
		if raw := req.Params.Arguments; len(raw) > 0 {
			if err := json.Unmarshal(raw, &params); err != nil {
				return errorResult(catalog.ClientInputf("arguments must be a JSON object: %v", err)), nil
			}
		}

		res, err := f.Handle(ctx, ToolCall{Name: name, Parameters: params})
		if err != nil {
			return errorResult(err), nil
		}
		return sdkResult(res), nil
	}
}

func sdkResult(res catalog.Result) *sdkmcp.CallToolResult {
	content := make([]sdkmcp.Content, 0, len(res.Content))
	for _, block := range res.Content {
		content = append(content, &sdkmcp.TextContent{Text: block.Text})
	}
	return &sdkmcp.CallToolResult{Content: content}
}

// errorResult reports a tool failure inside the result so the model sees it
func errorResult(err error) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: err.Error()},
		},
		IsError: true,
	}
}
