package mcp

import (
	"github.com/honeycarbs/github-mcp/internal/catalog"
)

const (
	ServerName    = "github-mcp"
	ServerVersion = "0.1.0"
)

// ToolCall is the body of POST /tool
type ToolCall struct {
	Name       string         `json:"name"`
	Parameters map[string]any `json:"parameters"` // missing means no parameters
}

// DiscoveryResult advertises the server and every tool it dispatches
type DiscoveryResult struct {
	Name    string               `json:"name"`
	Version string               `json:"version"`
	Tools   []catalog.Descriptor `json:"tools"`
}

// errorResponse is written for every failed request
type errorResponse struct {
	Detail string `json:"detail"`
}
