package mcp

import (
	"github.com/honeycarbs/github-mcp/internal/config"
	"github.com/honeycarbs/github-mcp/internal/heartbeat"
	"github.com/honeycarbs/github-mcp/pkg/github"
	"github.com/honeycarbs/github-mcp/pkg/logging"
)

// provideGitHubConfig extracts GitHub config from main config
func provideGitHubConfig(cfg config.Config) github.Config {
	return github.Config{
		Token:   cfg.GitHub.Token,
		BaseURL: cfg.GitHub.BaseURL,
	}
}

// provideHeartbeat builds the SSE keep-alive loop
func provideHeartbeat(cfg config.Config, logger *logging.Logger) *heartbeat.Service {
	return heartbeat.NewService(cfg.HeartbeatInterval, logger)
}
