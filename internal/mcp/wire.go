//go:build wireinject
// +build wireinject

package mcp

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/honeycarbs/github-mcp/internal/config"
	"github.com/honeycarbs/github-mcp/internal/metrics"
	"github.com/honeycarbs/github-mcp/internal/mcp/tools"
	"github.com/honeycarbs/github-mcp/pkg/github"
	"github.com/honeycarbs/github-mcp/pkg/logging"
)

// InitializeServer creates a Server with all dependencies wired up
func InitializeServer(cfg config.Config, logger *logging.Logger) (*Server, error) {
	wire.Build(
		// Infrastructure - GitHub
		provideGitHubConfig,
		github.NewClient,
		wire.Bind(new(tools.GitHubClient), new(*github.Client)),

		// Observability
		prometheus.NewRegistry,
		metrics.New,
		wire.Bind(new(CallObserver), new(*metrics.Metrics)),
		provideHeartbeat,

		// Tools
		NewToolset,
		NewFacade,

		NewServer,
	)

	return &Server{}, nil
}
