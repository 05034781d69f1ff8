package tools

import (
	"github.com/honeycarbs/github-mcp/internal/catalog"
	"github.com/honeycarbs/github-mcp/pkg/logging"
)

// RegisterAll installs every GitHub tool family: repository, issue,
// pull request and content, in that order.
func RegisterAll(cat *catalog.Catalog, disp *catalog.Dispatch, client GitHubClient, logger *logging.Logger) error {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logger.Named("tools")

	return Register(cat, disp,
		WithRepositoryTools(client, logger),
		WithIssueTools(client, logger),
		WithPullRequestTools(client, logger),
		WithContentTools(client, logger),
	)
}
