package tools

import (
	"context"

	"github.com/honeycarbs/github-mcp/internal/catalog"
	"github.com/honeycarbs/github-mcp/internal/domain"
	"github.com/honeycarbs/github-mcp/pkg/github"
	"github.com/honeycarbs/github-mcp/pkg/logging"
)

type repositoryTools struct {
	client GitHubClient
	logger *logging.Logger
}

// WithRepositoryTools registers list_repositories and get_repository
func WithRepositoryTools(client GitHubClient, logger *logging.Logger) Option {
	return func(reg *registry) error {
		t := repositoryTools{client: client, logger: logger}

		if err := reg.add("list_repositories",
			"List GitHub repositories accessible to the authenticated user",
			catalog.Object(
				catalog.Param{
					Name:    "visibility",
					Type:    catalog.TypeString,
					Enum:    []string{"all", "public", "private"},
					Default: "all",
				},
				catalog.Param{
					Name:    "sort",
					Type:    catalog.TypeString,
					Enum:    []string{"created", "updated", "pushed", "full_name"},
					Default: "updated",
				},
			),
			t.listRepositories,
		); err != nil {
			return err
		}

		return reg.add("get_repository",
			"Get information about a specific repository",
			catalog.Object(ownerParam, repoParam),
			t.getRepository,
		)
	}
}

func (t repositoryTools) listRepositories(ctx context.Context, args catalog.Args) (catalog.Result, error) {
	visibility, err := args.StringOr("visibility", "all")
	if err != nil {
		return catalog.Result{}, err
	}
	sort, err := args.StringOr("sort", "updated")
	if err != nil {
		return catalog.Result{}, err
	}

	t.logger.Debug("list_repositories called", "visibility", visibility, "sort", sort)

	repos, err := t.client.ListRepositories(ctx, github.ListRepositoriesOptions{
		Visibility: visibility,
		Sort:       sort,
	})
	if err != nil {
		return catalog.Result{}, err
	}

	return catalog.JSONResult(mapAll(firstN(repos), domain.NewRepositorySummary))
}

func (t repositoryTools) getRepository(ctx context.Context, args catalog.Args) (catalog.Result, error) {
	owner, repo, err := repoRef(args)
	if err != nil {
		return catalog.Result{}, err
	}

	t.logger.Debug("get_repository called", "owner", owner, "repo", repo)

	r, err := t.client.GetRepository(ctx, owner, repo)
	if err != nil {
		return catalog.Result{}, err
	}

	return catalog.JSONResult(domain.NewRepositoryDetail(r))
}
