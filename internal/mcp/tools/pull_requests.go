package tools

import (
	"context"

	"github.com/honeycarbs/github-mcp/internal/catalog"
	"github.com/honeycarbs/github-mcp/internal/domain"
	"github.com/honeycarbs/github-mcp/pkg/github"
	"github.com/honeycarbs/github-mcp/pkg/logging"
)

type pullRequestTools struct {
	client GitHubClient
	logger *logging.Logger
}

// WithPullRequestTools registers list_pull_requests and create_pull_request
func WithPullRequestTools(client GitHubClient, logger *logging.Logger) Option {
	return func(reg *registry) error {
		t := pullRequestTools{client: client, logger: logger}

		if err := reg.add("list_pull_requests",
			"List pull requests in a repository",
			catalog.Object(
				ownerParam,
				repoParam,
				stateParam,
				catalog.Param{
					Name:    "sort",
					Type:    catalog.TypeString,
					Enum:    []string{"created", "updated", "popularity", "long-running"},
					Default: "created",
				},
			),
			t.listPullRequests,
		); err != nil {
			return err
		}

		return reg.add("create_pull_request",
			"Create a new pull request",
			catalog.Object(
				ownerParam,
				repoParam,
				catalog.Param{Name: "title", Type: catalog.TypeString, Description: "Pull request title", Required: true},
				catalog.Param{Name: "body", Type: catalog.TypeString, Description: "Pull request description"},
				catalog.Param{Name: "head", Type: catalog.TypeString, Description: "Source branch", Required: true},
				catalog.Param{Name: "base", Type: catalog.TypeString, Description: "Target branch", Default: "main"},
				catalog.Param{Name: "draft", Type: catalog.TypeBoolean, Description: "Create as draft", Default: false},
			),
			t.createPullRequest,
		)
	}
}

func (t pullRequestTools) listPullRequests(ctx context.Context, args catalog.Args) (catalog.Result, error) {
	owner, repo, err := repoRef(args)
	if err != nil {
		return catalog.Result{}, err
	}
	state, err := args.StringOr("state", "open")
	if err != nil {
		return catalog.Result{}, err
	}
	sort, err := args.StringOr("sort", "created")
	if err != nil {
		return catalog.Result{}, err
	}

	t.logger.Debug("list_pull_requests called", "owner", owner, "repo", repo, "state", state, "sort", sort)

	prs, err := t.client.ListPullRequests(ctx, owner, repo, github.ListPullRequestsOptions{
		State: state,
		Sort:  sort,
	})
	if err != nil {
		return catalog.Result{}, err
	}

	return catalog.JSONResult(mapAll(firstN(prs), domain.NewPullRequestSummary))
}

func (t pullRequestTools) createPullRequest(ctx context.Context, args catalog.Args) (catalog.Result, error) {
	owner, repo, err := repoRef(args)
	if err != nil {
		return catalog.Result{}, err
	}

	in := github.NewPullRequest{}
	if in.Title, err = args.String("title"); err != nil {
		return catalog.Result{}, err
	}
	if in.Head, err = args.String("head"); err != nil {
		return catalog.Result{}, err
	}
	if in.Body, err = args.StringOr("body", ""); err != nil {
		return catalog.Result{}, err
	}
	if in.Base, err = args.StringOr("base", "main"); err != nil {
		return catalog.Result{}, err
	}
	if in.Draft, err = args.BoolOr("draft", false); err != nil {
		return catalog.Result{}, err
	}

	t.logger.Info("create_pull_request request",
		"owner", owner,
		"repo", repo,
		"head", in.Head,
		"base", in.Base,
		"draft", in.Draft,
	)

	pr, err := t.client.CreatePullRequest(ctx, owner, repo, in)
	if err != nil {
		return catalog.Result{}, err
	}

	return catalog.JSONResult(domain.NewPullRequestDetail(pr))
}
