package tools

import (
	"context"

	"github.com/honeycarbs/github-mcp/internal/catalog"
	"github.com/honeycarbs/github-mcp/internal/domain"
	"github.com/honeycarbs/github-mcp/pkg/github"
	"github.com/honeycarbs/github-mcp/pkg/logging"
)

type issueTools struct {
	client GitHubClient
	logger *logging.Logger
}

// WithIssueTools registers list_issues and create_issue
func WithIssueTools(client GitHubClient, logger *logging.Logger) Option {
	return func(reg *registry) error {
		t := issueTools{client: client, logger: logger}

		if err := reg.add("list_issues",
			"List issues in a repository",
			catalog.Object(
				ownerParam,
				repoParam,
				stateParam,
				catalog.Param{Name: "labels", Type: catalog.TypeStringArray, Description: "Filter by labels"},
			),
			t.listIssues,
		); err != nil {
			return err
		}

		return reg.add("create_issue",
			"Create a new issue in a repository",
			catalog.Object(
				ownerParam,
				repoParam,
				catalog.Param{Name: "title", Type: catalog.TypeString, Description: "Issue title", Required: true},
				catalog.Param{Name: "body", Type: catalog.TypeString, Description: "Issue body/description"},
				catalog.Param{Name: "labels", Type: catalog.TypeStringArray, Description: "Issue labels"},
				catalog.Param{Name: "assignees", Type: catalog.TypeStringArray, Description: "Issue assignees"},
			),
			t.createIssue,
		)
	}
}

func (t issueTools) listIssues(ctx context.Context, args catalog.Args) (catalog.Result, error) {
	owner, repo, err := repoRef(args)
	if err != nil {
		return catalog.Result{}, err
	}
	state, err := args.StringOr("state", "open")
	if err != nil {
		return catalog.Result{}, err
	}
	labels, err := args.Strings("labels")
	if err != nil {
		return catalog.Result{}, err
	}

	t.logger.Debug("list_issues called", "owner", owner, "repo", repo, "state", state, "labels", labels)

	issues, err := t.client.ListIssues(ctx, owner, repo, github.ListIssuesOptions{
		State:  state,
		Labels: labels,
	})
	if err != nil {
		return catalog.Result{}, err
	}

	return catalog.JSONResult(mapAll(firstN(issues), domain.NewIssueSummary))
}

func (t issueTools) createIssue(ctx context.Context, args catalog.Args) (catalog.Result, error) {
	owner, repo, err := repoRef(args)
	if err != nil {
		return catalog.Result{}, err
	}

	in := github.NewIssue{}
	if in.Title, err = args.String("title"); err != nil {
		return catalog.Result{}, err
	}
	if in.Body, err = args.StringOr("body", ""); err != nil {
		return catalog.Result{}, err
	}
	if in.Labels, err = args.Strings("labels"); err != nil {
		return catalog.Result{}, err
	}
	if in.Assignees, err = args.Strings("assignees"); err != nil {
		return catalog.Result{}, err
	}

	t.logger.Info("create_issue request", "owner", owner, "repo", repo, "title", in.Title)

	issue, err := t.client.CreateIssue(ctx, owner, repo, in)
	if err != nil {
		return catalog.Result{}, err
	}

	return catalog.JSONResult(domain.NewIssueDetail(issue))
}
