package tools

import (
	"context"

	gh "github.com/google/go-github/v66/github"

	"github.com/honeycarbs/github-mcp/pkg/github"
)

// GitHubClient is the subset of the GitHub API the tools call
type GitHubClient interface {
	ListRepositories(ctx context.Context, opts github.ListRepositoriesOptions) ([]*gh.Repository, error)
	GetRepository(ctx context.Context, owner, repo string) (*gh.Repository, error)
	ListIssues(ctx context.Context, owner, repo string, opts github.ListIssuesOptions) ([]*gh.Issue, error)
	CreateIssue(ctx context.Context, owner, repo string, in github.NewIssue) (*gh.Issue, error)
	ListPullRequests(ctx context.Context, owner, repo string, opts github.ListPullRequestsOptions) ([]*gh.PullRequest, error)
	CreatePullRequest(ctx context.Context, owner, repo string, in github.NewPullRequest) (*gh.PullRequest, error)
	GetContents(ctx context.Context, owner, repo, path, ref string) (github.Contents, error)
}

var _ GitHubClient = (*github.Client)(nil)
