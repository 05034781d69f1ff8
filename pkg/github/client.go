package github

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
)

const defaultPageSize = 10

// NewClient instantiates a GitHub API client
func NewClient(cfg Config) (*Client, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("github: token is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
		httpClient = oauth2.NewClient(context.Background(), src)
	}

	api := gh.NewClient(httpClient)
	if cfg.HTTPClient != nil {
		api = api.WithAuthToken(cfg.Token)
	}

	if cfg.BaseURL != "" {
		base := cfg.BaseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("github: parse base url: %w", err)
		}
		api.BaseURL = u
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	return &Client{api: api, pageSize: pageSize}, nil
}

// ListRepositories returns one page of the authenticated user's repositories
func (c *Client) ListRepositories(ctx context.Context, opts ListRepositoriesOptions) ([]*gh.Repository, error) {
	repos, _, err := c.api.Repositories.ListByAuthenticatedUser(ctx, &gh.RepositoryListByAuthenticatedUserOptions{
		Visibility:  opts.Visibility,
		Sort:        opts.Sort,
		ListOptions: c.firstPage(),
	})
	if err != nil {
		return nil, fmt.Errorf("github: list repositories: %w", err)
	}
	return repos, nil
}

// GetRepository fetches owner/repo
func (c *Client) GetRepository(ctx context.Context, owner, repo string) (*gh.Repository, error) {
	r, _, err := c.api.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return nil, fmt.Errorf("github: get repository %s/%s: %w", owner, repo, err)
	}
	return r, nil
}

// ListIssues returns one page of issues for owner/repo
func (c *Client) ListIssues(ctx context.Context, owner, repo string, opts ListIssuesOptions) ([]*gh.Issue, error) {
	issues, _, err := c.api.Issues.ListByRepo(ctx, owner, repo, &gh.IssueListByRepoOptions{
		State:       opts.State,
		Labels:      opts.Labels,
		ListOptions: c.firstPage(),
	})
	if err != nil {
		return nil, fmt.Errorf("github: list issues %s/%s: %w", owner, repo, err)
	}
	return issues, nil
}

// CreateIssue opens an issue in owner/repo
func (c *Client) CreateIssue(ctx context.Context, owner, repo string, in NewIssue) (*gh.Issue, error) {
	labels := nonNil(in.Labels)
	assignees := nonNil(in.Assignees)

	issue, _, err := c.api.Issues.Create(ctx, owner, repo, &gh.IssueRequest{
		Title:     gh.String(in.Title),
		Body:      gh.String(in.Body),
		Labels:    &labels,
		Assignees: &assignees,
	})
	if err != nil {
		return nil, fmt.Errorf("github: create issue in %s/%s: %w", owner, repo, err)
	}
	return issue, nil
}

// ListPullRequests returns one page of pull requests for owner/repo
func (c *Client) ListPullRequests(ctx context.Context, owner, repo string, opts ListPullRequestsOptions) ([]*gh.PullRequest, error) {
	prs, _, err := c.api.PullRequests.List(ctx, owner, repo, &gh.PullRequestListOptions{
		State:       opts.State,
		Sort:        opts.Sort,
		ListOptions: c.firstPage(),
	})
	if err != nil {
		return nil, fmt.Errorf("github: list pull requests %s/%s: %w", owner, repo, err)
	}
	return prs, nil
}

// CreatePullRequest opens a pull request in owner/repo
func (c *Client) CreatePullRequest(ctx context.Context, owner, repo string, in NewPullRequest) (*gh.PullRequest, error) {
	pr, _, err := c.api.PullRequests.Create(ctx, owner, repo, &gh.NewPullRequest{
		Title: gh.String(in.Title),
		Head:  gh.String(in.Head),
		Base:  gh.String(in.Base),
		Body:  gh.String(in.Body),
		Draft: gh.Bool(in.Draft),
	})
	if err != nil {
		return nil, fmt.Errorf("github: create pull request in %s/%s: %w", owner, repo, err)
	}
	return pr, nil
}

// GetContents resolves path at ref (default branch when empty)
func (c *Client) GetContents(ctx context.Context, owner, repo, path, ref string) (Contents, error) {
	var opts *gh.RepositoryContentGetOptions
	if ref != "" {
		opts = &gh.RepositoryContentGetOptions{Ref: ref}
	}

	file, dir, _, err := c.api.Repositories.GetContents(ctx, owner, repo, path, opts)
	if err != nil {
		return Contents{}, fmt.Errorf("github: get contents %s/%s/%s: %w", owner, repo, path, err)
	}
	if file != nil {
		return Contents{File: file}, nil
	}
	if dir == nil {
		dir = []*gh.RepositoryContent{}
	}
	return Contents{Directory: dir}, nil
}

func (c *Client) firstPage() gh.ListOptions {
	return gh.ListOptions{Page: 1, PerPage: c.pageSize}
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
