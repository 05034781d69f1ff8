package github

import (
	"net/http"

	gh "github.com/google/go-github/v66/github"
)

// Config defines GitHub API client settings
type Config struct {
	Token      string
	BaseURL    string
	HTTPClient *http.Client
	PageSize   int
}

// Client queries the GitHub REST API on behalf of one token
type Client struct {
	api      *gh.Client
	pageSize int
}

// ListRepositoriesOptions filter the authenticated user's repositories
type ListRepositoriesOptions struct {
	Visibility string
	Sort       string
}

// ListIssuesOptions filter a repository's issues
type ListIssuesOptions struct {
	State  string
	Labels []string
}

// NewIssue describes an issue to open
type NewIssue struct {
	Title     string
	Body      string
	Labels    []string
	Assignees []string
}

// ListPullRequestsOptions filter a repository's pull requests
type ListPullRequestsOptions struct {
	State string
	Sort  string
}

// NewPullRequest describes a pull request to open
type NewPullRequest struct {
	Title string
	Body  string
	Head  string
	Base  string
	Draft bool
}

// Contents is either a single file or a directory listing; exactly one is set.
type Contents struct {
	File      *gh.RepositoryContent
	Directory []*gh.RepositoryContent
}

// IsDirectory reports whether the path resolved to a directory
func (c Contents) IsDirectory() bool {
	return c.File == nil
}
