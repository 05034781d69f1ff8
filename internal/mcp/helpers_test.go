package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	gh "github.com/google/go-github/v66/github"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/github-mcp/pkg/github"
	"github.com/honeycarbs/github-mcp/pkg/logging"
)

var errNotStubbed = errors.New("not stubbed")

// stubClient answers get_repository and fails every other remote call.
type stubClient struct {
	repo *gh.Repository
	err  error
}

func (s *stubClient) ListRepositories(context.Context, github.ListRepositoriesOptions) ([]*gh.Repository, error) {
	return nil, errNotStubbed
}

func (s *stubClient) GetRepository(context.Context, string, string) (*gh.Repository, error) {
	return s.repo, s.err
}

func (s *stubClient) ListIssues(context.Context, string, string, github.ListIssuesOptions) ([]*gh.Issue, error) {
	return nil, errNotStubbed
}

func (s *stubClient) CreateIssue(context.Context, string, string, github.NewIssue) (*gh.Issue, error) {
	return nil, errNotStubbed
}

func (s *stubClient) ListPullRequests(context.Context, string, string, github.ListPullRequestsOptions) ([]*gh.PullRequest, error) {
	return nil, errNotStubbed
}

func (s *stubClient) CreatePullRequest(context.Context, string, string, github.NewPullRequest) (*gh.PullRequest, error) {
	return nil, errNotStubbed
}

func (s *stubClient) GetContents(context.Context, string, string, string, string) (github.Contents, error) {
	return github.Contents{}, errNotStubbed
}

type observation struct {
	tool    string
	outcome string
}

type recorder struct {
	mu    sync.Mutex
	calls []observation
}

func (r *recorder) ObserveCall(tool, outcome string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, observation{tool: tool, outcome: outcome})
}

func (r *recorder) last() observation {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return observation{}
	}
	return r.calls[len(r.calls)-1]
}

func helloRepo(t *testing.T) *gh.Repository {
	t.Helper()
	var r gh.Repository
	require.NoError(t, json.Unmarshal([]byte(`{
		"name": "hello",
		"full_name": "octocat/hello",
		"html_url": "https://github.com/octocat/hello",
		"stargazers_count": 3,
		"default_branch": "main"
	}`), &r))
	return &r
}

func newTestFacade(t *testing.T, client *stubClient) (*Facade, *recorder) {
	t.Helper()
	ts, err := NewToolset(client, logging.NewNop())
	require.NoError(t, err)

	rec := &recorder{}
	return NewFacade(ts, logging.NewNop(), rec), rec
}
