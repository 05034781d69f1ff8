package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	gh "github.com/google/go-github/v66/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/github-mcp/internal/catalog"
	"github.com/honeycarbs/github-mcp/pkg/github"
	"github.com/honeycarbs/github-mcp/pkg/logging"
)

type fakeClient struct {
	repos    []*gh.Repository
	repo     *gh.Repository
	issues   []*gh.Issue
	issue    *gh.Issue
	prs      []*gh.PullRequest
	pr       *gh.PullRequest
	contents github.Contents
	err      error

	gotRepoOpts  github.ListRepositoriesOptions
	gotIssueOpts github.ListIssuesOptions
	gotNewIssue  github.NewIssue
	gotPROpts    github.ListPullRequestsOptions
	gotNewPR     github.NewPullRequest
	gotPath      string
	gotRef       string
}

func (f *fakeClient) ListRepositories(_ context.Context, opts github.ListRepositoriesOptions) ([]*gh.Repository, error) {
	f.gotRepoOpts = opts
	return f.repos, f.err
}

func (f *fakeClient) GetRepository(_ context.Context, _, _ string) (*gh.Repository, error) {
	return f.repo, f.err
}

func (f *fakeClient) ListIssues(_ context.Context, _, _ string, opts github.ListIssuesOptions) ([]*gh.Issue, error) {
	f.gotIssueOpts = opts
	return f.issues, f.err
}

func (f *fakeClient) CreateIssue(_ context.Context, _, _ string, in github.NewIssue) (*gh.Issue, error) {
	f.gotNewIssue = in
	return f.issue, f.err
}

func (f *fakeClient) ListPullRequests(_ context.Context, _, _ string, opts github.ListPullRequestsOptions) ([]*gh.PullRequest, error) {
	f.gotPROpts = opts
	return f.prs, f.err
}

func (f *fakeClient) CreatePullRequest(_ context.Context, _, _ string, in github.NewPullRequest) (*gh.PullRequest, error) {
	f.gotNewPR = in
	return f.pr, f.err
}

func (f *fakeClient) GetContents(_ context.Context, _, _, path, ref string) (github.Contents, error) {
	f.gotPath = path
	f.gotRef = ref
	return f.contents, f.err
}

func fixture[T any](t *testing.T, raw string) *T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return &v
}

func setup(t *testing.T, client GitHubClient) (*catalog.Catalog, *catalog.Dispatch) {
	t.Helper()
	cat := catalog.New()
	disp := catalog.NewDispatch()
	require.NoError(t, RegisterAll(cat, disp, client, logging.NewNop()))
	cat.Freeze()
	disp.Freeze()
	return cat, disp
}

func call(t *testing.T, disp *catalog.Dispatch, name string, args catalog.Args) (catalog.Result, error) {
	t.Helper()
	h, ok := disp.Lookup(name)
	require.True(t, ok, "tool %s not bound", name)
	return h(context.Background(), args)
}

func decodeText(t *testing.T, res catalog.Result, into any) {
	t.Helper()
	require.Len(t, res.Content, 1)
	assert.Equal(t, catalog.ContentTypeText, res.Content[0].Type)
	require.NoError(t, json.Unmarshal([]byte(res.Content[0].Text), into))
}

func TestRegisterAll_CatalogMatchesDispatch(t *testing.T) {
	cat, disp := setup(t, &fakeClient{})

	want := []string{
		"create_issue",
		"create_pull_request",
		"get_file_content",
		"get_repository",
		"list_directory",
		"list_issues",
		"list_pull_requests",
		"list_repositories",
	}

	names := make([]string, 0, cat.Len())
	for _, d := range cat.List() {
		names = append(names, d.Name)
		assert.NotEmpty(t, d.Description)
	}
	assert.Equal(t, want, names)
	assert.Equal(t, want, disp.Names())
}

func TestRegisterAll_RequiredParameters(t *testing.T) {
	cat, _ := setup(t, &fakeClient{})

	tests := map[string][]string{
		"list_repositories":   nil,
		"get_repository":      {"owner", "repo"},
		"list_issues":         {"owner", "repo"},
		"create_issue":        {"owner", "repo", "title"},
		"list_pull_requests":  {"owner", "repo"},
		"create_pull_request": {"owner", "repo", "title", "head"},
		"get_file_content":    {"owner", "repo", "path"},
		"list_directory":      {"owner", "repo"},
	}

	for name, required := range tests {
		t.Run(name, func(t *testing.T) {
			d, ok := cat.Lookup(name)
			require.True(t, ok)
			assert.ElementsMatch(t, required, d.Schema.Required())
		})
	}
}

func TestListRepositories_FirstTenInRemoteOrder(t *testing.T) {
	repos := make([]*gh.Repository, 0, 15)
	for i := 0; i < 15; i++ {
		repos = append(repos, fixture[gh.Repository](t, fmt.Sprintf(`{"name":"repo-%02d"}`, 14-i)))
	}
	client := &fakeClient{repos: repos}
	_, disp := setup(t, client)

	res, err := call(t, disp, "list_repositories", catalog.Args{})
	require.NoError(t, err)

	var out []map[string]any
	decodeText(t, res, &out)
	require.Len(t, out, 10)
	for i, r := range out {
		assert.Equal(t, fmt.Sprintf("repo-%02d", 14-i), r["name"])
	}
	assert.Equal(t, github.ListRepositoriesOptions{Visibility: "all", Sort: "updated"}, client.gotRepoOpts)
}

func TestGetRepository_Deterministic(t *testing.T) {
	client := &fakeClient{repo: fixture[gh.Repository](t, `{
		"name": "hello",
		"full_name": "octocat/hello",
		"topics": ["b", "a"],
		"license": null,
		"created_at": "2020-01-02T03:04:05Z"
	}`)}
	_, disp := setup(t, client)

	args := catalog.Args{"owner": "octocat", "repo": "hello"}
	first, err := call(t, disp, "get_repository", args)
	require.NoError(t, err)
	second, err := call(t, disp, "get_repository", args)
	require.NoError(t, err)

	assert.Equal(t, first.Content[0].Text, second.Content[0].Text)
	assert.Contains(t, first.Content[0].Text, `"license": null`)
	assert.Contains(t, first.Content[0].Text, `"created_at": "2020-01-02T03:04:05Z"`)
}

func TestListIssues_Defaults(t *testing.T) {
	client := &fakeClient{issues: []*gh.Issue{fixture[gh.Issue](t, `{"number": 1, "title": "bug"}`)}}
	_, disp := setup(t, client)

	res, err := call(t, disp, "list_issues", catalog.Args{"owner": "o", "repo": "r"})
	require.NoError(t, err)

	var out []map[string]any
	decodeText(t, res, &out)
	require.Len(t, out, 1)
	assert.Equal(t, float64(1), out[0]["number"])
	assert.Equal(t, github.ListIssuesOptions{State: "open", Labels: []string{}}, client.gotIssueOpts)
}

func TestCreateIssue_Defaults(t *testing.T) {
	client := &fakeClient{issue: fixture[gh.Issue](t, `{"number": 5, "title": "Crash", "state": "open", "body": ""}`)}
	_, disp := setup(t, client)

	res, err := call(t, disp, "create_issue", catalog.Args{"owner": "o", "repo": "r", "title": "Crash"})
	require.NoError(t, err)

	assert.Equal(t, github.NewIssue{
		Title:     "Crash",
		Body:      "",
		Labels:    []string{},
		Assignees: []string{},
	}, client.gotNewIssue)

	var out map[string]any
	decodeText(t, res, &out)
	assert.Equal(t, float64(5), out["number"])
	assert.Equal(t, []any{}, out["labels"])
	assert.Equal(t, []any{}, out["assignees"])
}

func TestCreateIssue_MissingTitle(t *testing.T) {
	_, disp := setup(t, &fakeClient{})

	_, err := call(t, disp, "create_issue", catalog.Args{"owner": "o", "repo": "r"})
	require.Error(t, err)
	assert.Equal(t, catalog.KindClientInput, catalog.KindOf(err))
}

func TestListPullRequests_Defaults(t *testing.T) {
	prs := make([]*gh.PullRequest, 0, 12)
	for i := 1; i <= 12; i++ {
		prs = append(prs, fixture[gh.PullRequest](t, fmt.Sprintf(`{"number": %d}`, i)))
	}
	client := &fakeClient{prs: prs}
	_, disp := setup(t, client)

	res, err := call(t, disp, "list_pull_requests", catalog.Args{"owner": "o", "repo": "r"})
	require.NoError(t, err)

	var out []map[string]any
	decodeText(t, res, &out)
	require.Len(t, out, 10)
	assert.Equal(t, float64(1), out[0]["number"])
	assert.Equal(t, float64(10), out[9]["number"])
	assert.Equal(t, github.ListPullRequestsOptions{State: "open", Sort: "created"}, client.gotPROpts)
}

func TestCreatePullRequest_Defaults(t *testing.T) {
	client := &fakeClient{pr: fixture[gh.PullRequest](t, `{"number": 9, "head": {"ref": "feature"}, "base": {"ref": "main"}}`)}
	_, disp := setup(t, client)

	res, err := call(t, disp, "create_pull_request", catalog.Args{
		"owner": "o",
		"repo":  "r",
		"title": "Feature",
		"head":  "feature",
	})
	require.NoError(t, err)

	assert.Equal(t, github.NewPullRequest{Title: "Feature", Head: "feature", Base: "main"}, client.gotNewPR)

	var out map[string]any
	decodeText(t, res, &out)
	assert.Equal(t, float64(9), out["number"])
	assert.Equal(t, "main", out["base"].(map[string]any)["ref"])
}

func TestGetFileContent(t *testing.T) {
	client := &fakeClient{contents: github.Contents{
		File: fixture[gh.RepositoryContent](t, `{"type":"file","name":"a.txt","path":"a.txt","encoding":"base64","content":"aGk="}`),
	}}
	_, disp := setup(t, client)

	res, err := call(t, disp, "get_file_content", catalog.Args{"owner": "o", "repo": "r", "path": "a.txt", "ref": "dev"})
	require.NoError(t, err)
	assert.Equal(t, "dev", client.gotRef)

	var out map[string]any
	decodeText(t, res, &out)
	assert.Equal(t, "hi", out["content"])
}

func TestGetFileContent_Directory(t *testing.T) {
	client := &fakeClient{contents: github.Contents{Directory: []*gh.RepositoryContent{}}}
	_, disp := setup(t, client)

	_, err := call(t, disp, "get_file_content", catalog.Args{"owner": "o", "repo": "r", "path": "docs"})
	require.Error(t, err)
	assert.Equal(t, catalog.KindClientInput, catalog.KindOf(err))
	assert.Equal(t, `path "docs" is a directory, not a file`, err.Error())
}

func TestGetFileContent_Binary(t *testing.T) {
	client := &fakeClient{contents: github.Contents{
		File: fixture[gh.RepositoryContent](t, `{"type":"file","name":"logo.png","path":"logo.png","encoding":"base64","content":"//4AQQ=="}`),
	}}
	_, disp := setup(t, client)

	res, err := call(t, disp, "get_file_content", catalog.Args{"owner": "o", "repo": "r", "path": "logo.png"})
	require.Error(t, err)
	assert.Empty(t, res.Content)
	assert.Equal(t, catalog.KindInternal, catalog.KindOf(err))
	assert.Contains(t, err.Error(), "logo.png: not valid UTF-8 text")
}

func TestListDirectory(t *testing.T) {
	tests := []struct {
		name     string
		contents github.Contents
		want     []string
	}{
		{
			name: "directory",
			contents: github.Contents{Directory: []*gh.RepositoryContent{
				fixture[gh.RepositoryContent](t, `{"type":"file","path":"README.md"}`),
				fixture[gh.RepositoryContent](t, `{"type":"dir","path":"docs"}`),
			}},
			want: []string{"README.md", "docs"},
		},
		{
			name:     "file",
			contents: github.Contents{File: fixture[gh.RepositoryContent](t, `{"type":"file","path":"README.md","content":"aGk="}`)},
			want:     []string{"README.md"},
		},
		{
			name:     "empty directory",
			contents: github.Contents{Directory: []*gh.RepositoryContent{}},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{contents: tt.contents}
			_, disp := setup(t, client)

			res, err := call(t, disp, "list_directory", catalog.Args{"owner": "o", "repo": "r"})
			require.NoError(t, err)
			assert.Equal(t, "", client.gotPath)

			var out []map[string]any
			decodeText(t, res, &out)
			paths := make([]string, 0, len(out))
			for _, e := range out {
				paths = append(paths, e["path"].(string))
				assert.NotContains(t, e, "content")
			}
			assert.Equal(t, tt.want, paths)
		})
	}
}

func TestHandlers_PropagateRemoteErrors(t *testing.T) {
	remote := errors.New("github: get repository o/r: 502 Bad Gateway")
	_, disp := setup(t, &fakeClient{err: remote})

	_, err := call(t, disp, "get_repository", catalog.Args{"owner": "o", "repo": "r"})
	require.ErrorIs(t, err, remote)
	assert.Equal(t, catalog.KindInternal, catalog.KindOf(err))
}
