package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/github-mcp/internal/catalog"
	"github.com/honeycarbs/github-mcp/internal/config"
	"github.com/honeycarbs/github-mcp/internal/heartbeat"
	"github.com/honeycarbs/github-mcp/internal/metrics"
	"github.com/honeycarbs/github-mcp/pkg/logging"
)

func newTestServer(t *testing.T, client *stubClient) *httptest.Server {
	t.Helper()
	ts, err := NewToolset(client, logging.NewNop())
	require.NoError(t, err)
	return serve(t, ts)
}

func serve(t *testing.T, ts *Toolset) *httptest.Server {
	t.Helper()
	m := metrics.New(prometheus.NewRegistry())
	facade := NewFacade(ts, logging.NewNop(), m)
	cfg := config.Config{Host: "127.0.0.1", Port: "0", HeartbeatInterval: time.Hour}

	srv := NewServer(logging.NewNop(), cfg, facade, heartbeat.NewService(cfg.HeartbeatInterval, nil), m)
	httpSrv := httptest.NewServer(srv.Handler())
	t.Cleanup(httpSrv.Close)
	return httpSrv
}

func postTool(t *testing.T, srv *httptest.Server, body string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Post(srv.URL+"/tool", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestServer_Discovery(t *testing.T) {
	srv := newTestServer(t, &stubClient{})

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var out struct {
		Name    string `json:"name"`
		Version string `json:"version"`
		Tools   []struct {
			Name        string         `json:"name"`
			Description string         `json:"description"`
			Parameters  map[string]any `json:"parameters"`
		} `json:"tools"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	assert.Equal(t, "github-mcp", out.Name)
	assert.Equal(t, "0.1.0", out.Version)
	require.Len(t, out.Tools, 8)
	for _, tool := range out.Tools {
		assert.Equal(t, "object", tool.Parameters["type"], tool.Name)
	}
}

func TestServer_UnknownPathIs404(t *testing.T) {
	srv := newTestServer(t, &stubClient{})

	resp, err := http.Get(srv.URL + "/nope")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_ToolStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		client     *stubClient
		body       string
		wantStatus int
		wantDetail string
	}{
		{
			name:       "malformed body",
			client:     &stubClient{},
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing name",
			client:     &stubClient{},
			body:       `{"parameters":{}}`,
			wantStatus: http.StatusNotFound,
			wantDetail: "tool  not found",
		},
		{
			name:       "unknown tool",
			client:     &stubClient{},
			body:       `{"name":"does_not_exist","parameters":{}}`,
			wantStatus: http.StatusNotFound,
			wantDetail: "tool does_not_exist not found",
		},
		{
			name:       "missing parameter",
			client:     &stubClient{},
			body:       `{"name":"get_repository","parameters":{"owner":"octocat"}}`,
			wantStatus: http.StatusBadRequest,
			wantDetail: "missing required parameter: repo",
		},
		{
			name:       "remote failure",
			client:     &stubClient{err: io.ErrUnexpectedEOF},
			body:       `{"name":"get_repository","parameters":{"owner":"o","repo":"r"}}`,
			wantStatus: http.StatusInternalServerError,
			wantDetail: "unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.client)

			status, out := postTool(t, srv, tt.body)
			assert.Equal(t, tt.wantStatus, status)
			require.Contains(t, out, "detail")
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, out["detail"])
			}
		})
	}
}

func TestServer_ToolNotImplemented(t *testing.T) {
	cat := catalog.New()
	require.NoError(t, cat.Register("archive_repository", "Archive a repository", catalog.Object()))
	cat.Freeze()
	srv := serve(t, &Toolset{Catalog: cat, Dispatch: catalog.NewDispatch()})

	status, out := postTool(t, srv, `{"name":"archive_repository"}`)
	assert.Equal(t, http.StatusNotImplemented, status)
	assert.Equal(t, "tool archive_repository not implemented", out["detail"])
}

func TestServer_ToolSuccess(t *testing.T) {
	srv := newTestServer(t, &stubClient{repo: helloRepo(t)})

	status, out := postTool(t, srv, `{"name":"get_repository","parameters":{"owner":"octocat","repo":"hello"}}`)
	require.Equal(t, http.StatusOK, status)

	content, ok := out["content"].([]any)
	require.True(t, ok)
	require.Len(t, content, 1)
	block := content[0].(map[string]any)
	assert.Equal(t, "text", block["type"])

	var repo map[string]any
	require.NoError(t, json.Unmarshal([]byte(block["text"].(string)), &repo))
	assert.Equal(t, "octocat/hello", repo["full_name"])
	assert.Nil(t, repo["description"])
}

func TestServer_SSESendsPingImmediately(t *testing.T) {
	srv := newTestServer(t, &stubClient{})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/sse", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "event: ping\n", line)
	line, err = reader.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "data: \n", line)
}

func TestServer_HealthAndMetrics(t *testing.T) {
	srv := newTestServer(t, &stubClient{repo: helloRepo(t)})
	postTool(t, srv, `{"name":"get_repository","parameters":{"owner":"octocat","repo":"hello"}}`)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `github_mcp_tool_calls_total{outcome="ok",tool="get_repository"} 1`)
}
