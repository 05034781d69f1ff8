package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/github-mcp/internal/catalog"
	"github.com/honeycarbs/github-mcp/internal/config"
	"github.com/honeycarbs/github-mcp/internal/heartbeat"
	"github.com/honeycarbs/github-mcp/internal/metrics"
	"github.com/honeycarbs/github-mcp/pkg/logging"
)

// maxBodyBytes bounds a POST /tool body
const maxBodyBytes = 1 << 20

// Server serves the tool façade over plain HTTP, SSE and MCP streamable HTTP
type Server struct {
	logger    *logging.Logger
	config    config.Config
	facade    *Facade
	heartbeat *heartbeat.Service
	metrics   *metrics.Metrics

	srv     *http.Server
	cancel  context.CancelFunc
	started atomic.Bool
}

// NewServer constructs a new MCP HTTP server
func NewServer(log *logging.Logger, cfg config.Config, facade *Facade, hb *heartbeat.Service, m *metrics.Metrics) *Server {
	s := &Server{
		logger:    log.Named("http"),
		config:    cfg,
		facade:    facade,
		heartbeat: hb,
		metrics:   m,
	}

	mcpServer := newSDKServer(facade)
	stream := sdkmcp.NewStreamableHTTPHandler(func(*http.Request) *sdkmcp.Server {
		return mcpServer
	}, nil)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleDiscovery)
	mux.HandleFunc("POST /tool", s.handleTool)
	mux.HandleFunc("GET /sse", s.handleSSE)
	mux.Handle("/mcp/stream", stream)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("GET /metrics", m.Handler())

	// Long-lived streams end when the server shuts down.
	baseCtx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.srv = &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}
	s.srv.RegisterOnShutdown(cancel)

	return s
}

// Handler exposes the routing table, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Run starts the HTTP server and blocks until shutdown
func (s *Server) Run() error {
	if !s.started.CompareAndSwap(false, true) {
		return nil
	}

	s.logger.Info("MCP HTTP server listening", "addr", s.srv.Addr)

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutdown requested for MCP HTTP server")
	defer s.cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Warn("MCP HTTP server shutdown with error", "err", err)
		return err
	}

	s.logger.Info("MCP HTTP server shutdown complete")
	return nil
}

func (s *Server) handleDiscovery(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, DiscoveryResult{
		Name:    ServerName,
		Version: ServerVersion,
		Tools:   s.facade.Tools(),
	})
}

func (s *Server) handleTool(w http.ResponseWriter, r *http.Request) {
	var call ToolCall
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&call); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	res, err := s.facade.Handle(r.Context(), call)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleSSE(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	closeStream := s.metrics.StreamOpened()
	defer closeStream()
	s.logger.Debug("event stream opened", "remote", r.RemoteAddr, "interval", s.heartbeat.Interval())

	err := s.heartbeat.Run(r.Context(), func(context.Context) error {
		if err := writeEvent(w, "ping", ""); err != nil {
			return err
		}
		flusher.Flush()
		s.metrics.ObservePing()
		return nil
	})

	if err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Error("event stream failed", "err", err)
		if writeEvent(w, "error", err.Error()) == nil {
			flusher.Flush()
		}
		return
	}
	s.logger.Debug("event stream closed", "remote", r.RemoteAddr)
}

func writeEvent(w http.ResponseWriter, event, data string) error {
	_, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
	return err
}

// statusFor maps a façade error kind to its HTTP status
func statusFor(err error) int {
	switch catalog.KindOf(err) {
	case catalog.KindNotFound:
		return http.StatusNotFound
	case catalog.KindNotImplemented:
		return http.StatusNotImplemented
	case catalog.KindClientInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}
