package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/honeycarbs/github-mcp/internal/config"
	"github.com/honeycarbs/github-mcp/internal/mcp"
	"github.com/honeycarbs/github-mcp/pkg/logging"
	"github.com/honeycarbs/github-mcp/pkg/shutdown"
)

type serveOptions struct {
	host     string
	port     string
	logLevel string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("github-mcp: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	opts := serveOptions{}

	root := &cobra.Command{
		Use:           "github-mcp",
		Short:         "Serve GitHub operations as MCP tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			opts.apply(cmd, &cfg)
			return serve(cmd.Context(), cfg)
		},
	}

	root.Flags().StringVar(&opts.host, "host", "", "listen host (overrides MCP_HOST)")
	root.Flags().StringVar(&opts.port, "port", "", "listen port (overrides PORT)")
	root.Flags().StringVar(&opts.logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")

	return root
}

// apply lets explicitly set flags win over the environment
func (o serveOptions) apply(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("host") {
		cfg.Host = o.host
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = o.port
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
}

func serve(ctx context.Context, cfg config.Config) error {
	logger, err := logging.New(logging.Options{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: mcp.ServerName,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	srv, err := mcp.InitializeServer(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize MCP server", "err", err)
		return err
	}

	logger.Info("MCP server initialized and starting", "addr", net.JoinHostPort(cfg.Host, cfg.Port))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Run)
	g.Go(func() error {
		return shutdown.Graceful(
			gctx,
			[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
			srv,
			cfg.ShutdownTimeout,
			logger,
		)
	})

	if err := g.Wait(); err != nil {
		logger.Error("MCP server exited with error", "err", err)
		return err
	}

	logger.Info("MCP server stopped")
	return nil
}
