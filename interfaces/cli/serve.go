package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	domainconfig "github.com/felixgeelhaar/pdftool/domain/config"
	"github.com/felixgeelhaar/pdftool/infrastructure/config"
	"github.com/felixgeelhaar/pdftool/infrastructure/logging"
	"github.com/felixgeelhaar/pdftool/infrastructure/mcp"
	"github.com/felixgeelhaar/pdftool/infrastructure/observability"
)

// serveOptions holds options for the serve command.
type serveOptions struct {
	transport string
	addr      string
	watch     bool
}

// newServeCmd creates the serve command.
func (a *App) newServeCmd() *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the pdf tools over MCP",
		Long: `Serve the pdf tools to an agent host over the Model Context Protocol.

The stdio transport reads requests on stdin and writes responses on stdout;
logs always go to stderr.

Examples:
  # Serve over stdio with default settings
  pdftool serve

  # Serve over HTTP with a config file, reloading the log level on change
  pdftool serve -c pdftool.yaml --transport http --addr :8080 --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.transport, "transport", "", "Transport: stdio or http (default from config)")
	cmd.Flags().StringVar(&opts.addr, "addr", "", "Listen address for the http transport (default from config)")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "Reload the log level when the config file changes")

	return cmd
}

func (a *App) serve(ctx context.Context, opts *serveOptions) error {
	s, err := a.setup()
	if err != nil {
		return err
	}
	cfg := s.config

	if opts.transport != "" {
		cfg.Server.Transport = opts.transport
	}
	if opts.addr != "" {
		cfg.Server.Addr = opts.addr
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	provider, err := observability.New(append(
		observability.FromConfig(cfg.Tracing),
		observability.WithServiceName(cfg.Server.Name),
		observability.WithServiceVersion(Version),
	)...)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			logging.Warn().Add(logging.ErrorField(err)).Msg("tracing shutdown failed")
		}
	}()

	instruments, err := provider.Instruments()
	if err != nil {
		return fmt.Errorf("failed to create instruments: %w", err)
	}

	srv, err := mcp.NewServer(mcp.ServerConfig{
		Name:         cfg.Server.Name,
		Version:      Version,
		Description:  "Read-only PDF text extraction and page counts",
		Instructions: `Use pdf_tool with action "text" to extract text or "meta" to get the page count.`,
		Registry:     s.registry,
		Executor:     s.executor,
		Instruments:  instruments,
	})
	if err != nil {
		return err
	}
	srv.Use(mcp.Recover(), mcp.RequestID())

	if opts.watch {
		if a.configPath == "" {
			return errors.New("--watch requires a configuration file (-c)")
		}
		go a.watchConfig(ctx, a.configPath)
	}

	logging.Info().
		Add(logging.Component("server")).
		Add(logging.Str("transport", cfg.Server.Transport)).
		Add(logging.Str("version", Version)).
		Msg("serving pdf tools")

	switch cfg.Server.Transport {
	case domainconfig.TransportHTTP:
		return srv.ServeHTTP(ctx, cfg.Server.Addr)
	default:
		return srv.ServeStdio(ctx)
	}
}

func (a *App) watchConfig(ctx context.Context, path string) {
	err := config.NewLoader().Watch(ctx, path, func(cfg *domainconfig.Config) {
		logging.SetLevel(cfg.Logging.Level)
	})
	if err != nil {
		logging.Warn().
			Add(logging.Component("config")).
			Add(logging.ErrorField(err)).
			Msg("config watch stopped")
	}
}
