package cli

import (
	"context"
	"encoding/json"
	"fmt"

	domainconfig "github.com/felixgeelhaar/pdftool/domain/config"
	"github.com/felixgeelhaar/pdftool/domain/tool"
	"github.com/felixgeelhaar/pdftool/infrastructure/config"
	"github.com/felixgeelhaar/pdftool/infrastructure/logging"
	"github.com/felixgeelhaar/pdftool/infrastructure/resilience"
	"github.com/felixgeelhaar/pdftool/infrastructure/storage/memory"
)

// session holds what every tool-running command needs.
type session struct {
	config   *domainconfig.Config
	registry *memory.ToolRegistry
	executor *resilience.Executor
}

// setup loads configuration, initializes logging and installs the pdf pack.
func (a *App) setup() (*session, error) {
	cfg, err := config.LoadOrDefault(a.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	builder := config.NewBuilder(cfg)
	logging.Init(builder.LoggingConfig(a.stderr))

	p, err := builder.BuildPack()
	if err != nil {
		return nil, fmt.Errorf("failed to build pdf pack: %w", err)
	}

	reg := memory.NewToolRegistry()
	if err := p.Install(reg); err != nil {
		return nil, err
	}

	return &session{
		config:   cfg,
		registry: reg,
		executor: resilience.NewExecutorWithOptions(resilience.WithMaxConcurrent(cfg.PDF.MaxConcurrent)),
	}, nil
}

// runTool executes the named tool with input and writes its JSON output.
func (a *App) runTool(ctx context.Context, s *session, name string, input map[string]any) error {
	t, ok := s.registry.Get(name)
	if !ok {
		return fmt.Errorf("%w: %s", tool.ErrToolNotFound, name)
	}

	raw, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("encode input: %w", err)
	}

	result, err := s.executor.Execute(ctx, t, raw)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(a.stdout, result.OutputString())
	return nil
}
