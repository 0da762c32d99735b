package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/pdftool/infrastructure/config"
)

// validateOptions holds options for the validate command.
type validateOptions struct {
	strict     bool
	showSchema bool
}

// newValidateCmd creates the validate command.
func (a *App) newValidateCmd() *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a configuration file",
		Long: `Validate a pdftool configuration file.

This command checks:
  - File format (YAML or JSON)
  - Transport, logging and tracing settings
  - PDF limits and the root directory
  - Environment variable references (in strict mode)

Examples:
  pdftool validate -c pdftool.yaml
  pdftool validate -c pdftool.yaml --strict
  pdftool validate --schema`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.showSchema {
				out, err := config.SchemaJSON()
				if err != nil {
					return fmt.Errorf("failed to generate schema: %w", err)
				}
				_, _ = fmt.Fprintln(a.stdout, out)
				return nil
			}
			return a.validateConfig(opts)
		},
	}

	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Enable strict validation (fail on missing env vars)")
	cmd.Flags().BoolVar(&opts.showSchema, "schema", false, "Show JSON schema for configuration")

	return cmd
}

func (a *App) validateConfig(opts *validateOptions) error {
	if a.configPath == "" {
		return fmt.Errorf("configuration file path is required (-c flag)")
	}

	loader := config.NewLoaderWithOptions(config.WithStrictEnv(opts.strict))
	cfg, err := loader.LoadFile(a.configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	// The root directory is only checked when the pack is built.
	if _, err := config.NewBuilder(cfg).BuildPack(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	_, _ = fmt.Fprintf(a.stdout, "✓ Configuration is valid\n")
	_, _ = fmt.Fprintf(a.stdout, "\nConfiguration summary:\n")
	_, _ = fmt.Fprintf(a.stdout, "  Server: %s (%s", cfg.Server.Name, cfg.Server.Transport)
	if cfg.Server.Transport == "http" {
		_, _ = fmt.Fprintf(a.stdout, " on %s", cfg.Server.Addr)
	}
	_, _ = fmt.Fprintf(a.stdout, ")\n")
	_, _ = fmt.Fprintf(a.stdout, "  Default max pages: %d\n", cfg.PDF.DefaultMaxPages)
	_, _ = fmt.Fprintf(a.stdout, "  Max concurrent calls: %d\n", cfg.PDF.MaxConcurrent)
	if cfg.PDF.RootDir != "" {
		_, _ = fmt.Fprintf(a.stdout, "  Root directory: %s\n", cfg.PDF.RootDir)
	}
	_, _ = fmt.Fprintf(a.stdout, "  Logging: %s (%s)\n", cfg.Logging.Level, cfg.Logging.Format)
	if cfg.Tracing.Enabled {
		_, _ = fmt.Fprintf(a.stdout, "  Tracing: %s (sample rate %.2f)\n", cfg.Tracing.Exporter, cfg.Tracing.SampleRate)
	}

	return nil
}
