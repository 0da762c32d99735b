package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/pdftool/infrastructure/config"
	"github.com/felixgeelhaar/pdftool/infrastructure/mcp"
)

// exportSchemaOptions holds options for the export-schema command.
type exportSchemaOptions struct {
	outputPath string
	tools      bool
}

// newExportSchemaCmd creates the export-schema command.
func (a *App) newExportSchemaCmd() *cobra.Command {
	opts := &exportSchemaOptions{}

	cmd := &cobra.Command{
		Use:   "export-schema",
		Short: "Export the configuration or tool JSON schemas",
		Long: `Export the JSON Schema for pdftool configuration files, or with --tools
the MCP definitions (name, description, input schema) of every tool.

Examples:
  # Export the configuration schema to stdout
  pdftool export-schema

  # Export tool definitions to a file
  pdftool export-schema --tools -o tools.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.exportSchema(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&opts.tools, "tools", false, "Export tool definitions instead of the configuration schema")

	return cmd
}

func (a *App) exportSchema(opts *exportSchemaOptions) error {
	var (
		out string
		err error
	)
	if opts.tools {
		out, err = a.toolDefinitionsJSON()
	} else {
		out, err = config.SchemaJSON()
	}
	if err != nil {
		return fmt.Errorf("failed to generate schema: %w", err)
	}

	if opts.outputPath == "" {
		_, _ = fmt.Fprintln(a.stdout, out)
		return nil
	}

	if err := os.WriteFile(opts.outputPath, []byte(out), 0600); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}

	_, _ = fmt.Fprintf(a.stdout, "Schema exported to %s\n", opts.outputPath)
	return nil
}

func (a *App) toolDefinitionsJSON() (string, error) {
	s, err := a.setup()
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(mcp.Definitions(s.registry), "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
