package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// newListToolsCmd creates the list-tools command.
func (a *App) newListToolsCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "list-tools",
		Short: "List the tools served by pdftool",
		Long: `List every tool that pdftool exposes to agent hosts.

Examples:
  pdftool list-tools
  pdftool list-tools -v`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.setup()
			if err != nil {
				return err
			}

			tools := s.registry.List()
			_, _ = fmt.Fprintf(a.stdout, "Tools (%d):\n", len(tools))
			for _, t := range tools {
				_, _ = fmt.Fprintf(a.stdout, "\n  %s\n", t.Name())
				if !verbose {
					continue
				}
				if t.Description() != "" {
					_, _ = fmt.Fprintf(a.stdout, "    Description: %s\n", t.Description())
				}
				ann := t.Annotations()
				if ann.ReadOnly {
					_, _ = fmt.Fprintf(a.stdout, "    ReadOnly: true\n")
				}
				if ann.Idempotent {
					_, _ = fmt.Fprintf(a.stdout, "    Idempotent: true\n")
				}
				if len(ann.Tags) > 0 {
					_, _ = fmt.Fprintf(a.stdout, "    Tags: %s\n", strings.Join(ann.Tags, ", "))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed information")

	return cmd
}
