package cli

import (
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/pdftool/pack/pdf"
)

// newCallCmd creates the call command, which runs the pdf_tool dispatcher.
func (a *App) newCallCmd() *cobra.Command {
	var maxPages int

	cmd := &cobra.Command{
		Use:   "call <action> <path>",
		Short: "Run a pdf action (text or meta) on a file",
		Long: `Run the pdf_tool dispatcher exactly as an agent host would.

Actions are matched case-insensitively:
  text   extract text from the first --max-pages pages
  meta   report the page count

Examples:
  pdftool call text report.pdf
  pdftool call meta report.pdf
  pdftool call TEXT report.pdf --max-pages 2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.setup()
			if err != nil {
				return err
			}

			input := map[string]any{
				"action": args[0],
				"path":   args[1],
			}
			if cmd.Flags().Changed("max-pages") {
				input["max_pages"] = maxPages
			}
			return a.runTool(cmd.Context(), s, pdf.ToolDispatch, input)
		},
	}

	cmd.Flags().IntVarP(&maxPages, "max-pages", "n", pdf.DefaultMaxPages, "Maximum pages to read for the text action (default from config)")

	return cmd
}

// newTextCmd creates the text command.
func (a *App) newTextCmd() *cobra.Command {
	var maxPages int

	cmd := &cobra.Command{
		Use:   "text <path>",
		Short: "Extract text from a PDF",
		Long: `Extract text from a PDF, one newline-separated segment per page.

All pages are read unless --max-pages is given. Pages that cannot be decoded
contribute an empty segment.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.setup()
			if err != nil {
				return err
			}

			input := map[string]any{"path": args[0]}
			if cmd.Flags().Changed("max-pages") {
				input["max_pages"] = maxPages
			}
			return a.runTool(cmd.Context(), s, pdf.ToolExtractText, input)
		},
	}

	cmd.Flags().IntVarP(&maxPages, "max-pages", "n", 0, "Maximum pages to read (default: all pages)")

	return cmd
}

// newMetaCmd creates the meta command.
func (a *App) newMetaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "meta <path>",
		Short: "Print the page count of a PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.setup()
			if err != nil {
				return err
			}
			return a.runTool(cmd.Context(), s, pdf.ToolPageCount, map[string]any{"path": args[0]})
		},
	}
}
