// Package pdf provides read-only PDF tools: text extraction and page counting.
//
// This pack includes:
//   - pdf_tool: dispatches the "text" and "meta" actions
//   - pdf_extract_text: extract text from all or the first N pages
//   - pdf_page_count: report the number of pages
package pdf

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/felixgeelhaar/pdftool/domain/pack"
	domainpdf "github.com/felixgeelhaar/pdftool/domain/pdf"
	"github.com/felixgeelhaar/pdftool/domain/tool"
)

// Tool names.
const (
	ToolDispatch    = "pdf_tool"
	ToolExtractText = "pdf_extract_text"
	ToolPageCount   = "pdf_page_count"
)

// PackConfig configures the PDF pack.
type PackConfig struct {
	// Opener decodes documents. Required.
	Opener domainpdf.Opener

	// DefaultMaxPages is the page limit for "text" when max_pages is omitted.
	DefaultMaxPages int

	// RootDir restricts readable files to this directory tree.
	// Empty means no restriction.
	RootDir string
}

// DefaultPackConfig returns default pack configuration.
func DefaultPackConfig() PackConfig {
	return PackConfig{
		DefaultMaxPages: DefaultMaxPages,
	}
}

// New creates the PDF pack with the given configuration.
func New(cfg PackConfig) (*pack.Pack, error) {
	if cfg.Opener == nil {
		return nil, ErrOpenerNotConfigured
	}
	if cfg.DefaultMaxPages < 0 {
		cfg.DefaultMaxPages = 0
	}

	opener, err := newConfinedOpener(cfg.RootDir, cfg.Opener)
	if err != nil {
		return nil, err
	}
	d := NewDispatcher(opener)

	return pack.NewBuilder("pdf").
		WithDescription("Read-only PDF text extraction and metadata").
		WithVersion("1.0.0").
		AddTools(
			dispatchTool(d, cfg.DefaultMaxPages),
			extractTextTool(d.extractor),
			pageCountTool(d.counter),
		).
		Build(), nil
}

func pathProperty() json.RawMessage {
	return tool.Property("string", "Local filesystem path to the PDF file", nil)
}

// requirePath rejects an empty path before any file is touched. An empty
// path is reported like any other unreadable path.
func requirePath(path string) error {
	if path == "" {
		return fmt.Errorf("%w: path is required", domainpdf.ErrFileAccess)
	}
	return nil
}

// dispatchTool creates the pdf_tool tool.
func dispatchTool(d *Dispatcher, defaultMaxPages int) tool.Tool {
	return tool.NewBuilder(ToolDispatch).
		WithDescription(`PDF utility supporting the "text" action (extract text) and the "meta" action (page count)`).
		WithInputSchema(tool.ObjectSchema(map[string]json.RawMessage{
			"action":    tool.EnumProperty(`"text" to extract text, "meta" to return the page count (case-insensitive)`, domainpdf.ActionText, domainpdf.ActionMeta),
			"path":      pathProperty(),
			"max_pages": tool.Property("integer", `Maximum pages to read for "text"`, defaultMaxPages),
		}, []string{"action", "path"})).
		ReadOnly().
		Cacheable().
		WithTags("pdf", "document").
		WithHandler(func(ctx context.Context, input json.RawMessage) (tool.Result, error) {
			var req struct {
				Action   string `json:"action"`
				Path     string `json:"path"`
				MaxPages *int   `json:"max_pages"`
			}
			if err := tool.DecodeInput(input, &req); err != nil {
				return tool.Result{}, err
			}

			maxPages := defaultMaxPages
			if req.MaxPages != nil {
				maxPages = *req.MaxPages
			}

			act, err := domainpdf.ParseAction(req.Action, maxPages)
			if err != nil {
				return tool.Result{}, err
			}
			if err := requirePath(req.Path); err != nil {
				return tool.Result{}, err
			}

			resp, err := d.Run(ctx, act, req.Path)
			if err != nil {
				return tool.Result{}, err
			}
			return tool.JSONResult(resp)
		}).
		MustBuild()
}

// extractTextTool creates the pdf_extract_text tool.
func extractTextTool(e *Extractor) tool.Tool {
	return tool.NewBuilder(ToolExtractText).
		WithDescription("Extract text from a PDF, one line-separated segment per page").
		WithInputSchema(tool.ObjectSchema(map[string]json.RawMessage{
			"path":      pathProperty(),
			"max_pages": tool.Property("integer", "Maximum pages to read; omit to read all pages", nil),
		}, []string{"path"})).
		ReadOnly().
		Cacheable().
		WithTags("pdf", "document", "text").
		WithHandler(func(ctx context.Context, input json.RawMessage) (tool.Result, error) {
			var req struct {
				Path     string `json:"path"`
				MaxPages *int   `json:"max_pages"`
			}
			if err := tool.DecodeInput(input, &req); err != nil {
				return tool.Result{}, err
			}
			if err := requirePath(req.Path); err != nil {
				return tool.Result{}, err
			}

			text, err := e.Extract(ctx, req.Path, req.MaxPages)
			if err != nil {
				return tool.Result{}, err
			}
			return tool.JSONResult(domainpdf.ExtractionResult{Text: text})
		}).
		MustBuild()
}

// pageCountTool creates the pdf_page_count tool.
func pageCountTool(c *Counter) tool.Tool {
	return tool.NewBuilder(ToolPageCount).
		WithDescription("Return the number of pages in a PDF").
		WithInputSchema(tool.ObjectSchema(map[string]json.RawMessage{
			"path": pathProperty(),
		}, []string{"path"})).
		ReadOnly().
		Cacheable().
		WithTags("pdf", "document", "metadata").
		WithHandler(func(ctx context.Context, input json.RawMessage) (tool.Result, error) {
			var req struct {
				Path string `json:"path"`
			}
			if err := tool.DecodeInput(input, &req); err != nil {
				return tool.Result{}, err
			}
			if err := requirePath(req.Path); err != nil {
				return tool.Result{}, err
			}

			n, err := c.Count(ctx, req.Path)
			if err != nil {
				return tool.Result{}, err
			}
			return tool.JSONResult(domainpdf.MetaResult{PageCount: n})
		}).
		MustBuild()
}
