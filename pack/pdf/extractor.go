package pdf

import (
	"context"
	"fmt"
	"strings"

	domainpdf "github.com/felixgeelhaar/pdftool/domain/pdf"
	"github.com/felixgeelhaar/pdftool/infrastructure/logging"
)

// Extractor concatenates per-page text from a document.
type Extractor struct {
	opener domainpdf.Opener
}

// NewExtractor creates an extractor that reads documents through opener.
func NewExtractor(opener domainpdf.Opener) *Extractor {
	return &Extractor{opener: opener}
}

// Extract returns the text of the first maxPages pages joined by newlines.
// A nil maxPages reads every page; out-of-range values are clamped to
// [0, total]. A page that fails to decode contributes an empty segment.
func (e *Extractor) Extract(ctx context.Context, path string, maxPages *int) (string, error) {
	doc, err := e.opener.Open(ctx, path)
	if err != nil {
		return "", err
	}
	defer doc.Close()

	total := doc.NumPages()
	limit := PageLimit(total, maxPages)
	logging.Debug().
		Add(logging.Component("extractor")).
		Add(logging.Path(path)).
		Add(logging.PageCount(total)).
		Add(logging.Limit(limit)).
		Msg("extracting text")

	parts := make([]string, limit)
	for i := 0; i < limit; i++ {
		text, err := pageText(doc, i)
		if err != nil {
			logging.Debug().
				Add(logging.Component("extractor")).
				Add(logging.Path(path)).
				Add(logging.Page(i + 1)).
				Add(logging.ErrorField(err)).
				Msg("page text unavailable, using empty text")
			continue
		}
		parts[i] = text
	}

	return strings.Join(parts, "\n"), nil
}

// PageLimit returns how many pages an extraction reads.
func PageLimit(total int, maxPages *int) int {
	if maxPages == nil {
		return total
	}
	return max(0, min(total, *maxPages))
}

// pageText isolates a single page so that a decoder panic only loses that page.
func pageText(doc domainpdf.Document, index int) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = fmt.Errorf("page %d: %v", index+1, rec)
		}
	}()
	return doc.PageText(index)
}
