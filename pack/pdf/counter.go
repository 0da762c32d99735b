package pdf

import (
	"context"

	domainpdf "github.com/felixgeelhaar/pdftool/domain/pdf"
)

// Counter reports the number of pages in a document without decoding text.
type Counter struct {
	opener domainpdf.Opener
}

// NewCounter creates a counter that reads documents through opener.
func NewCounter(opener domainpdf.Opener) *Counter {
	return &Counter{opener: opener}
}

// Count returns the total number of pages of the document at path.
func (c *Counter) Count(ctx context.Context, path string) (int, error) {
	doc, err := c.opener.Open(ctx, path)
	if err != nil {
		return 0, err
	}
	defer doc.Close()

	return doc.NumPages(), nil
}
