// Package pdf provides the domain model for reading PDF documents.
package pdf

import "context"

// Document is an opened PDF. It is valid for the duration of a single call
// and must be closed by whoever opened it.
type Document interface {
	// NumPages returns the total number of pages in the page tree.
	NumPages() int

	// PageText extracts the text of the page at the zero-based index.
	PageText(index int) (string, error)

	// Close releases the underlying file handle.
	Close() error
}

// Opener opens documents from the local filesystem.
type Opener interface {
	// Open parses the file at path. Failures wrap ErrFileAccess or ErrFormat.
	Open(ctx context.Context, path string) (Document, error)
}

// ExtractionResult is the output of a text action.
type ExtractionResult struct {
	Text string `json:"text"`
}

// MetaResult is the output of a meta action.
type MetaResult struct {
	PageCount int `json:"page_count"`
}
