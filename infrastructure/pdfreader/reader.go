// Package pdfreader implements domain/pdf.Opener on top of github.com/ledongthuc/pdf.
package pdfreader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	lpdf "github.com/ledongthuc/pdf"

	"github.com/felixgeelhaar/pdftool/domain/pdf"
)

// Opener opens PDF files read-only from the local filesystem.
type Opener struct{}

// NewOpener creates a new opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open opens and parses the file at path. The returned document owns the file
// handle; the handle is released here on every failure path.
func (o *Opener) Open(_ context.Context, path string) (pdf.Document, error) {
	f, err := os.Open(path) // #nosec G304 -- reading caller-supplied paths is the purpose of the tool
	if err != nil {
		return nil, accessError(path, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, accessError(path, err)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s is a directory", pdf.ErrFileAccess, path)
	}

	r, err := newReader(f, info.Size())
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s: %v", pdf.ErrFormat, path, err)
	}

	pages, err := collectPages(r)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s: %v", pdf.ErrFormat, path, err)
	}

	return &document{file: f, pages: pages}, nil
}

// newReader parses the trailer and cross-reference table. The library panics
// on some malformed inputs, so panics are turned into errors.
func newReader(f *os.File, size int64) (r *lpdf.Reader, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r = nil
			err = fmt.Errorf("malformed pdf: %v", rec)
		}
	}()
	return lpdf.NewReader(f, size)
}

// maxTreeDepth bounds the page tree walk so that cyclic Kids references fail
// instead of recursing forever.
const maxTreeDepth = 64

// collectPages walks the page tree from the catalog and returns the leaf page
// objects in document order. /Count is not trusted since some writers omit
// or miscompute it.
func collectPages(r *lpdf.Reader) (pages []lpdf.Value, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			pages = nil
			err = fmt.Errorf("malformed page tree: %v", rec)
		}
	}()

	catalog := r.Trailer().Key("Root")
	if catalog.Kind() != lpdf.Dict {
		return nil, errors.New("missing document catalog")
	}
	root := catalog.Key("Pages")
	if root.Kind() != lpdf.Dict {
		return nil, errors.New("missing page tree")
	}

	if err := walkPages(root, 0, &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

func walkPages(node lpdf.Value, depth int, pages *[]lpdf.Value) error {
	if depth > maxTreeDepth {
		return errors.New("page tree too deep")
	}

	kids := node.Key("Kids")
	if node.Key("Type").Name() == "Page" || kids.Kind() != lpdf.Array {
		*pages = append(*pages, node)
		return nil
	}

	for i := 0; i < kids.Len(); i++ {
		kid := kids.Index(i)
		if kid.Kind() != lpdf.Dict {
			continue
		}
		if err := walkPages(kid, depth+1, pages); err != nil {
			return err
		}
	}
	return nil
}

func accessError(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s does not exist", pdf.ErrFileAccess, path)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: permission denied: %s", pdf.ErrFileAccess, path)
	default:
		return fmt.Errorf("%w: %v", pdf.ErrFileAccess, err)
	}
}

// document adapts the pages of an lpdf.Reader to pdf.Document.
type document struct {
	file  *os.File
	pages []lpdf.Value
}

// NumPages returns the number of leaf pages in the page tree.
func (d *document) NumPages() int {
	return len(d.pages)
}

// PageText extracts plain text from the zero-based page index.
func (d *document) PageText(index int) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = fmt.Errorf("page %d: %v", index+1, rec)
		}
	}()

	if index < 0 || index >= len(d.pages) {
		return "", fmt.Errorf("page %d: out of range", index+1)
	}
	p := lpdf.Page{V: d.pages[index]}
	if p.V.IsNull() {
		return "", fmt.Errorf("page %d: missing page object", index+1)
	}
	return p.GetPlainText(nil)
}

// Close releases the file handle.
func (d *document) Close() error {
	return d.file.Close()
}

var _ pdf.Opener = (*Opener)(nil)
