package pdf

import (
	"context"
	"fmt"
	"sync"

	domainpdf "github.com/felixgeelhaar/pdftool/domain/pdf"
)

// MockPage is a page served by MockOpener.
type MockPage struct {
	Text string

	// Err is returned by PageText instead of Text.
	Err error

	// Panic makes PageText panic with this value when non-nil.
	Panic any
}

// MockOpener is an in-memory document opener for testing.
type MockOpener struct {
	// OpenFunc overrides the default lookup when set.
	OpenFunc func(ctx context.Context, path string) (domainpdf.Document, error)

	mu     sync.Mutex
	docs   map[string][]MockPage
	opens  int
	closes int
}

// NewMockOpener creates an empty mock opener.
func NewMockOpener() *MockOpener {
	return &MockOpener{
		docs: make(map[string][]MockPage),
	}
}

// AddDocument registers a document at path.
func (o *MockOpener) AddDocument(path string, pages ...MockPage) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.docs[path] = pages
}

// AddText registers a document whose pages hold the given texts.
func (o *MockOpener) AddText(path string, texts ...string) {
	pages := make([]MockPage, len(texts))
	for i, text := range texts {
		pages[i] = MockPage{Text: text}
	}
	o.AddDocument(path, pages...)
}

// Open implements domainpdf.Opener.
func (o *MockOpener) Open(ctx context.Context, path string) (domainpdf.Document, error) {
	if o.OpenFunc != nil {
		return o.OpenFunc(ctx, path)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	pages, ok := o.docs[path]
	if !ok {
		return nil, fmt.Errorf("%w: open %s: no such file", domainpdf.ErrFileAccess, path)
	}
	o.opens++
	return &mockDocument{owner: o, pages: pages}, nil
}

// Opens returns how many documents were opened successfully.
func (o *MockOpener) Opens() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.opens
}

// OpenHandles returns how many opened documents have not been closed.
func (o *MockOpener) OpenHandles() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.opens - o.closes
}

type mockDocument struct {
	owner  *MockOpener
	pages  []MockPage
	closed bool
}

func (d *mockDocument) NumPages() int {
	return len(d.pages)
}

func (d *mockDocument) PageText(index int) (string, error) {
	if index < 0 || index >= len(d.pages) {
		return "", fmt.Errorf("page %d out of range", index+1)
	}
	p := d.pages[index]
	if p.Panic != nil {
		panic(p.Panic)
	}
	if p.Err != nil {
		return "", p.Err
	}
	return p.Text, nil
}

func (d *mockDocument) Close() error {
	d.owner.mu.Lock()
	defer d.owner.mu.Unlock()
	if !d.closed {
		d.closed = true
		d.owner.closes++
	}
	return nil
}
