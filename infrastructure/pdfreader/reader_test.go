package pdfreader_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/felixgeelhaar/pdftool/domain/pdf"
	"github.com/felixgeelhaar/pdftool/infrastructure/pdfreader"
	"github.com/felixgeelhaar/pdftool/internal/pdftest"
)

func TestOpener_Open(t *testing.T) {
	t.Parallel()

	path := pdftest.WriteFile(t, "doc.pdf",
		pdftest.TextPage("Hello first page"),
		pdftest.TextPage("Second page here"),
		pdftest.TextPage("Third and last"),
	)

	doc, err := pdfreader.NewOpener().Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer doc.Close()

	if got := doc.NumPages(); got != 3 {
		t.Fatalf("NumPages() = %d, want 3", got)
	}

	want := []string{"Hello first page", "Second page here", "Third and last"}
	for i, w := range want {
		text, err := doc.PageText(i)
		if err != nil {
			t.Fatalf("PageText(%d) error = %v", i, err)
		}
		if !strings.Contains(text, w) {
			t.Errorf("PageText(%d) = %q, want it to contain %q", i, text, w)
		}
	}
}

func TestOpener_PageOrderStable(t *testing.T) {
	t.Parallel()

	path := pdftest.WriteFile(t, "doc.pdf",
		pdftest.TextPage("alpha"),
		pdftest.TextPage("beta"),
	)
	opener := pdfreader.NewOpener()

	read := func() []string {
		doc, err := opener.Open(context.Background(), path)
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		defer doc.Close()

		var pages []string
		for i := 0; i < doc.NumPages(); i++ {
			text, _ := doc.PageText(i)
			pages = append(pages, text)
		}
		return pages
	}

	first, second := read(), read()
	if len(first) != len(second) {
		t.Fatalf("page counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("page %d differs across opens: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestOpener_CorruptPage(t *testing.T) {
	t.Parallel()

	path := pdftest.WriteFile(t, "corrupt.pdf", pdftest.CorruptPage())

	doc, err := pdfreader.NewOpener().Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer doc.Close()

	if got := doc.NumPages(); got != 1 {
		t.Errorf("NumPages() = %d, want 1", got)
	}

	// Either an error or empty text is acceptable; garbage is not.
	text, _ := doc.PageText(0)
	if strings.TrimSpace(text) != "" {
		t.Errorf("PageText(0) = %q, want empty", text)
	}
}

func TestOpener_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	notPDF := filepath.Join(dir, "notes.pdf")
	if err := os.WriteFile(notPDF, []byte("just some plain text, not a pdf"), 0600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	empty := filepath.Join(dir, "empty.pdf")
	if err := os.WriteFile(empty, nil, 0600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	truncated := filepath.Join(dir, "truncated.pdf")
	full := pdftest.Build(pdftest.TextPage("hello"))
	if err := os.WriteFile(truncated, full[:len(full)/2], 0600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	tests := []struct {
		name string
		path string
		want error
	}{
		{name: "missing file", path: filepath.Join(dir, "missing.pdf"), want: pdf.ErrFileAccess},
		{name: "directory", path: dir, want: pdf.ErrFileAccess},
		{name: "not a pdf", path: notPDF, want: pdf.ErrFormat},
		{name: "empty file", path: empty, want: pdf.ErrFormat},
		{name: "truncated", path: truncated, want: pdf.ErrFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := pdfreader.NewOpener().Open(context.Background(), tt.path)
			if err == nil {
				doc.Close()
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Open() error = %v, want %v", err, tt.want)
			}
		})
	}
}

// writeEdited writes data with old replaced by replacement. Both must have the
// same length so the xref offsets stay valid.
func writeEdited(t *testing.T, name string, data []byte, old, replacement string) string {
	t.Helper()

	if len(old) != len(replacement) {
		t.Fatalf("replacement %q must have the length of %q", replacement, old)
	}
	if !bytes.Contains(data, []byte(old)) {
		t.Fatalf("fixture does not contain %q", old)
	}

	path := filepath.Join(t.TempDir(), name)
	edited := bytes.Replace(data, []byte(old), []byte(replacement), 1)
	if err := os.WriteFile(path, edited, 0600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	return path
}

func TestOpener_MissingCatalog(t *testing.T) {
	t.Parallel()

	data := pdftest.Build(pdftest.TextPage("one"), pdftest.TextPage("two"))

	tests := []struct {
		name        string
		old         string
		replacement string
	}{
		{name: "no root", old: "/Root", replacement: "/Rxxx"},
		{name: "no pages", old: "/Pages 2 0 R", replacement: "/Pxxxx 2 0 R"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeEdited(t, "broken.pdf", data, tt.old, tt.replacement)

			doc, err := pdfreader.NewOpener().Open(context.Background(), path)
			if err == nil {
				doc.Close()
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, pdf.ErrFormat) {
				t.Errorf("Open() error = %v, want %v", err, pdf.ErrFormat)
			}
		})
	}
}

func TestOpener_PageTreeWithoutCount(t *testing.T) {
	t.Parallel()

	data := pdftest.Build(pdftest.TextPage("first sheet"), pdftest.TextPage("second sheet"))
	path := writeEdited(t, "nocount.pdf", data, "/Count 2", "/Cxxxx 2")

	doc, err := pdfreader.NewOpener().Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer doc.Close()

	if got := doc.NumPages(); got != 2 {
		t.Fatalf("NumPages() = %d, want 2", got)
	}

	text, err := doc.PageText(1)
	if err != nil {
		t.Fatalf("PageText(1) error = %v", err)
	}
	if !strings.Contains(text, "second sheet") {
		t.Errorf("PageText(1) = %q, want it to contain %q", text, "second sheet")
	}
}

func TestOpener_PageTextOutOfRange(t *testing.T) {
	t.Parallel()

	path := pdftest.WriteFile(t, "one.pdf", pdftest.TextPage("only"))

	doc, err := pdfreader.NewOpener().Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer doc.Close()

	for _, index := range []int{-1, 1} {
		if _, err := doc.PageText(index); err == nil {
			t.Errorf("PageText(%d) expected error, got nil", index)
		}
	}
}
