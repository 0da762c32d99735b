// Package pdftest builds small, well-formed PDF files for tests.
package pdftest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Page describes a single page of a generated document.
type Page struct {
	// Lines are drawn top to bottom with one Tj operator each.
	Lines []string

	// Corrupt replaces the content stream with bytes that claim to be
	// Flate-compressed but are not, so the page cannot be decoded.
	Corrupt bool
}

// TextPage returns a page that draws the given lines.
func TextPage(lines ...string) Page {
	return Page{Lines: lines}
}

// CorruptPage returns a page whose content stream cannot be decoded.
func CorruptPage() Page {
	return Page{Corrupt: true}
}

// Build renders pages into a PDF byte stream with a classic xref table.
func Build(pages ...Page) []byte {
	// Object layout: 1 catalog, 2 page tree, 3 font, then (page, content)
	// pairs starting at 4.
	var objects []string

	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}

	objects = append(objects,
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
	)

	for i, p := range pages {
		contentID := 5 + 2*i
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", contentID),
			contentStream(p),
		)
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	return buf.Bytes()
}

func contentStream(p Page) string {
	if p.Corrupt {
		data := "this is not deflate data"
		return fmt.Sprintf("<< /Length %d /Filter /FlateDecode >>\nstream\n%s\nendstream", len(data), data)
	}

	var ops strings.Builder
	ops.WriteString("BT\n/F1 12 Tf\n72 720 Td\n")
	for i, line := range p.Lines {
		if i > 0 {
			ops.WriteString("0 -16 Td\n")
		}
		fmt.Fprintf(&ops, "(%s) Tj\n", escape(line))
	}
	ops.WriteString("ET")

	data := ops.String()
	return fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(data), data)
}

func escape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}

// WriteFile writes a generated document into a temporary directory owned by t
// and returns its path.
func WriteFile(t testing.TB, name string, pages ...Page) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, Build(pages...), 0600); err != nil {
		t.Fatalf("failed to write pdf fixture: %v", err)
	}
	return path
}
