package pdf

import (
	"context"
	"errors"
	"strings"
	"testing"

	domainpdf "github.com/felixgeelhaar/pdftool/domain/pdf"
)

func intPtr(n int) *int { return &n }

func TestPageLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		total    int
		maxPages *int
		want     int
	}{
		{name: "nil reads all", total: 7, maxPages: nil, want: 7},
		{name: "below total", total: 7, maxPages: intPtr(3), want: 3},
		{name: "equal total", total: 7, maxPages: intPtr(7), want: 7},
		{name: "above total", total: 7, maxPages: intPtr(50), want: 7},
		{name: "zero", total: 7, maxPages: intPtr(0), want: 0},
		{name: "negative", total: 7, maxPages: intPtr(-4), want: 0},
		{name: "empty document", total: 0, maxPages: intPtr(5), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := PageLimit(tt.total, tt.maxPages); got != tt.want {
				t.Errorf("PageLimit(%d) = %d, want %d", tt.total, got, tt.want)
			}
		})
	}
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	opener := NewMockOpener()
	opener.AddText("three.pdf", "alpha", "beta", "gamma")
	e := NewExtractor(opener)
	ctx := context.Background()

	tests := []struct {
		name     string
		maxPages *int
		want     string
	}{
		{name: "all pages", maxPages: nil, want: "alpha\nbeta\ngamma"},
		{name: "first page", maxPages: intPtr(1), want: "alpha"},
		{name: "first two pages", maxPages: intPtr(2), want: "alpha\nbeta"},
		{name: "limit above total", maxPages: intPtr(10), want: "alpha\nbeta\ngamma"},
		{name: "zero pages", maxPages: intPtr(0), want: ""},
		{name: "negative clamps to zero", maxPages: intPtr(-1), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Extract(ctx, "three.pdf", tt.maxPages)
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Extract() = %q, want %q", got, tt.want)
			}
		})
	}

	if n := opener.OpenHandles(); n != 0 {
		t.Errorf("open handles = %d, want 0", n)
	}
}

func TestExtractor_PrefixProperty(t *testing.T) {
	t.Parallel()

	opener := NewMockOpener()
	opener.AddText("doc.pdf", "one", "two", "three", "four", "five", "six")
	e := NewExtractor(opener)
	ctx := context.Background()

	full, err := e.Extract(ctx, "doc.pdf", nil)
	if err != nil {
		t.Fatalf("Extract(nil) error = %v", err)
	}
	segments := strings.Split(full, "\n")

	for k := 1; k <= len(segments); k++ {
		got, err := e.Extract(ctx, "doc.pdf", intPtr(k))
		if err != nil {
			t.Fatalf("Extract(%d) error = %v", k, err)
		}
		if parts := strings.Split(got, "\n"); len(parts) != k {
			t.Errorf("Extract(%d) has %d segments", k, len(parts))
		}
		if want := strings.Join(segments[:k], "\n"); got != want {
			t.Errorf("Extract(%d) = %q, want prefix %q", k, got, want)
		}
	}
}

func TestExtractor_DegradedPages(t *testing.T) {
	t.Parallel()

	opener := NewMockOpener()
	opener.AddDocument("mixed.pdf",
		MockPage{Text: "first"},
		MockPage{Err: errors.New("bad content stream")},
		MockPage{Panic: "decoder exploded"},
		MockPage{Text: "last"},
	)
	opener.AddDocument("broken.pdf", MockPage{Err: errors.New("unreadable")})

	e := NewExtractor(opener)
	ctx := context.Background()

	got, err := e.Extract(ctx, "mixed.pdf", nil)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if want := "first\n\n\nlast"; got != want {
		t.Errorf("Extract() = %q, want %q", got, want)
	}

	got, err = e.Extract(ctx, "broken.pdf", nil)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got != "" {
		t.Errorf("Extract() = %q, want empty", got)
	}

	n, err := NewCounter(opener).Count(ctx, "broken.pdf")
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 1 {
		t.Errorf("Count() = %d, want 1", n)
	}

	if h := opener.OpenHandles(); h != 0 {
		t.Errorf("open handles = %d, want 0", h)
	}
}

func TestExtractor_OpenErrors(t *testing.T) {
	t.Parallel()

	formatErr := NewMockOpener()
	formatErr.OpenFunc = func(_ context.Context, path string) (domainpdf.Document, error) {
		return nil, domainpdf.ErrFormat
	}

	tests := []struct {
		name    string
		opener  *MockOpener
		wantErr error
	}{
		{name: "missing file", opener: NewMockOpener(), wantErr: domainpdf.ErrFileAccess},
		{name: "not a pdf", opener: formatErr, wantErr: domainpdf.ErrFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewExtractor(tt.opener).Extract(context.Background(), "nope.pdf", nil)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Extract() error = %v, want %v", err, tt.wantErr)
			}
			_, err = NewCounter(tt.opener).Count(context.Background(), "nope.pdf")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Count() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCounter_Stable(t *testing.T) {
	t.Parallel()

	opener := NewMockOpener()
	opener.AddText("four.pdf", "a", "b", "c", "d")
	opener.AddText("empty.pdf")
	c := NewCounter(opener)

	for i := 0; i < 3; i++ {
		n, err := c.Count(context.Background(), "four.pdf")
		if err != nil {
			t.Fatalf("Count() error = %v", err)
		}
		if n != 4 {
			t.Errorf("Count() = %d, want 4", n)
		}
	}

	n, err := c.Count(context.Background(), "empty.pdf")
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 0 {
		t.Errorf("Count() = %d, want 0", n)
	}

	if opener.Opens() != 4 {
		t.Errorf("opens = %d, want 4", opener.Opens())
	}
	if h := opener.OpenHandles(); h != 0 {
		t.Errorf("open handles = %d, want 0", h)
	}
}
