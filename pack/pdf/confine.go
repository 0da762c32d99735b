package pdf

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	domainpdf "github.com/felixgeelhaar/pdftool/domain/pdf"
)

// confinedOpener rejects paths outside root before delegating.
type confinedOpener struct {
	root string
	next domainpdf.Opener
}

// newConfinedOpener returns next unchanged when root is empty.
func newConfinedOpener(root string, next domainpdf.Opener) (domainpdf.Opener, error) {
	if root == "" {
		return next, nil
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("invalid root directory: %w", err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("root directory does not exist: %w", err)
	}
	if !info.IsDir() {
		return nil, errors.New("root path is not a directory")
	}

	// Resolve links in the root itself so comparisons below use real paths.
	realRoot, err := filepath.EvalSymlinks(absRoot)
	if err != nil {
		return nil, fmt.Errorf("invalid root directory: %w", err)
	}

	return &confinedOpener{root: realRoot, next: next}, nil
}

func (o *confinedOpener) Open(ctx context.Context, path string) (domainpdf.Document, error) {
	resolved, err := o.resolve(path)
	if err != nil {
		return nil, err
	}
	return o.next.Open(ctx, resolved)
}

// resolve makes path absolute (relative paths are taken from root) and
// checks that it does not escape root, following symbolic links.
func (o *confinedOpener) resolve(path string) (string, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(o.root, path)
	}
	path = filepath.Clean(path)

	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s does not exist", domainpdf.ErrFileAccess, path)
		}
		return "", fmt.Errorf("%w: %v", domainpdf.ErrFileAccess, err)
	}

	rel, err := filepath.Rel(o.root, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel) {
		return "", fmt.Errorf("%w: %s is outside %s", domainpdf.ErrFileAccess, path, o.root)
	}
	return target, nil
}
