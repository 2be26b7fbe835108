// Package layout interprets Android-flavored layout XML into a tree of
// renderer-neutral visual nodes.
//
// Interpretation is pure: it performs no I/O beyond reading the supplied
// input, holds no shared state, and may be called concurrently.
package layout

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/markolybrx/layout/internal/layoutxml"
)

// Interpret parses xmlText and returns its visual tree.
// Malformed XML yields an errors.ParseError with code ErrMalformed and no tree.
func Interpret(xmlText string) (*VisualNode, error) {
	return InterpretWithOptions(xmlText, Options{})
}

// InterpretWithOptions is Interpret with explicit parse limits.
func InterpretWithOptions(xmlText string, opts Options) (*VisualNode, error) {
	return InterpretReaderWithOptions(strings.NewReader(xmlText), opts)
}

// InterpretReader reads one layout document from r.
func InterpretReader(r io.Reader) (*VisualNode, error) {
	return InterpretReaderWithOptions(r, Options{})
}

// InterpretReaderWithOptions reads one layout document from r with explicit parse limits.
func InterpretReaderWithOptions(r io.Reader, opts Options) (*VisualNode, error) {
	if r == nil {
		return nil, fmt.Errorf("interpret layout: nil reader")
	}
	limits, err := opts.withDefaults()
	if err != nil {
		return nil, fmt.Errorf("interpret layout: %w", err)
	}
	root, err := layoutxml.Parse(r, limits)
	if err != nil {
		return nil, err
	}
	return transform(root), nil
}

// InterpretFile interprets the layout file at path.
func InterpretFile(path string) (*VisualNode, error) {
	return InterpretFileWithOptions(path, Options{})
}

// InterpretFileWithOptions interprets the layout file at path with explicit parse limits.
func InterpretFileWithOptions(path string, opts Options) (node *VisualNode, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open layout file %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close layout file %s: %w", path, closeErr)
		}
	}()

	node, err = InterpretReaderWithOptions(f, opts)
	if err != nil {
		return nil, fmt.Errorf("interpret %s: %w", path, err)
	}
	return node, nil
}
