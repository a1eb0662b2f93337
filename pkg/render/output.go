package render

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Output is a render destination. Close must be called after rendering to
// release file handles; it is safe on stdout-backed outputs.
type Output struct {
	io.Writer
	closer io.Closer
}

// NewOutput returns an output for the given file path, or stdout when the
// path is empty.
func NewOutput(path string) (*Output, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return &Output{Writer: os.Stdout}, nil
	}
	file, err := os.Create(trimmed)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %s: %w", trimmed, err)
	}
	return &Output{Writer: file, closer: file}, nil
}

// Close releases the underlying file handle, if any.
func (o *Output) Close() error {
	if o.closer != nil {
		return o.closer.Close()
	}
	return nil
}
