// Package source provides the readable sources the loader pulls text from:
// local files, S3 objects and in-memory buffers.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
)

var (
	ErrOpen = errors.New("unable to open source")
	ErrRead = errors.New("unable to read source")
)

// Source opens a named document for reading.
type Source interface {
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// Func adapts a plain function to Source.
type Func func(ctx context.Context, path string) (io.ReadCloser, error)

func (f Func) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	return f(ctx, path)
}

// ReadAll reads the whole document at path. Errors wrap ErrOpen or ErrRead.
func ReadAll(ctx context.Context, src Source, path string) (string, error) {
	rc, err := src.Open(ctx, path)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrOpen, path, err)
	}
	defer rc.Close()

	buf, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrRead, path, err)
	}
	return string(buf), nil
}
