package source

import (
	"context"
	"io"
	"io/fs"
	"strings"
)

// Memory serves documents from a map of path to content.
type Memory map[string]string

func (m Memory) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	content, ok := m[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return io.NopCloser(strings.NewReader(content)), nil
}
