package source

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// Files reads from the local filesystem. Relative paths resolve against Root,
// or the working directory when Root is empty.
type Files struct {
	Root string
}

func (f Files) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.Root != "" && !filepath.IsAbs(path) {
		path = filepath.Join(f.Root, path)
	}
	return os.Open(path)
}
