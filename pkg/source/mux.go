package source

import (
	"context"
	"fmt"
	"io"
)

// Mux sends s3:// paths to Remote and everything else to Local.
type Mux struct {
	Local  Source
	Remote Source
}

func (m Mux) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if IsS3Path(path) {
		if m.Remote == nil {
			return nil, fmt.Errorf("no s3 source configured for %q", path)
		}
		return m.Remote.Open(ctx, path)
	}
	return m.Local.Open(ctx, path)
}
