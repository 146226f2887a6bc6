package imagestore

import (
	"context"
	"io"
)

// Store keeps the source image for each recorded generation so the history
// view can show what produced the content.
type Store interface {
	Save(ctx context.Context, mimeType string, r io.Reader) (storageKey string, err error)
	Get(ctx context.Context, storageKey string) (io.ReadCloser, string, error)
	Delete(ctx context.Context, storageKey string) error
}
