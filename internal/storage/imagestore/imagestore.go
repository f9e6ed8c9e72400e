package imagestore

import (
	"context"
	"io"
)

// Uploader stores raw image bytes with an external provider and returns a
// durable public URL for the stored image.
type Uploader interface {
	Upload(ctx context.Context, filename string, data io.Reader) (string, error)
}
