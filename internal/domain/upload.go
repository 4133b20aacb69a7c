package domain

import (
	"context"
	"io"
)

// FileStore is the external upload collaborator. An uploaded resume or photo
// comes back as an opaque URL; the core neither validates the content nor
// retries failed uploads.
type FileStore interface {
	Upload(ctx context.Context, filename string, content io.Reader) (string, error)
}
