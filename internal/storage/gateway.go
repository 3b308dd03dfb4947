package storage

import (
	"context"

	"github.com/talentform/docextract/internal/entity"
)

// Gateway is the narrow object-store surface the pipeline depends on.
// Head returns identifying metadata plus the content fingerprint; Get/Put/Delete
// move whole blobs keyed by path.
type Gateway interface {
	Head(ctx context.Context, key string) (*entity.SourceDocument, error)
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Delete(ctx context.Context, key string) error
}
