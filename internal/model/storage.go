package model

import (
	"context"
	"io"
)

// Upload is the result of a successful blob store upload.
type Upload struct {
	// URL is the public, provider-issued URL of the stored object.
	URL string
	// StoredName is the unique name the object was stored under.
	StoredName string
}

// BlobStore uploads media to an external storage provider. Implementations
// must be safe for concurrent use: one client is constructed at process
// start and shared.
type BlobStore interface {
	Upload(ctx context.Context, reader io.Reader, size int64, filename, contentType string) (Upload, error)
	Remove(ctx context.Context, storedName string) error
}
