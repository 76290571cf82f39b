package model

import (
	"context"
	"io"
)

// ReceiptStorage persists transaction receipt attachments in object storage.
type ReceiptStorage interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
