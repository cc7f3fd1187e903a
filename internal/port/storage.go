package port

import "context"

// ObjectStorage abstracts reading source documents from cloud object storage.
type ObjectStorage interface {
	Download(ctx context.Context, bucket, key string) ([]byte, error)
}
