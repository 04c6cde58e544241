package filestorage

import "context"

// PutOptions carries per-object metadata for writes.
type PutOptions struct {
	ContentType  string
	CacheControl string
}

// ObjectStorage is the minimal object-store surface the photo pipeline
// needs. Implemented by LocalStorage for development and S3Storage for
// production.
type ObjectStorage interface {
	// Put writes an object under the given key, overwriting any previous
	// object at that key.
	Put(ctx context.Context, key string, data []byte, opts PutOptions) error

	// Get reads an object back in full.
	Get(ctx context.Context, key string) ([]byte, error)

	// Exists reports whether an object is present under the key.
	Exists(ctx context.Context, key string) (bool, error)

	// PublicURL returns the URL clients use to fetch the object.
	PublicURL(key string) string

	// Bucket names the backing bucket (or local root) for upload
	// instructions.
	Bucket() string
}
