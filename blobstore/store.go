package blobstore

import (
	"context"
	"errors"
	"os"
)

// ErrNotFound is returned when an object does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// ErrInvalidKey is returned for keys that are empty or escape the store root.
var ErrInvalidKey = errors.New("blobstore: invalid key")

// StorageClassStandard is the storage tier used for uploads.
const StorageClassStandard = "STANDARD"

// ObjectStore is a bucket of whole objects addressed by key.
type ObjectStore interface {
	// Exists probes for the object. It returns (false, nil) when the
	// object is absent and an error only when the probe itself failed.
	Exists(ctx context.Context, key string) (bool, error)
	// Download returns the full object content, or ErrNotFound.
	Download(ctx context.Context, key string) ([]byte, error)
	// Upload stores data under key, overwriting any existing object.
	Upload(ctx context.Context, key string, data []byte) error
	// Delete removes the object. Deleting a missing object succeeds.
	Delete(ctx context.Context, key string) error
}
