// Package blobstore provides the remote object abstraction a store mirrors
// its documents to.
//
// ObjectStore is the narrow capability the store depends on: an existence
// probe, whole-object download and upload, and delete. Implementations must
// be safe for concurrent use and must report failures as errors rather than
// empty results, because callers decide what to swallow.
//
// # Built-in Implementations
//
//   - MemoryStore: in-process map, for tests and examples
//   - LocalStore: a directory used as a bucket
//   - s3.Store: Amazon S3 and S3-compatible services (Tencent COS, Ceph, ...)
//   - minio.Store: MinIO client for any S3-compatible server
//
// # Wrappers
//
//   - Throttled: request rate limit and in-flight bound
//   - FaultyStore: fault injection and call counting for tests
//
// # Custom Implementations
//
//	type ObjectStore interface {
//	    Exists(ctx, key) (bool, error)       // (false, nil) when absent
//	    Download(ctx, key) ([]byte, error)   // ErrNotFound when absent
//	    Upload(ctx, key, data) error         // unconditional overwrite
//	    Delete(ctx, key) error               // absent is not an error
//	}
package blobstore
