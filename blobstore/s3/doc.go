// Package s3 provides an S3 implementation of the blobstore.ObjectStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("docs/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	db, err := slsdb.New(path, store, map[string]any{})
//
// Any S3-compatible service works through a custom endpoint. Tencent COS,
// for example:
//
//	store, err := s3.New(ctx, "examplebucket-1250000000",
//	    s3.WithRegion("ap-guangzhou"),
//	    s3.WithEndpoint("https://cos.ap-guangzhou.myqcloud.com"),
//	    s3.WithStaticCredentials(secretID, secretKey),
//	    s3.WithoutChecksums(),
//	)
//
// # Features
//
//   - HeadObject existence probe with NotFound/NoSuchKey/404 mapping
//   - CRC32C-validated single-request uploads in the STANDARD storage class
//   - Multipart uploads for documents larger than the configured part size
//   - Configurable prefix for multi-tenant isolation
package s3
