package s3

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hupe1980/slsdb/blobstore"
)

// Store implements blobstore.ObjectStore for S3.
type Store struct {
	client   Client
	bucket   string
	prefix   string
	upload   UploadConfig
	uploader *manager.Uploader
}

var _ blobstore.ObjectStore = (*Store)(nil)

// NewStore creates a new S3 object store.
// rootPrefix is prepended to all keys (e.g. "my-db/").
func NewStore(client Client, bucket, rootPrefix string, optFns ...func(*UploadConfig)) *Store {
	cfg := DefaultUploadConfig()
	for _, fn := range optFns {
		fn(&cfg)
	}
	if cfg.PartSize <= 0 {
		cfg.PartSize = DefaultUploadConfig().PartSize
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultUploadConfig().Concurrency
	}
	return &Store{
		client:   client,
		bucket:   bucket,
		prefix:   rootPrefix,
		upload:   cfg,
		uploader: newUploader(client, cfg),
	}
}

// Options configures New.
type Options struct {
	Region       string
	Endpoint     string
	Prefix       string
	UsePathStyle bool
	Credentials  aws.CredentialsProvider
	Upload       UploadConfig
	// DisableChecksums turns off CRC32C headers and the SDK's default
	// request checksums, which some S3-compatible services reject.
	DisableChecksums bool
}

// WithRegion sets the bucket region.
func WithRegion(region string) func(*Options) {
	return func(o *Options) { o.Region = region }
}

// WithEndpoint points the client at an S3-compatible endpoint.
func WithEndpoint(endpoint string) func(*Options) {
	return func(o *Options) { o.Endpoint = endpoint }
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) func(*Options) {
	return func(o *Options) { o.Prefix = prefix }
}

// WithPathStyle enables path-style addressing (bucket in the URL path).
func WithPathStyle() func(*Options) {
	return func(o *Options) { o.UsePathStyle = true }
}

// WithStaticCredentials uses a fixed access key pair instead of the
// default credential chain.
func WithStaticCredentials(accessKeyID, secretAccessKey string) func(*Options) {
	return func(o *Options) {
		o.Credentials = credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, "")
	}
}

// WithoutChecksums disables request checksums.
func WithoutChecksums() func(*Options) {
	return func(o *Options) { o.DisableChecksums = true }
}

// New loads the AWS configuration and returns a Store for bucket.
func New(ctx context.Context, bucket string, optFns ...func(*Options)) (*Store, error) {
	o := Options{Upload: DefaultUploadConfig()}
	for _, fn := range optFns {
		fn(&o)
	}

	var loadOpts []func(*config.LoadOptions) error
	if o.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.Region))
	}
	if o.Credentials != nil {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(o.Credentials))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("s3: load config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(so *s3.Options) {
		if o.Endpoint != "" {
			so.BaseEndpoint = aws.String(o.Endpoint)
		}
		so.UsePathStyle = o.UsePathStyle
		if o.DisableChecksums {
			so.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
			so.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
		}
	})

	return NewStore(client, bucket, o.Prefix, func(u *UploadConfig) {
		*u = o.Upload
		if o.DisableChecksums {
			u.EnableChecksum = false
		}
	}), nil
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

// Exists probes the object with HeadObject.
func (s *Store) Exists(ctx context.Context, name string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Download fetches the whole object.
func (s *Store) Download(ctx context.Context, name string) ([]byte, error) {
	resp, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, blobstore.ErrNotFound
		}
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	return io.ReadAll(resp.Body)
}

// Upload overwrites the object. Objects larger than the part size use a
// multipart upload.
func (s *Store) Upload(ctx context.Context, name string, data []byte) error {
	key := s.key(name)
	if int64(len(data)) > s.upload.PartSize {
		return multipartUpload(ctx, s.uploader, s.bucket, key, data, s.upload.EnableChecksum)
	}
	return putObject(ctx, s.client, s.bucket, key, data, s.upload.EnableChecksum)
}

// Delete removes the object.
func (s *Store) Delete(ctx context.Context, name string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil && !isNotFound(err) {
		return err
	}
	return nil
}
