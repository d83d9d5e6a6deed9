package slsdb

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/hupe1980/slsdb/blobstore"
	minioblob "github.com/hupe1980/slsdb/blobstore/minio"
	s3blob "github.com/hupe1980/slsdb/blobstore/s3"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Remote providers understood by OpenRemote.
const (
	ProviderS3    = "s3"
	ProviderCOS   = "cos"
	ProviderMinIO = "minio"
)

// EnvPrefix is the prefix of environment variables read by LoadConfig.
// SLSDB_SECRET_ID sets secret_id, SLSDB_BUCKET sets bucket, and so on.
const EnvPrefix = "SLSDB_"

// Config describes the remote bucket of a Store.
type Config struct {
	Provider  string `koanf:"provider"`
	Region    string `koanf:"region"`
	Bucket    string `koanf:"bucket"`
	SecretID  string `koanf:"secret_id"`
	SecretKey string `koanf:"secret_key"`

	// Endpoint overrides the provider endpoint. Required for minio.
	Endpoint  string `koanf:"endpoint"`
	Prefix    string `koanf:"prefix"`
	PathStyle bool   `koanf:"path_style"`
	// Insecure selects plain HTTP for minio.
	Insecure bool `koanf:"insecure"`

	// Request limits. Zero disables the limit.
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	Burst             int     `koanf:"burst"`
	MaxInflight       int     `koanf:"max_inflight"`
}

// Validate reports every missing required field in a *ConfigurationError.
func (c Config) Validate() error {
	var missing []string
	if c.Region == "" {
		missing = append(missing, "region")
	}
	if c.Bucket == "" {
		missing = append(missing, "bucket")
	}
	if c.SecretID == "" {
		missing = append(missing, "secret_id")
	}
	if c.SecretKey == "" {
		missing = append(missing, "secret_key")
	}
	if c.provider() == ProviderMinIO && c.Endpoint == "" {
		missing = append(missing, "endpoint")
	}
	if len(missing) > 0 {
		return &ConfigurationError{Missing: missing}
	}
	return nil
}

func (c Config) provider() string {
	if c.Provider == "" {
		return ProviderS3
	}
	return strings.ToLower(c.Provider)
}

func defaultConfig() map[string]any {
	return map[string]any{
		"provider": ProviderS3,
	}
}

// LoadConfig merges, in order, defaults, the given TOML or YAML file (if
// path is not empty) and SLSDB_* environment variables.
func LoadConfig(path string) (Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaultConfig(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return Config{}, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return Config{}, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	// 3. Env vars
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, fmt.Errorf("slsdb: unsupported config format %q", filepath.Ext(path))
	}
}

// cosEndpoint returns the S3-compatible endpoint of Tencent COS for region.
func cosEndpoint(region string) string {
	return fmt.Sprintf("https://cos.%s.myqcloud.com", region)
}

// OpenRemote validates cfg and builds the ObjectStore it describes. No
// request is sent to the bucket.
func OpenRemote(ctx context.Context, cfg Config) (blobstore.ObjectStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		remote blobstore.ObjectStore
		err    error
	)
	switch cfg.provider() {
	case ProviderS3:
		remote, err = openS3(ctx, cfg, cfg.Endpoint, false)
	case ProviderCOS:
		endpoint := cfg.Endpoint
		if endpoint == "" {
			endpoint = cosEndpoint(cfg.Region)
		}
		remote, err = openS3(ctx, cfg, endpoint, true)
	case ProviderMinIO:
		remote, err = minioblob.Dial(minioblob.Config{
			Endpoint:  stripScheme(cfg.Endpoint),
			Region:    cfg.Region,
			AccessKey: cfg.SecretID,
			SecretKey: cfg.SecretKey,
			Bucket:    cfg.Bucket,
			Prefix:    cfg.Prefix,
			Secure:    !cfg.Insecure,
		})
	default:
		return nil, fmt.Errorf("slsdb: unknown provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	if cfg.RequestsPerSecond > 0 || cfg.MaxInflight > 0 {
		remote = blobstore.NewThrottled(remote, blobstore.ThrottleConfig{
			RequestsPerSecond: cfg.RequestsPerSecond,
			Burst:             cfg.Burst,
			MaxInflight:       int64(cfg.MaxInflight),
		})
	}
	return remote, nil
}

func openS3(ctx context.Context, cfg Config, endpoint string, noChecksums bool) (*s3blob.Store, error) {
	opts := []func(*s3blob.Options){
		s3blob.WithRegion(cfg.Region),
		s3blob.WithStaticCredentials(cfg.SecretID, cfg.SecretKey),
		s3blob.WithPrefix(cfg.Prefix),
	}
	if endpoint != "" {
		opts = append(opts, s3blob.WithEndpoint(endpoint))
	}
	if cfg.PathStyle {
		opts = append(opts, s3blob.WithPathStyle())
	}
	if noChecksums {
		opts = append(opts, s3blob.WithoutChecksums())
	}
	return s3blob.New(ctx, cfg.Bucket, opts...)
}

// minio-go takes host[:port]; the scheme comes from Secure.
func stripScheme(endpoint string) string {
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")
	return strings.TrimSuffix(endpoint, "/")
}
