package slsdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hupe1980/slsdb/blobstore"
	minioblob "github.com/hupe1980/slsdb/blobstore/minio"
	s3blob "github.com/hupe1980/slsdb/blobstore/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Region:    "ap-guangzhou",
		Bucket:    "examplebucket-1250000000",
		SecretID:  "AKIDEXAMPLE",
		SecretKey: "secret",
	}
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())

	err := Config{}.Validate()
	var ce *ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, []string{"region", "bucket", "secret_id", "secret_key"}, ce.Missing)

	for _, tc := range []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"Region", func(c *Config) { c.Region = "" }, "region"},
		{"Bucket", func(c *Config) { c.Bucket = "" }, "bucket"},
		{"SecretID", func(c *Config) { c.SecretID = "" }, "secret_id"},
		{"SecretKey", func(c *Config) { c.SecretKey = "" }, "secret_key"},
		{"MinIOEndpoint", func(c *Config) { c.Provider = ProviderMinIO }, "endpoint"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			var ce *ConfigurationError
			require.ErrorAs(t, cfg.Validate(), &ce)
			assert.Equal(t, []string{tc.field}, ce.Missing)
		})
	}
}

func TestNewFromConfig_FailsFast(t *testing.T) {
	cfg := validConfig()
	cfg.SecretKey = ""

	_, err := NewFromConfig(context.Background(), filepath.Join(t.TempDir(), "db.json"), cfg, document{})
	var ce *ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, []string{"secret_key"}, ce.Missing)
}

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, ProviderS3, cfg.Provider)
	})

	t.Run("TOML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "slsdb.toml")
		require.NoError(t, os.WriteFile(path, []byte(`
provider = "cos"
region = "ap-guangzhou"
bucket = "examplebucket-1250000000"
secret_id = "AKIDEXAMPLE"
secret_key = "secret"
max_inflight = 4
`), 0o644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, ProviderCOS, cfg.Provider)
		assert.Equal(t, "ap-guangzhou", cfg.Region)
		assert.Equal(t, "examplebucket-1250000000", cfg.Bucket)
		assert.Equal(t, "AKIDEXAMPLE", cfg.SecretID)
		assert.Equal(t, "secret", cfg.SecretKey)
		assert.Equal(t, 4, cfg.MaxInflight)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("YAMLWithEnvOverride", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "slsdb.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
provider: minio
endpoint: localhost:9000
bucket: file-bucket
insecure: true
`), 0o644))

		t.Setenv("SLSDB_BUCKET", "env-bucket")
		t.Setenv("SLSDB_SECRET_ID", "minioadmin")
		t.Setenv("SLSDB_REQUESTS_PER_SECOND", "2.5")
		t.Setenv("SLSDB_PATH_STYLE", "true")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, ProviderMinIO, cfg.Provider)
		assert.Equal(t, "localhost:9000", cfg.Endpoint)
		assert.Equal(t, "env-bucket", cfg.Bucket)
		assert.Equal(t, "minioadmin", cfg.SecretID)
		assert.True(t, cfg.Insecure)
		assert.True(t, cfg.PathStyle)
		assert.InDelta(t, 2.5, cfg.RequestsPerSecond, 1e-9)
	})

	t.Run("UnsupportedFormat", func(t *testing.T) {
		_, err := LoadConfig("slsdb.ini")
		assert.Error(t, err)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
		assert.Error(t, err)
	})
}

func TestOpenRemote(t *testing.T) {
	ctx := context.Background()
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(t.TempDir(), "config"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(t.TempDir(), "credentials"))
	t.Setenv("AWS_PROFILE", "")

	t.Run("S3", func(t *testing.T) {
		remote, err := OpenRemote(ctx, validConfig())
		require.NoError(t, err)
		assert.IsType(t, &s3blob.Store{}, remote)
	})

	t.Run("COS", func(t *testing.T) {
		cfg := validConfig()
		cfg.Provider = "COS"
		remote, err := OpenRemote(ctx, cfg)
		require.NoError(t, err)
		assert.IsType(t, &s3blob.Store{}, remote)
		assert.Equal(t, "https://cos.ap-guangzhou.myqcloud.com", cosEndpoint(cfg.Region))
	})

	t.Run("MinIOThrottled", func(t *testing.T) {
		cfg := validConfig()
		cfg.Provider = ProviderMinIO
		cfg.Endpoint = "http://localhost:9000/"
		cfg.Insecure = true
		cfg.MaxInflight = 2

		remote, err := OpenRemote(ctx, cfg)
		require.NoError(t, err)
		throttled, ok := remote.(*blobstore.Throttled)
		require.True(t, ok)
		assert.IsType(t, &minioblob.Store{}, throttled.Unwrap())
	})

	t.Run("UnknownProvider", func(t *testing.T) {
		cfg := validConfig()
		cfg.Provider = "gcs"
		_, err := OpenRemote(ctx, cfg)
		assert.ErrorContains(t, err, "unknown provider")
	})
}

func TestStripScheme(t *testing.T) {
	assert.Equal(t, "localhost:9000", stripScheme("http://localhost:9000/"))
	assert.Equal(t, "cos.ap-guangzhou.myqcloud.com", stripScheme("https://cos.ap-guangzhou.myqcloud.com"))
	assert.Equal(t, "minio:9000", stripScheme("minio:9000"))
}
