// Package slsdb provides a small document store backed by a local file that
// is mirrored to a remote object-storage bucket.
//
// The local file is a cache of the remote object. The first Read of a Store
// refreshes the local file from the bucket; every Write saves locally and
// then uploads the same bytes.
//
// # Quick Start
//
//	type State struct {
//	    Posts []string `json:"posts"`
//	}
//
//	ctx := context.Background()
//	remote, _ := s3.New(ctx, "my-bucket", s3.WithRegion("eu-central-1"))
//	db, _ := slsdb.New("/tmp/db.json", remote, State{})
//
//	state, _ := db.Read(ctx)   // hydrates from the bucket once
//	state.Posts = append(state.Posts, "hello")
//	_ = db.Write(ctx, state)   // local save, then upload
//
// # From Configuration
//
// NewFromConfig builds the remote from a Config, which LoadConfig reads from
// a TOML or YAML file and SLSDB_* environment variables:
//
//	cfg, _ := slsdb.LoadConfig("slsdb.toml")
//	db, _ := slsdb.NewFromConfig(ctx, "/tmp/db.json", cfg, map[string]any{})
//
// Provider "cos" targets Tencent COS through its S3-compatible endpoint.
//
// # Failure Model
//
// Hydration and Clean are best-effort: remote and local failures are
// recorded in a BestEffort report instead of being returned. A failed upload
// in Write is returned as a *RemoteAccessError with the local file already
// updated; Publish retries the upload from the local file.
//
// # Serialization
//
// Documents are encoded with codec.Default (indented JSON) unless WithCodec
// selects another codec:
//
//	db, _ := slsdb.New(path, remote, State{}, slsdb.WithCodec(codec.YAML{}))
//
// A Store is not safe for concurrent use.
package slsdb
