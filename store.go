package slsdb

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/hupe1980/slsdb/blobstore"
	"github.com/hupe1980/slsdb/codec"
)

// Store keeps a document in a local file mirrored to a remote object.
//
// The first Read refreshes the local file from the remote object; later
// reads use the local file only. Write saves locally and then uploads.
//
// A Store is not safe for concurrent use.
type Store[T any] struct {
	path         string
	key          string
	remote       blobstore.ObjectStore
	defaultValue T

	codec   codec.Codec
	files   LocalFileAccess
	metrics MetricsCollector
	logger  *Logger

	hydrated  bool
	hydration BestEffort
}

// New creates a Store for the local file at path mirrored to remote.
//
// defaultValue is returned when neither copy holds a document. It is
// returned as is, so callers must not mutate it.
func New[T any](path string, remote blobstore.ObjectStore, defaultValue T, optFns ...Option) (*Store[T], error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	if remote == nil {
		return nil, ErrNilRemote
	}

	o := applyOptions(optFns)

	key := o.key
	if key == "" {
		key = filepath.Base(path)
	}

	return &Store[T]{
		path:         path,
		key:          key,
		remote:       remote,
		defaultValue: defaultValue,
		codec:        o.codec,
		files:        o.files,
		metrics:      o.metricsCollector,
		logger:       o.logger.WithStore(path, key),
	}, nil
}

// NewFromConfig validates cfg, opens the remote it describes and creates a
// Store. Missing credentials fail with *ConfigurationError before any
// network I/O.
func NewFromConfig[T any](ctx context.Context, path string, cfg Config, defaultValue T, optFns ...Option) (*Store[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	remote, err := OpenRemote(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return New(path, remote, defaultValue, optFns...)
}

// Path returns the local file path.
func (s *Store[T]) Path() string { return s.path }

// Key returns the remote object key.
func (s *Store[T]) Key() string { return s.key }

// Hydrated reports whether the one-time refresh from the remote has run.
func (s *Store[T]) Hydrated() bool { return s.hydrated }

// Hydration returns the report of the refresh run by the first Read.
// It is empty until Hydrated returns true.
func (s *Store[T]) Hydration() BestEffort { return s.hydration }

// Read returns the stored document.
//
// The first call refreshes the local copy from the remote. Failures of
// that refresh, including a missing remote object, are absorbed. If the
// local copy is absent it is initialized with the default value (no upload).
// Blank content yields the default value without decoding.
func (s *Store[T]) Read(ctx context.Context) (doc T, err error) {
	start := time.Now()
	initialized := false
	defer func() {
		s.metrics.RecordRead(time.Since(start), err)
		s.logger.LogRead(ctx, initialized, err)
	}()

	if !s.hydrated {
		s.hydrate(ctx)
	}

	data, err := s.files.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return doc, err
		}
		initialized = true
		return s.initialize()
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return s.defaultValue, nil
	}

	if err := s.codec.Unmarshal(data, &doc); err != nil {
		var zero T
		return zero, &MalformedInputError{Path: s.path, Codec: s.codec.Name(), Err: err}
	}
	return doc, nil
}

func (s *Store[T]) initialize() (T, error) {
	var zero T
	data, err := s.codec.Marshal(s.defaultValue)
	if err != nil {
		return zero, err
	}
	if err := s.files.WriteFile(s.path, data); err != nil {
		return zero, err
	}
	return s.defaultValue, nil
}

// Write replaces the local copy with doc and uploads the same bytes,
// overwriting the remote object.
//
// An upload failure is returned as *RemoteAccessError; the local copy is
// already updated at that point and Publish can retry the upload.
func (s *Store[T]) Write(ctx context.Context, doc T) (err error) {
	start := time.Now()
	size := 0
	defer func() {
		s.metrics.RecordWrite(size, time.Since(start), err)
		s.logger.LogWrite(ctx, size, err)
	}()

	data, err := s.codec.Marshal(doc)
	if err != nil {
		return err
	}
	size = len(data)

	if err := s.files.WriteFile(s.path, data); err != nil {
		return err
	}
	return remoteErr("upload", s.key, s.remote.Upload(ctx, s.key, data))
}

// Publish uploads the current local copy, overwriting the remote object.
// Use it to retry the remote half of a failed Write.
func (s *Store[T]) Publish(ctx context.Context) (err error) {
	start := time.Now()
	size := 0
	defer func() {
		s.metrics.RecordWrite(size, time.Since(start), err)
		s.logger.LogWrite(ctx, size, err)
	}()

	data, err := s.files.ReadFile(s.path)
	if err != nil {
		return err
	}
	size = len(data)

	return remoteErr("upload", s.key, s.remote.Upload(ctx, s.key, data))
}

// Clean deletes the local copy, if present, and then the remote object.
// Failures are recorded in the returned report rather than returned.
func (s *Store[T]) Clean(ctx context.Context) BestEffort {
	start := time.Now()
	var report BestEffort

	s.removeLocal(&report)
	report.record("delete remote", remoteErr("delete", s.key, s.remote.Delete(ctx, s.key)))

	s.metrics.RecordClean(time.Since(start), report.OK())
	s.logger.LogClean(ctx, report)
	return report
}

// hydrate replaces the local copy with the remote object, if one exists.
// The store counts as hydrated afterwards whatever the outcome.
func (s *Store[T]) hydrate(ctx context.Context) {
	start := time.Now()
	var report BestEffort
	found := false

	s.removeLocal(&report)

	exists, err := s.remote.Exists(ctx, s.key)
	report.record("probe remote", remoteErr("exists", s.key, err))
	if err == nil && exists {
		data, err := s.remote.Download(ctx, s.key)
		report.record("download", remoteErr("download", s.key, err))
		if err == nil {
			err = s.files.WriteFile(s.path, data)
			report.record("write local", err)
			found = err == nil
		}
	}

	s.hydrated = true
	s.hydration = report

	d := time.Since(start)
	s.metrics.RecordHydrate(found, d)
	s.logger.LogHydrate(ctx, found, report, d)
}

func (s *Store[T]) removeLocal(report *BestEffort) {
	exists, err := s.files.Exists(s.path)
	if err != nil {
		report.record("stat local", err)
		return
	}
	if exists {
		report.record("remove local", s.files.Remove(s.path))
	}
}
