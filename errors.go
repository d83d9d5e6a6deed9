package slsdb

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNilRemote is returned when a Store is constructed without a remote.
	ErrNilRemote = errors.New("slsdb: remote object store is nil")

	// ErrEmptyPath is returned when a Store is constructed without a local path.
	ErrEmptyPath = errors.New("slsdb: local path is empty")
)

// ConfigurationError indicates missing remote-access settings.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("slsdb: missing required configuration: %s", strings.Join(e.Missing, ", "))
}

// MalformedInputError indicates that the local copy exists but cannot be decoded.
//
// The original codec error can be accessed via errors.Unwrap.
type MalformedInputError struct {
	Path  string
	Codec string
	Err   error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("slsdb: malformed %s in %s: %v", e.Codec, e.Path, e.Err)
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

// RemoteAccessError wraps a failure of the remote object store.
type RemoteAccessError struct {
	Op  string
	Key string
	Err error
}

func (e *RemoteAccessError) Error() string {
	return fmt.Sprintf("slsdb: remote %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *RemoteAccessError) Unwrap() error { return e.Err }

func remoteErr(op, key string, err error) error {
	if err == nil {
		return nil
	}
	return &RemoteAccessError{Op: op, Key: key, Err: err}
}
