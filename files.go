package slsdb

import (
	"github.com/hupe1980/slsdb/internal/fs"
	"github.com/spf13/afero"
)

// LocalFileAccess is the local filesystem capability a Store needs.
//
// Exists reports an error only for faults other than absence. WriteFile
// must not let a concurrent reader observe a partially written file.
type LocalFileAccess interface {
	Exists(path string) (bool, error)
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
	Remove(path string) error
}

var _ LocalFileAccess = (*fs.Files)(nil)

// OSFiles returns LocalFileAccess backed by the operating system.
// Writes go through a synced temp file renamed over the target.
func OSFiles() LocalFileAccess {
	return fs.NewFiles(fs.Default)
}

// AferoFiles returns LocalFileAccess backed by an afero filesystem.
// A nil fsys selects a fresh in-memory filesystem.
func AferoFiles(fsys afero.Fs) LocalFileAccess {
	return fs.NewFiles(fs.NewAferoFS(fsys))
}
