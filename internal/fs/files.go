package fs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
)

const (
	filePerm = 0o644
	dirPerm  = 0o755
)

// tmpSeq keeps temp names unique within the process.
var tmpSeq atomic.Uint64

// Files performs whole-file operations on a FileSystem.
//
// WriteFile replaces the target atomically: data goes to a sibling temp
// file which is synced and renamed over the target, so a concurrent reader
// sees either the old or the new content, never a partial write.
type Files struct {
	fs FileSystem
}

// NewFiles returns Files backed by fsys, or by Default when fsys is nil.
func NewFiles(fsys FileSystem) *Files {
	if fsys == nil {
		fsys = Default
	}
	return &Files{fs: fsys}
}

// FS returns the underlying FileSystem.
func (f *Files) FS() FileSystem {
	return f.fs
}

// Exists reports whether path exists. Absence is not an error; any other
// stat failure (e.g. permission denied) is returned.
func (f *Files) Exists(path string) (bool, error) {
	_, err := f.fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// ReadFile reads the whole file.
func (f *Files) ReadFile(path string) ([]byte, error) {
	file, err := f.fs.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, &os.PathError{Op: "read", Path: path, Err: err}
	}
	return data, nil
}

// WriteFile atomically replaces path with data, creating parent
// directories as needed.
func (f *Files) WriteFile(path string, data []byte) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := f.fs.MkdirAll(dir, dirPerm); err != nil {
			return err
		}
	}

	tmp := fmt.Sprintf("%s.%d-%d.tmp", path, os.Getpid(), tmpSeq.Add(1))
	file, err := f.fs.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC|os.O_EXCL, filePerm)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.fs.Remove(tmp)
		}
	}()

	if _, err = file.Write(data); err != nil {
		_ = file.Close()
		return &os.PathError{Op: "write", Path: path, Err: err}
	}
	if err = file.Sync(); err != nil {
		_ = file.Close()
		return &os.PathError{Op: "sync", Path: path, Err: err}
	}
	if err = file.Close(); err != nil {
		return &os.PathError{Op: "close", Path: path, Err: err}
	}
	return f.fs.Rename(tmp, path)
}

// Remove deletes path. Removing a missing file returns an error satisfying
// errors.Is(err, os.ErrNotExist).
func (f *Files) Remove(path string) error {
	return f.fs.Remove(path)
}
