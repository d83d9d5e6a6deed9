package fs

import (
	"os"

	"github.com/spf13/afero"
)

// AferoFS adapts an afero.Fs to FileSystem.
//
// With afero.NewMemMapFs it gives tests a filesystem that never touches disk.
type AferoFS struct {
	Fs afero.Fs
}

// NewAferoFS wraps fsys. A nil fsys is replaced by a fresh in-memory filesystem.
func NewAferoFS(fsys afero.Fs) AferoFS {
	if fsys == nil {
		fsys = afero.NewMemMapFs()
	}
	return AferoFS{Fs: fsys}
}

func (a AferoFS) OpenFile(name string, flag int, perm os.FileMode) (File, error) {
	f, err := a.Fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (a AferoFS) Remove(name string) error              { return a.Fs.Remove(name) }
func (a AferoFS) Rename(oldpath, newpath string) error  { return a.Fs.Rename(oldpath, newpath) }
func (a AferoFS) Stat(name string) (os.FileInfo, error) { return a.Fs.Stat(name) }
func (a AferoFS) MkdirAll(path string, perm os.FileMode) error {
	return a.Fs.MkdirAll(path, perm)
}
