package workspace

import (
	"errors"
	"io/fs"
	"os"

	"photosort/internal/fileutil"
)

// FS is the set of filesystem primitives the organizer relies on. Paths are
// absolute or relative to the process working directory.
type FS interface {
	Mkdir(path string) error
	Stat(path string) (fs.FileInfo, error)
	ReadDir(path string) ([]fs.DirEntry, error)
	Rename(oldPath, newPath string) error
	Remove(path string) error
}

// OS implements FS on the host filesystem.
type OS struct{}

func (OS) Mkdir(path string) error {
	return os.Mkdir(path, 0o755)
}

func (OS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

func (OS) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}

// Rename moves a file, falling back to a verified copy across filesystems.
// Existing targets are never replaced.
func (OS) Rename(oldPath, newPath string) error {
	return fileutil.MoveFile(oldPath, newPath)
}

func (OS) Remove(path string) error {
	return os.Remove(path)
}

// Exists reports whether path exists. Errors other than not-exist are
// returned so callers do not mistake a permission failure for absence.
func Exists(fsys FS, path string) (bool, error) {
	_, err := fsys.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// IsDir reports whether path exists and is a directory.
func IsDir(fsys FS, path string) (bool, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}
