package testsupport

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"

	"photosort/internal/workspace"
)

// FaultFS wraps a workspace.FS and fails selected operations. It also records
// every mutating call so tests can assert nothing unexpected was touched.
type FaultFS struct {
	Base workspace.FS

	mu       sync.Mutex
	failures map[string]error
	calls    []string
}

// NewFaultFS wraps base, defaulting to the host filesystem.
func NewFaultFS(base workspace.FS) *FaultFS {
	if base == nil {
		base = workspace.OS{}
	}
	return &FaultFS{Base: base, failures: map[string]error{}}
}

// FailOn makes op ("mkdir", "stat", "readdir", "rename", "remove") on path
// return err.
func (f *FaultFS) FailOn(op, path string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[key(op, path)] = err
}

// Calls returns the recorded mutating calls as "op path" strings.
func (f *FaultFS) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *FaultFS) check(op, path string, record bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if record {
		f.calls = append(f.calls, op+" "+filepath.Base(path))
	}
	if err, ok := f.failures[key(op, path)]; ok {
		return &fs.PathError{Op: op, Path: path, Err: err}
	}
	return nil
}

func key(op, path string) string {
	return fmt.Sprintf("%s:%s", op, filepath.Clean(path))
}

func (f *FaultFS) Mkdir(path string) error {
	if err := f.check("mkdir", path, true); err != nil {
		return err
	}
	return f.Base.Mkdir(path)
}

func (f *FaultFS) Stat(path string) (fs.FileInfo, error) {
	if err := f.check("stat", path, false); err != nil {
		return nil, err
	}
	return f.Base.Stat(path)
}

func (f *FaultFS) ReadDir(path string) ([]fs.DirEntry, error) {
	if err := f.check("readdir", path, false); err != nil {
		return nil, err
	}
	return f.Base.ReadDir(path)
}

func (f *FaultFS) Rename(oldPath, newPath string) error {
	if err := f.check("rename", oldPath, true); err != nil {
		return err
	}
	return f.Base.Rename(oldPath, newPath)
}

func (f *FaultFS) Remove(path string) error {
	if err := f.check("remove", path, true); err != nil {
		return err
	}
	return f.Base.Remove(path)
}
