package testsupport

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// WriteFiles creates each named file under dir with a small payload derived
// from its name. Intermediate directories are created as needed.
func WriteFiles(t testing.TB, dir string, names ...string) {
	t.Helper()

	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir for %s: %v", path, err)
		}
		if err := os.WriteFile(path, []byte("photo:"+name), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
}

// MkdirAll creates each directory under root.
func MkdirAll(t testing.TB, root string, dirs ...string) {
	t.Helper()

	for _, dir := range dirs {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
}

// ListNames returns the sorted entry names in dir, or nil when dir is missing.
func ListNames(t testing.TB, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		t.Fatalf("read dir %s: %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}
