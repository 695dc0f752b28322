package classify

import (
	"fmt"
	"path/filepath"
	"sort"

	"photosort/internal/media"
	"photosort/internal/workspace"
)

// ListFiles returns the regular files in dir whose extension matches kind,
// sorted by name. Subdirectories are skipped; symlinks are followed and kept
// only when they resolve to a regular file. The scan is not recursive.
func ListFiles(fsys workspace.FS, dir string, kind media.Kind) ([]media.FileEntry, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s files in %s: %w", kind, dir, err)
	}

	var files []media.FileEntry
	for _, entry := range entries {
		name := entry.Name()
		if !kind.Matches(name) {
			continue
		}
		if entry.IsDir() {
			continue
		}
		info, err := fsys.Stat(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", filepath.Join(dir, name), err)
		}
		if !info.Mode().IsRegular() {
			continue
		}
		files = append(files, media.FileEntry{Dir: dir, Name: name})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// HasAnyMatch reports whether dir holds at least one file of any of kinds.
func HasAnyMatch(fsys workspace.FS, dir string, kinds ...media.Kind) (bool, error) {
	for _, kind := range kinds {
		files, err := ListFiles(fsys, dir, kind)
		if err != nil {
			return false, err
		}
		if len(files) > 0 {
			return true, nil
		}
	}
	return false, nil
}

// Snapshot lists every kind in dir.
func Snapshot(fsys workspace.FS, dir string) (map[media.Kind][]media.FileEntry, error) {
	out := make(map[media.Kind][]media.FileEntry, len(media.Kinds))
	for _, kind := range media.Kinds {
		files, err := ListFiles(fsys, dir, kind)
		if err != nil {
			return nil, err
		}
		out[kind] = files
	}
	return out, nil
}
