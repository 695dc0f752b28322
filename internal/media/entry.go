package media

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// FileEntry is a file name residing in a known directory.
type FileEntry struct {
	Dir  string
	Name string
}

// Path joins the directory and file name.
func (e FileEntry) Path() string {
	return filepath.Join(e.Dir, e.Name)
}

// Stem strips the final ".ext" segment from name. Names without a dot, and
// dot-files such as ".hidden", are returned unchanged.
func Stem(name string) string {
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 {
		return name
	}
	return name[:idx]
}

// StemKey returns the comparison key used when pairing files across kinds.
// Names are NFC normalized because some filesystems hand back decomposed
// Unicode for the same visible name.
func StemKey(name string) string {
	return norm.NFC.String(Stem(name))
}

// Names extracts the file names from entries, preserving order.
func Names(entries []FileEntry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names
}
