// Package classify scans a single directory and partitions its files by
// image kind.
package classify
