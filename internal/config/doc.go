// Package config loads, normalizes, and validates photosort configuration.
//
// Settings live in TOML. Load merges a file over Default, trims and
// deduplicates folder names, and rejects values that would produce an unsafe
// folder layout (path separators, colliding kind folders). CreateSample writes
// the embedded, commented sample used by `photosort config init`.
package config
