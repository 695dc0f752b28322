// Package logging assembles structured slog loggers and attribute helpers used
// across photosort.
//
// It owns the console and JSON handlers and the stderr/file output plumbing.
// User-facing progress lines are printed by the console package; the loggers
// built here carry diagnostic detail (run IDs, paths, decisions) and stay
// quiet at the default warn level. NewNop gives tests and optional wiring a
// logger that cannot fail.
package logging
