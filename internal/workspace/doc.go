// Package workspace provides the filesystem capability the organizer runs
// against and the single-instance lock for a working directory.
//
// The FS interface is deliberately narrow (mkdir, stat, read directory,
// rename, remove) so the classifier, provisioner and workflow packages can be
// exercised against an in-memory fake in tests while production code uses OS.
package workspace
