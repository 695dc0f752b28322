// Package reconcile pairs the raw and jpeg halves of an archive by filename stem.
//
// Everything here is pure: callers list the folders, DeletePlan picks the
// files to remove, and the workflow package performs the deletion after
// confirmation.
package reconcile
