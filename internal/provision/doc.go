// Package provision creates the archive folder skeleton in a working
// directory and reports whether the skeleton was already there.
//
// The archive folder and any extra folders are treated as one unit: if the
// archive exists, none of them are touched. The per-kind subfolders inside the
// archive are then ensured individually. A pre-existing archive or subfolder
// is the signal the workflow uses to recognize a repeat run.
package provision
