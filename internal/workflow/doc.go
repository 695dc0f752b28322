// Package workflow runs one organize pass over a working directory.
//
// The Controller observes the directory once, decides the phase, provisions
// the archive skeleton, reconciles the raw and jpeg halves on repeat runs,
// moves loose pictures into the archive, and prints a closing summary.
// Deletion always goes through a Confirmer; declining aborts the whole run
// before anything is moved.
//
// Console output goes through the Reporter interface so the package stays
// free of terminal concerns; the cmd layer supplies the colored reporter,
// the prompt, and the exit pause.
package workflow
