// Package console renders photosort's user-facing output and reads answers.
//
// Reporter prints lines in four severities (info, log, warn, error) and colors
// them only on terminals. Prompter implements the single-line confirmation
// used before deleting files; LinePause and DelayPause implement the two exit
// pauses.
package console
