package workflow

import (
	"context"
	"path/filepath"
	"strings"

	"photosort/internal/config"
	"photosort/internal/media"
	"photosort/internal/provision"
)

// Phase is the kind of run implied by the working directory's contents.
type Phase int

const (
	// PhaseNoPictures means neither loose pictures nor an archive exist.
	PhaseNoPictures Phase = iota
	// PhaseFirstRun means pictures still sit in the working directory root.
	PhaseFirstRun
	// PhaseSecondRun means the root is clean and an archive exists, so the
	// archive halves are reconciled.
	PhaseSecondRun
)

func (p Phase) String() string {
	switch p {
	case PhaseFirstRun:
		return "first_run"
	case PhaseSecondRun:
		return "second_run"
	default:
		return "no_pictures"
	}
}

// Outcome is how a run ended.
type Outcome int

const (
	OutcomeCompleted Outcome = iota
	OutcomeNoPictures
	// OutcomeDeclined means the user refused deletion; the move step was
	// skipped.
	OutcomeDeclined
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNoPictures:
		return "no_pictures"
	case OutcomeDeclined:
		return "declined"
	default:
		return "completed"
	}
}

// Reporter receives user-facing progress lines by severity.
type Reporter interface {
	Info(format string, args ...any)
	Log(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	Section(title string)
	Table(headers []string, rows [][]string, rightAligned ...int)
}

// Confirmer asks the user to approve a destructive step.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// AutoConfirm answers every question with a fixed value.
type AutoConfirm bool

func (a AutoConfirm) Confirm(string) (bool, error) { return bool(a), nil }

// Pauser holds the process before it exits.
type Pauser interface {
	Pause(ctx context.Context) error
}

type noPause struct{}

func (noPause) Pause(context.Context) error { return nil }

// Layout resolves folder names against the working directory.
type Layout struct {
	Root    string
	Archive string
	Raw     string
	Jpeg    string
	Extra   []string
}

// LayoutFromConfig builds a layout rooted at root.
func LayoutFromConfig(root string, cfg *config.Config) Layout {
	return Layout{
		Root:    root,
		Archive: cfg.Folders.Archive,
		Raw:     cfg.Folders.Raw,
		Jpeg:    cfg.Folders.Jpeg,
		Extra:   append([]string(nil), cfg.Folders.Extra...),
	}
}

// ArchiveDir is the absolute archive folder path.
func (l Layout) ArchiveDir() string {
	return filepath.Join(l.Root, l.Archive)
}

// KindDir is the archive subfolder receiving files of kind.
func (l Layout) KindDir(kind media.Kind) string {
	if kind == media.Raw {
		return filepath.Join(l.Root, l.Archive, l.Raw)
	}
	return filepath.Join(l.Root, l.Archive, l.Jpeg)
}

// FolderSet converts the layout into the provisioning request.
func (l Layout) FolderSet() provision.FolderSet {
	return provision.FolderSet{
		Archive:  l.Archive,
		Extra:    append([]string(nil), l.Extra...),
		Children: []string{l.Raw, l.Jpeg},
	}
}

// Rel renders path relative to the root with forward slashes.
func (l Layout) Rel(path string) string {
	rel, err := filepath.Rel(l.Root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}
