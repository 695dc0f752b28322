package workflow

import (
	"fmt"

	"photosort/internal/classify"
	"photosort/internal/media"
	"photosort/internal/workspace"
)

// RunContext is the working directory state observed once at startup.
type RunContext struct {
	Layout          Layout
	RootHasPictures bool
	ArchiveExists   bool
}

// NewRunContext scans the root for loose pictures and checks for the archive.
func NewRunContext(fsys workspace.FS, layout Layout) (RunContext, error) {
	hasPictures, err := classify.HasAnyMatch(fsys, layout.Root, media.Kinds...)
	if err != nil {
		return RunContext{}, fmt.Errorf("scan working directory: %w", err)
	}
	archiveExists, err := workspace.Exists(fsys, layout.ArchiveDir())
	if err != nil {
		return RunContext{}, fmt.Errorf("inspect archive folder: %w", err)
	}
	return RunContext{
		Layout:          layout,
		RootHasPictures: hasPictures,
		ArchiveExists:   archiveExists,
	}, nil
}

// DetectPhase classifies the run. Loose pictures always mean organizing
// first, even when an archive exists from an earlier batch.
func DetectPhase(rc RunContext) Phase {
	switch {
	case rc.RootHasPictures:
		return PhaseFirstRun
	case rc.ArchiveExists:
		return PhaseSecondRun
	default:
		return PhaseNoPictures
	}
}
