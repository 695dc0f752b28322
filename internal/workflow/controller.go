package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"photosort/internal/classify"
	"photosort/internal/logging"
	"photosort/internal/media"
	"photosort/internal/provision"
	"photosort/internal/reconcile"
	"photosort/internal/workspace"
)

// ErrDeclined is returned when the user refuses the deletion prompt.
var ErrDeclined = errors.New("deletion declined")

// Report describes what a run did. Paths are relative to the root.
type Report struct {
	Phase   Phase
	Outcome Outcome
	Created []string
	Deleted []string
	Moved   map[media.Kind][]string
}

// Controller drives a single run.
type Controller struct {
	fs        workspace.FS
	layout    Layout
	reporter  Reporter
	confirmer Confirmer
	pauser    Pauser
	logger    *slog.Logger

	captureTime func(path string) (time.Time, error)
}

// ControllerOption configures optional Controller behavior.
type ControllerOption func(*Controller)

// WithPauser sets the pause applied before the run returns.
func WithPauser(p Pauser) ControllerOption {
	return func(c *Controller) {
		if p != nil {
			c.pauser = p
		}
	}
}

// WithCaptureTime overrides how deletion candidates are annotated.
func WithCaptureTime(fn func(path string) (time.Time, error)) ControllerOption {
	return func(c *Controller) {
		if fn != nil {
			c.captureTime = fn
		}
	}
}

// NewController constructs a controller. A nil confirmer declines every
// deletion.
func NewController(fsys workspace.FS, layout Layout, reporter Reporter, confirmer Confirmer, logger *slog.Logger, opts ...ControllerOption) *Controller {
	if confirmer == nil {
		confirmer = AutoConfirm(false)
	}
	c := &Controller{
		fs:          fsys,
		layout:      layout,
		reporter:    reporter,
		confirmer:   confirmer,
		pauser:      noPause{},
		logger:      logging.NewComponentLogger(logger, "workflow"),
		captureTime: media.CaptureTime,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run executes the pass. Declining deletion returns ErrDeclined with an
// OutcomeDeclined report; nothing is moved in that case.
func (c *Controller) Run(ctx context.Context) (Report, error) {
	report := Report{Moved: map[media.Kind][]string{}}

	c.reporter.Info("First run: create the archive folders and move pictures into them")
	c.reporter.Info("Second run: compare the %s and %s folders and delete unpaired files", c.layout.Raw, c.layout.Jpeg)

	rc, err := NewRunContext(c.fs, c.layout)
	if err != nil {
		return report, err
	}
	report.Phase = DetectPhase(rc)
	c.logger.Info("run started",
		logging.String(logging.FieldPhase, report.Phase.String()),
		logging.String(logging.FieldPath, c.layout.Root),
		logging.Bool("archive_exists", rc.ArchiveExists),
	)

	if report.Phase == PhaseNoPictures {
		c.reporter.Error("No picture files found")
		report.Outcome = OutcomeNoPictures
		return report, c.pause(ctx)
	}

	c.reporter.Section("1. Prepare folders")
	res, err := provision.New(c.fs, c.layout.Root, c.reporter, c.logger).Provision(c.layout.FolderSet())
	report.Created = res.Created
	if err != nil {
		return report, err
	}

	if report.Phase == PhaseSecondRun && res.NeedsReconciliation {
		c.reporter.Section("2. Compare folders")
		deleted, err := c.reconcile(ctx)
		report.Deleted = deleted
		if errors.Is(err, ErrDeclined) {
			report.Outcome = OutcomeDeclined
			c.logger.Info("run aborted", logging.String("reason", "deletion declined"))
			return report, err
		}
		if err != nil {
			return report, err
		}
	}

	c.reporter.Section("3. Move pictures")
	if err := c.moveAll(ctx, &report); err != nil {
		return report, err
	}

	if err := c.summarize(); err != nil {
		return report, err
	}
	c.reporter.Log("Done")
	report.Outcome = OutcomeCompleted
	c.logger.Info("run finished",
		logging.Int("created", len(report.Created)),
		logging.Int("deleted", len(report.Deleted)),
		logging.Int("moved_raw", len(report.Moved[media.Raw])),
		logging.Int("moved_jpeg", len(report.Moved[media.Jpeg])),
	)
	return report, c.pause(ctx)
}

func (c *Controller) reconcile(ctx context.Context) ([]string, error) {
	raw, err := classify.ListFiles(c.fs, c.layout.KindDir(media.Raw), media.Raw)
	if err != nil {
		return nil, err
	}
	jpeg, err := classify.ListFiles(c.fs, c.layout.KindDir(media.Jpeg), media.Jpeg)
	if err != nil {
		return nil, err
	}
	plan := reconcile.DeletePlan(raw, jpeg)
	c.logger.Debug("reconciliation planned",
		logging.Int("raw", plan.RawCount),
		logging.Int("jpeg", plan.JpegCount),
		logging.Strings("candidates", media.Names(plan.Files)),
	)
	if plan.Empty() {
		c.reporter.Error("Nothing to delete (%d %s, %d %s)", plan.RawCount, media.Raw, plan.JpegCount, media.Jpeg)
		return nil, nil
	}

	dir := c.layout.Rel(c.layout.KindDir(plan.Target))
	c.reporter.Warn("%d %s files in %s have no %s counterpart", len(plan.Files), plan.Target, dir, plan.Target.Other())
	rows := make([][]string, 0, len(plan.Files))
	for i, f := range plan.Files {
		rows = append(rows, []string{strconv.Itoa(i + 1), f.Name, c.captured(f)})
	}
	c.reporter.Table([]string{"#", "File", "Captured"}, rows, 0)

	ok, err := c.confirmer.Confirm(fmt.Sprintf("Delete these %d files?", len(plan.Files)))
	if err != nil {
		return nil, fmt.Errorf("confirm deletion: %w", err)
	}
	if !ok {
		c.reporter.Warn("Deletion cancelled; nothing was deleted or moved")
		return nil, ErrDeclined
	}

	var deleted []string
	for _, f := range plan.Files {
		if err := ctx.Err(); err != nil {
			return deleted, err
		}
		if err := c.fs.Remove(f.Path()); err != nil {
			return deleted, fmt.Errorf("delete %s: %w", f.Path(), err)
		}
		rel := c.layout.Rel(f.Path())
		deleted = append(deleted, rel)
		c.reporter.Warn("Deleted %s", rel)
		c.logger.Info("file deleted",
			logging.String(logging.FieldPath, f.Path()),
			logging.String(logging.FieldKind, plan.Target.String()),
		)
	}
	return deleted, nil
}

func (c *Controller) captured(f media.FileEntry) string {
	ts, err := c.captureTime(f.Path())
	if err != nil {
		c.logger.Debug("no capture time", logging.String(logging.FieldPath, f.Path()), logging.Error(err))
		return "-"
	}
	return ts.Format("2006-01-02 15:04:05")
}

func (c *Controller) moveAll(ctx context.Context, report *Report) error {
	for _, kind := range media.Kinds {
		files, err := classify.ListFiles(c.fs, c.layout.Root, kind)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			continue
		}
		dest := c.layout.KindDir(kind)
		for _, f := range files {
			if err := ctx.Err(); err != nil {
				return err
			}
			target := media.FileEntry{Dir: dest, Name: f.Name}.Path()
			if err := c.fs.Rename(f.Path(), target); err != nil {
				return fmt.Errorf("move %s: %w", f.Name, err)
			}
			rel := c.layout.Rel(target)
			report.Moved[kind] = append(report.Moved[kind], rel)
			c.reporter.Warn("Moved %s to %s", f.Name, rel)
			c.logger.Debug("file moved",
				logging.String(logging.FieldPath, target),
				logging.String(logging.FieldKind, kind.String()),
			)
		}
	}
	if len(report.Moved) == 0 {
		c.reporter.Log("No loose pictures to move")
	}
	return nil
}

func (c *Controller) summarize() error {
	rows := make([][]string, 0, len(media.Kinds))
	for _, kind := range media.Kinds {
		dir := c.layout.KindDir(kind)
		counts, err := classify.Snapshot(c.fs, dir)
		if err != nil {
			return err
		}
		rows = append(rows, []string{
			c.layout.Rel(dir),
			strconv.Itoa(len(counts[media.Raw])),
			strconv.Itoa(len(counts[media.Jpeg])),
		})
	}
	c.reporter.Table([]string{"Folder", "Raw", "JPEG"}, rows, 1, 2)
	return nil
}

func (c *Controller) pause(ctx context.Context) error {
	if err := c.pauser.Pause(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("exit pause: %w", err)
	}
	return nil
}
