package workflow

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"photosort/internal/media"
	"photosort/internal/testsupport"
	"photosort/internal/workspace"
)

type line struct {
	severity string
	text     string
}

type recordingReporter struct {
	lines  []line
	tables [][][]string
}

func (r *recordingReporter) add(sev, format string, args ...any) {
	r.lines = append(r.lines, line{severity: sev, text: fmt.Sprintf(format, args...)})
}

func (r *recordingReporter) Info(format string, args ...any)  { r.add("info", format, args...) }
func (r *recordingReporter) Log(format string, args ...any)   { r.add("log", format, args...) }
func (r *recordingReporter) Warn(format string, args ...any)  { r.add("warn", format, args...) }
func (r *recordingReporter) Error(format string, args ...any) { r.add("error", format, args...) }
func (r *recordingReporter) Section(title string)             { r.add("section", "%s", title) }

func (r *recordingReporter) Table(_ []string, rows [][]string, _ ...int) {
	r.tables = append(r.tables, rows)
}

func (r *recordingReporter) has(sev, prefix string) bool {
	for _, l := range r.lines {
		if l.severity == sev && strings.HasPrefix(l.text, prefix) {
			return true
		}
	}
	return false
}

type scriptedConfirmer struct {
	answer    bool
	err       error
	questions []string
}

func (s *scriptedConfirmer) Confirm(question string) (bool, error) {
	s.questions = append(s.questions, question)
	return s.answer, s.err
}

type countingPauser struct{ calls int }

func (p *countingPauser) Pause(context.Context) error {
	p.calls++
	return nil
}

func testLayout(t *testing.T, root string) Layout {
	t.Helper()
	return LayoutFromConfig(root, testsupport.NewConfig(t))
}

func noCaptureTime(string) (time.Time, error) {
	return time.Time{}, errors.New("no exif")
}

func newTestController(t *testing.T, fsys workspace.FS, root string, rep Reporter, conf Confirmer, opts ...ControllerOption) *Controller {
	t.Helper()
	opts = append([]ControllerOption{WithCaptureTime(noCaptureTime)}, opts...)
	return NewController(fsys, testLayout(t, root), rep, conf, nil, opts...)
}

func TestRunOrganizesThenReconciles(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFiles(t, root, "a.CR2", "a.jpg", "b.CR2")

	rep := &recordingReporter{}
	conf := &scriptedConfirmer{answer: true}
	first, err := newTestController(t, workspace.OS{}, root, rep, conf).Run(context.Background())
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first.Phase != PhaseFirstRun || first.Outcome != OutcomeCompleted {
		t.Fatalf("first run = %v/%v", first.Phase, first.Outcome)
	}
	if diff := cmp.Diff([]string{"originals", "originals/raw", "originals/jpg"}, first.Created); diff != "" {
		t.Fatalf("created mismatch (-want +got):\n%s", diff)
	}
	if len(conf.questions) != 0 {
		t.Fatalf("first run must not prompt, got %v", conf.questions)
	}
	if len(first.Deleted) != 0 {
		t.Fatalf("first run deleted %v", first.Deleted)
	}
	if got := testsupport.ListNames(t, root); !cmp.Equal(got, []string{"originals"}) {
		t.Fatalf("root after first run = %v", got)
	}
	if diff := cmp.Diff([]string{"a.CR2", "b.CR2"}, testsupport.ListNames(t, filepath.Join(root, "originals", "raw"))); diff != "" {
		t.Fatalf("raw folder mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a.jpg"}, testsupport.ListNames(t, filepath.Join(root, "originals", "jpg"))); diff != "" {
		t.Fatalf("jpg folder mismatch (-want +got):\n%s", diff)
	}
	if !rep.has("warn", "Moved a.CR2") || !rep.has("log", "Created folder") {
		t.Fatalf("missing progress lines: %+v", rep.lines)
	}

	rep = &recordingReporter{}
	second, err := newTestController(t, workspace.OS{}, root, rep, conf).Run(context.Background())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if second.Phase != PhaseSecondRun {
		t.Fatalf("second run phase = %v", second.Phase)
	}
	if len(conf.questions) != 1 {
		t.Fatalf("expected one prompt, got %v", conf.questions)
	}
	if diff := cmp.Diff([]string{"originals/raw/b.CR2"}, second.Deleted); diff != "" {
		t.Fatalf("deleted mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a.CR2"}, testsupport.ListNames(t, filepath.Join(root, "originals", "raw"))); diff != "" {
		t.Fatalf("raw folder mismatch (-want +got):\n%s", diff)
	}
	if len(rep.tables) == 0 || !cmp.Equal(rep.tables[0], [][]string{{"1", "b.CR2", "-"}}) {
		t.Fatalf("candidate table = %v", rep.tables)
	}
}

func TestRunDeclineAbortsBeforeMove(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFiles(t, filepath.Join(root, "originals", "raw"), "a.CR2", "b.CR2")
	testsupport.WriteFiles(t, filepath.Join(root, "originals", "jpg"), "a.jpg")

	fsys := testsupport.NewFaultFS(nil)
	pauser := &countingPauser{}
	rep := &recordingReporter{}
	report, err := newTestController(t, fsys, root, rep, &scriptedConfirmer{answer: false}, WithPauser(pauser)).Run(context.Background())
	if !errors.Is(err, ErrDeclined) {
		t.Fatalf("err = %v, want ErrDeclined", err)
	}
	if report.Outcome != OutcomeDeclined {
		t.Fatalf("outcome = %v", report.Outcome)
	}
	for _, call := range fsys.Calls() {
		if strings.HasPrefix(call, "remove") || strings.HasPrefix(call, "rename") {
			t.Fatalf("declined run touched files: %v", fsys.Calls())
		}
	}
	if diff := cmp.Diff([]string{"a.CR2", "b.CR2"}, testsupport.ListNames(t, filepath.Join(root, "originals", "raw"))); diff != "" {
		t.Fatalf("raw folder changed (-want +got):\n%s", diff)
	}
	if pauser.calls != 0 {
		t.Fatalf("declined run should exit without pausing")
	}
}

func TestRunEqualCountsDeletesNothing(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFiles(t, filepath.Join(root, "originals", "raw"), "a.CR2", "b.CR2")
	testsupport.WriteFiles(t, filepath.Join(root, "originals", "jpg"), "x.jpg", "y.jpg")

	rep := &recordingReporter{}
	conf := &scriptedConfirmer{answer: true}
	report, err := newTestController(t, workspace.OS{}, root, rep, conf).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Outcome != OutcomeCompleted || len(report.Deleted) != 0 {
		t.Fatalf("unexpected report %+v", report)
	}
	if len(conf.questions) != 0 {
		t.Fatalf("nothing to delete should not prompt")
	}
	if !rep.has("error", "Nothing to delete") {
		t.Fatalf("missing notice: %+v", rep.lines)
	}
}

func TestRunArchiveWithoutChildrenSkipsCompare(t *testing.T) {
	root := t.TempDir()
	testsupport.MkdirAll(t, root, "originals")

	rep := &recordingReporter{}
	conf := &scriptedConfirmer{answer: true}
	report, err := newTestController(t, workspace.OS{}, root, rep, conf).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Phase != PhaseSecondRun || report.Outcome != OutcomeCompleted {
		t.Fatalf("unexpected report %+v", report)
	}
	if diff := cmp.Diff([]string{"originals/raw", "originals/jpg"}, report.Created); diff != "" {
		t.Fatalf("created mismatch (-want +got):\n%s", diff)
	}
	if rep.has("section", "2. Compare folders") || rep.has("error", "Nothing to delete") {
		t.Fatalf("freshly created children should not be compared: %+v", rep.lines)
	}
	if len(conf.questions) != 0 {
		t.Fatalf("unexpected prompt: %v", conf.questions)
	}
}

func TestRunNoPictures(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFiles(t, root, "notes.txt")

	pauser := &countingPauser{}
	rep := &recordingReporter{}
	fsys := testsupport.NewFaultFS(nil)
	report, err := newTestController(t, fsys, root, rep, nil, WithPauser(pauser)).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Outcome != OutcomeNoPictures {
		t.Fatalf("outcome = %v", report.Outcome)
	}
	if len(fsys.Calls()) != 0 {
		t.Fatalf("no-picture run mutated the directory: %v", fsys.Calls())
	}
	if pauser.calls != 1 {
		t.Fatalf("pause calls = %d, want 1", pauser.calls)
	}
	if !rep.has("error", "No picture files found") {
		t.Fatalf("missing notice: %+v", rep.lines)
	}
}

func TestRunLoosePicturesWithExistingArchiveSkipsReconcile(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFiles(t, filepath.Join(root, "originals", "raw"), "a.CR2", "b.CR2")
	testsupport.WriteFiles(t, filepath.Join(root, "originals", "jpg"), "a.jpg")
	testsupport.WriteFiles(t, root, "c.NEF")

	conf := &scriptedConfirmer{answer: true}
	report, err := newTestController(t, workspace.OS{}, root, &recordingReporter{}, conf).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Phase != PhaseFirstRun || len(conf.questions) != 0 {
		t.Fatalf("loose pictures should organize without reconciling: %+v", report)
	}
	if diff := cmp.Diff([]string{"a.CR2", "b.CR2", "c.NEF"}, testsupport.ListNames(t, filepath.Join(root, "originals", "raw"))); diff != "" {
		t.Fatalf("raw folder mismatch (-want +got):\n%s", diff)
	}
}

func TestRunAutoConfirmDeletesWithoutPrompt(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFiles(t, filepath.Join(root, "originals", "raw"), "a.CR2")
	testsupport.WriteFiles(t, filepath.Join(root, "originals", "jpg"), "a.jpg", "b.JPG", "c.jpeg")

	report, err := newTestController(t, workspace.OS{}, root, &recordingReporter{}, AutoConfirm(true)).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if diff := cmp.Diff([]string{"originals/jpg/b.JPG", "originals/jpg/c.jpeg"}, report.Deleted); diff != "" {
		t.Fatalf("deleted mismatch (-want +got):\n%s", diff)
	}
}

func TestRunLeavesUnrelatedFilesInRoot(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFiles(t, root, "a.jpg", "readme.txt", "a.jpg.bak")

	if _, err := newTestController(t, workspace.OS{}, root, &recordingReporter{}, nil).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if diff := cmp.Diff([]string{"a.jpg.bak", "originals", "readme.txt"}, testsupport.ListNames(t, root)); diff != "" {
		t.Fatalf("root mismatch (-want +got):\n%s", diff)
	}
}

func TestRunCreatesExtraFolders(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFiles(t, root, "a.jpg")

	layout := LayoutFromConfig(root, testsupport.NewConfig(t, testsupport.WithExtraFolders("edits")))
	c := NewController(workspace.OS{}, layout, &recordingReporter{}, nil, nil, WithCaptureTime(noCaptureTime))
	report, err := c.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if diff := cmp.Diff([]string{"originals", "edits", "originals/raw", "originals/jpg"}, report.Created); diff != "" {
		t.Fatalf("created mismatch (-want +got):\n%s", diff)
	}
}

func TestRunStopsOnMoveFailure(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFiles(t, root, "a.CR2", "b.CR2")

	fsys := testsupport.NewFaultFS(nil)
	fsys.FailOn("rename", filepath.Join(root, "a.CR2"), syscall.EACCES)
	_, err := newTestController(t, fsys, root, &recordingReporter{}, nil).Run(context.Background())
	if !errors.Is(err, syscall.EACCES) {
		t.Fatalf("err = %v, want EACCES", err)
	}
	if diff := cmp.Diff([]string{"a.CR2", "b.CR2", "originals"}, testsupport.ListNames(t, root)); diff != "" {
		t.Fatalf("root mismatch (-want +got):\n%s", diff)
	}
}

func TestRunStopsOnDeleteFailure(t *testing.T) {
	root := t.TempDir()
	rawDir := filepath.Join(root, "originals", "raw")
	testsupport.WriteFiles(t, rawDir, "a.CR2", "b.CR2", "c.CR2")
	testsupport.WriteFiles(t, filepath.Join(root, "originals", "jpg"), "a.jpg")

	fsys := testsupport.NewFaultFS(nil)
	fsys.FailOn("remove", filepath.Join(rawDir, "c.CR2"), syscall.EPERM)
	report, err := newTestController(t, fsys, root, &recordingReporter{}, AutoConfirm(true)).Run(context.Background())
	if !errors.Is(err, syscall.EPERM) {
		t.Fatalf("err = %v, want EPERM", err)
	}
	if diff := cmp.Diff([]string{"originals/raw/b.CR2"}, report.Deleted); diff != "" {
		t.Fatalf("deleted mismatch (-want +got):\n%s", diff)
	}
}

func TestRunConfirmErrorIsReturned(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFiles(t, filepath.Join(root, "originals", "raw"), "a.CR2", "b.CR2")
	testsupport.WriteFiles(t, filepath.Join(root, "originals", "jpg"), "a.jpg")

	boom := errors.New("stdin closed")
	_, err := newTestController(t, workspace.OS{}, root, &recordingReporter{}, &scriptedConfirmer{err: boom}).Run(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if errors.Is(err, ErrDeclined) {
		t.Fatal("confirm failure must not look like a decline")
	}
}

func TestCandidateTableShowsCaptureTime(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFiles(t, filepath.Join(root, "originals", "raw"), "a.CR2", "b.CR2")
	testsupport.WriteFiles(t, filepath.Join(root, "originals", "jpg"), "a.jpg")

	shot := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	rep := &recordingReporter{}
	c := NewController(workspace.OS{}, testLayout(t, root), rep, AutoConfirm(false), nil,
		WithCaptureTime(func(string) (time.Time, error) { return shot, nil }))
	if _, err := c.Run(context.Background()); !errors.Is(err, ErrDeclined) {
		t.Fatalf("err = %v, want ErrDeclined", err)
	}
	if diff := cmp.Diff([][]string{{"1", "b.CR2", "2024-05-01 09:30:00"}}, rep.tables[0]); diff != "" {
		t.Fatalf("table mismatch (-want +got):\n%s", diff)
	}
}

func TestDetectPhase(t *testing.T) {
	tests := []struct {
		rc   RunContext
		want Phase
	}{
		{RunContext{}, PhaseNoPictures},
		{RunContext{RootHasPictures: true}, PhaseFirstRun},
		{RunContext{RootHasPictures: true, ArchiveExists: true}, PhaseFirstRun},
		{RunContext{ArchiveExists: true}, PhaseSecondRun},
	}
	for _, tt := range tests {
		if got := DetectPhase(tt.rc); got != tt.want {
			t.Fatalf("DetectPhase(%+v) = %v, want %v", tt.rc, got, tt.want)
		}
	}
}

func TestLayoutPaths(t *testing.T) {
	layout := Layout{Root: "/photos", Archive: "originals", Raw: "raw", Jpeg: "jpg"}
	if got := layout.KindDir(media.Raw); got != filepath.Join("/photos", "originals", "raw") {
		t.Fatalf("raw dir = %s", got)
	}
	if got := layout.KindDir(media.Jpeg); got != filepath.Join("/photos", "originals", "jpg") {
		t.Fatalf("jpeg dir = %s", got)
	}
	if got := layout.Rel(filepath.Join("/photos", "originals", "jpg", "a.jpg")); got != "originals/jpg/a.jpg" {
		t.Fatalf("rel = %s", got)
	}
	if got := layout.Rel("/elsewhere/a.jpg"); got != "/elsewhere/a.jpg" {
		t.Fatalf("rel outside root = %s", got)
	}
}

func TestRunCustomFolderNames(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFiles(t, root, "a.RAF", "a.JPG")

	layout := LayoutFromConfig(root, testsupport.NewConfig(t, testsupport.WithFolders("keep", "negatives", "previews")))
	c := NewController(workspace.OS{}, layout, &recordingReporter{}, nil, nil, WithCaptureTime(noCaptureTime))
	report, err := c.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := map[media.Kind][]string{
		media.Raw:  {"keep/negatives/a.RAF"},
		media.Jpeg: {"keep/previews/a.JPG"},
	}
	if diff := cmp.Diff(want, report.Moved); diff != "" {
		t.Fatalf("moved mismatch (-want +got):\n%s", diff)
	}
}
