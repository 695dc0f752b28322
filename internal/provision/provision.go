package provision

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"photosort/internal/logging"
	"photosort/internal/workspace"
)

// FolderSet is the directory skeleton for one working directory. Names are
// single path elements; Children live inside Archive.
type FolderSet struct {
	Archive  string
	Extra    []string
	Children []string
}

// Result summarizes one provisioning pass. Paths are relative to the root.
type Result struct {
	Created         []string
	ArchiveExisted  bool
	ExistingFolders []string
	// NeedsReconciliation is set when one of the archive children was already
	// present. With no children configured it follows ArchiveExisted.
	NeedsReconciliation bool
}

// Notifier receives one line per created folder.
type Notifier interface {
	Log(format string, args ...any)
}

// Provisioner creates the folder skeleton under Root.
type Provisioner struct {
	fs       workspace.FS
	root     string
	notifier Notifier
	logger   *slog.Logger
}

// New constructs a provisioner. notifier and logger may be nil.
func New(fsys workspace.FS, root string, notifier Notifier, logger *slog.Logger) *Provisioner {
	return &Provisioner{
		fs:       fsys,
		root:     root,
		notifier: notifier,
		logger:   logging.NewComponentLogger(logger, "provision"),
	}
}

// EnsureFolder creates the directory at path. It returns false without error
// when a directory already exists there, and an error when path is occupied
// by something else or cannot be created.
func EnsureFolder(fsys workspace.FS, path string) (bool, error) {
	err := fsys.Mkdir(path)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, fs.ErrExist) {
		return false, fmt.Errorf("create folder %s: %w", path, err)
	}
	isDir, statErr := workspace.IsDir(fsys, path)
	if statErr != nil {
		return false, fmt.Errorf("inspect folder %s: %w", path, statErr)
	}
	if !isDir {
		return false, fmt.Errorf("create folder %s: path exists and is not a directory: %w", path, fs.ErrExist)
	}
	return false, nil
}

// Provision creates the archive folder and extras as one unit, skipped
// entirely when the archive already exists, then each archive child that is
// missing.
func (p *Provisioner) Provision(set FolderSet) (Result, error) {
	var res Result

	archivePath := filepath.Join(p.root, set.Archive)
	archiveExists, err := workspace.IsDir(p.fs, archivePath)
	if err != nil {
		return res, fmt.Errorf("inspect archive folder: %w", err)
	}

	if archiveExists {
		res.ArchiveExisted = true
		res.ExistingFolders = append(res.ExistingFolders, set.Archive)
		p.logger.Debug("archive folder present; skipping top-level provisioning", logging.String(logging.FieldPath, archivePath))
	} else {
		top := append([]string{set.Archive}, set.Extra...)
		for _, name := range top {
			if err := p.ensure(name, &res); err != nil {
				return res, err
			}
		}
	}

	present, err := workspace.IsDir(p.fs, archivePath)
	if err != nil {
		return res, fmt.Errorf("inspect archive folder: %w", err)
	}
	childExisted := false
	if present {
		for _, child := range set.Children {
			created, err := p.ensureCreated(filepath.Join(set.Archive, child), &res)
			if err != nil {
				return res, err
			}
			if !created {
				childExisted = true
			}
		}
	}

	res.NeedsReconciliation = childExisted
	if len(set.Children) == 0 {
		res.NeedsReconciliation = res.ArchiveExisted
	}
	p.logger.Info("provisioning finished",
		logging.Strings("created", res.Created),
		logging.Strings("existing", res.ExistingFolders),
		logging.Bool("needs_reconciliation", res.NeedsReconciliation),
	)
	return res, nil
}

func (p *Provisioner) ensure(rel string, res *Result) error {
	_, err := p.ensureCreated(rel, res)
	return err
}

func (p *Provisioner) ensureCreated(rel string, res *Result) (bool, error) {
	created, err := EnsureFolder(p.fs, filepath.Join(p.root, rel))
	if err != nil {
		return false, err
	}
	if !created {
		res.ExistingFolders = append(res.ExistingFolders, rel)
		return false, nil
	}
	res.Created = append(res.Created, rel)
	if p.notifier != nil {
		p.notifier.Log("Created folder %s", filepath.ToSlash(rel))
	}
	p.logger.Info("folder created", logging.String(logging.FieldPath, rel))
	return true, nil
}
