package fileutil

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"syscall"
)

// MoveFile renames src to dst. When the rename crosses filesystems the file is
// copied with integrity verification and the source removed afterwards. An
// existing dst is never overwritten.
func MoveFile(src, dst string) error {
	if _, err := os.Lstat(dst); err == nil {
		return fmt.Errorf("move %s: %w", dst, fs.ErrExist)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat destination: %w", err)
	}

	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !isCrossDevice(err) {
		return err
	}
	if err := CopyFileVerified(src, dst); err != nil {
		return fmt.Errorf("cross-device copy: %w", err)
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("remove source after copy: %w", err)
	}
	return nil
}

func isCrossDevice(err error) bool {
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		return errors.Is(linkErr.Err, syscall.EXDEV)
	}
	return false
}

// CopyFileVerified copies src to a new file at dst, then re-reads dst and
// compares its size and SHA256 digest with what was read from src. dst keeps
// the source permission bits and mtime, and is removed on any failure.
func CopyFileVerified(src, dst string) (err error) {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	want, n, created, err := copyHashed(src, dst, info.Mode().Perm())
	if created {
		defer func() {
			if err != nil {
				_ = os.Remove(dst)
			}
		}()
	}
	if err != nil {
		return fmt.Errorf("copy %s: %w", src, err)
	}
	if n != info.Size() {
		return fmt.Errorf("copy size mismatch: source %d bytes, copied %d bytes", info.Size(), n)
	}
	got, err := digest(dst)
	if err != nil {
		return fmt.Errorf("verify copy: %w", err)
	}
	if !bytes.Equal(want, got) {
		return fmt.Errorf("copy hash mismatch for %s", dst)
	}

	_ = os.Chtimes(dst, info.ModTime(), info.ModTime())
	return nil
}

// copyHashed writes src to a freshly created dst and returns the digest of the
// bytes read from src. created reports whether dst was created.
func copyHashed(src, dst string, perm fs.FileMode) (sum []byte, n int64, created bool, err error) {
	in, err := os.Open(src)
	if err != nil {
		return nil, 0, false, err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_EXCL, perm)
	if err != nil {
		return nil, 0, false, err
	}
	h := sha256.New()
	n, err = io.Copy(out, io.TeeReader(in, h))
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, n, true, err
	}
	return h.Sum(nil), n, true, nil
}

func digest(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}
