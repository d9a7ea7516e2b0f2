// Package writer replaces file contents atomically, keeping a backup of
// the previous bytes.
package writer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// BackupPrefix is prepended to the original filename to form the backup
// filename. The backup lives in the same directory as the original and is
// never removed by this package.
const BackupPrefix = "backup_toggle_comment_"

// BackupPath returns the backup sibling path for the file at path.
func BackupPath(path string) string {
	dir, name := filepath.Split(path)
	return filepath.Join(dir, BackupPrefix+name)
}

// Backup copies the current bytes of the file at path to its backup
// sibling. Callers invoke it before mutating anything; the copy stays in
// place afterwards as a durable recovery file.
func Backup(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat original: %w", err)
	}
	if err := copyFile(path, BackupPath(path), info.Mode()); err != nil {
		return fmt.Errorf("create backup: %w", err)
	}
	return nil
}

// Replace writes buf over the file at path atomically: buf goes to a temp
// file in the same directory, which is then renamed over the original.
// The original is untouched unless every step before the rename succeeds.
func Replace(path string, buf []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat original: %w", err)
	}

	// Create temp file in same directory to ensure atomic rename
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".commentkit-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, writeErr := tmpFile.Write(buf); writeErr != nil {
		return fmt.Errorf("write temp file: %w", writeErr)
	}

	if syncErr := tmpFile.Sync(); syncErr != nil {
		return fmt.Errorf("sync temp file: %w", syncErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	tmpFile = nil // Don't clean up in defer

	// CreateTemp opens 0600; carry the original mode across the rename.
	if chmodErr := os.Chmod(tmpPath, info.Mode()); chmodErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("chmod temp file: %w", chmodErr)
	}

	if renameErr := os.Rename(tmpPath, path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", renameErr)
	}

	return nil
}

func copyFile(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Sync(); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
