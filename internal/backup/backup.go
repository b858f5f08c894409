package backup

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

// timeLayout is used in backup file names and sorts chronologically
const timeLayout = "20060102-150405"

// backupExt is appended to every backup file
const backupExt = ".bak"

// BackupManager copies a file aside before it is overwritten
type BackupManager struct {
	dir  string
	keep int
	now  func() time.Time
}

// BackedUpFile describes a successful backup
type BackedUpFile struct {
	FilePath string
	DestPath string
	Size     int64
	Hash     string // SHA256 of the content
	Reused   bool   // an identical backup already existed
}

// New creates a BackupManager storing backups in dir and keeping at most
// keep backups per file (0 keeps all)
func New(dir string, keep int) *BackupManager {
	return &BackupManager{
		dir:  dir,
		keep: keep,
		now:  time.Now,
	}
}

// Backup copies path to <dir>/<base>.<timestamp>.bak, or
// <base>.<timestamp>-<n>.bak when that name is already taken. A missing file is
// not an error and yields a nil result. When the newest backup already
// holds the same content no copy is made and that backup is returned.
func (b *BackupManager) Backup(path string) (*BackedUpFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("backup %s: is a directory", path)
	}

	hash, err := ComputeFileHash(path)
	if err != nil {
		return nil, fmt.Errorf("backup %s: %w", path, err)
	}

	result := &BackedUpFile{
		FilePath: path,
		Size:     info.Size(),
		Hash:     hash,
	}

	if latest, ok := b.latestMatching(path, hash); ok {
		result.DestPath = latest
		result.Reused = true
		return result, nil
	}

	stamp := b.now().Format(timeLayout)
	for seq := 0; ; seq++ {
		result.DestPath = filepath.Join(b.dir, backupName(filepath.Base(path), stamp, seq))
		err := b.copyFile(path, result.DestPath)
		if err == nil {
			break
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("backup %s: %w", path, err)
		}
	}

	if err := b.Prune(path); err != nil {
		return nil, err
	}

	return result, nil
}

// List returns existing backups of path, oldest first
func (b *BackupManager) List(path string) ([]string, error) {
	prefix := filepath.Base(path) + "."
	items, err := os.ReadDir(b.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	type backupFile struct {
		path  string
		stamp time.Time
		seq   int
	}

	var found []backupFile
	for _, item := range items {
		name := item.Name()
		if item.IsDir() || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, backupExt) {
			continue
		}
		stamp, seq, ok := parseStamp(strings.TrimSuffix(strings.TrimPrefix(name, prefix), backupExt))
		if !ok {
			continue
		}
		found = append(found, backupFile{path: filepath.Join(b.dir, name), stamp: stamp, seq: seq})
	}

	sort.Slice(found, func(i, j int) bool {
		if !found[i].stamp.Equal(found[j].stamp) {
			return found[i].stamp.Before(found[j].stamp)
		}
		return found[i].seq < found[j].seq
	})

	backups := make([]string, len(found))
	for i, f := range found {
		backups[i] = f.path
	}
	return backups, nil
}

// backupName builds the file name of the seq-th backup taken at stamp
func backupName(base, stamp string, seq int) string {
	if seq == 0 {
		return base + "." + stamp + backupExt
	}
	return base + "." + stamp + "-" + strconv.Itoa(seq) + backupExt
}

// parseStamp splits "<timestamp>" or "<timestamp>-<n>" from a backup name
func parseStamp(s string) (time.Time, int, bool) {
	if t, err := time.Parse(timeLayout, s); err == nil {
		return t, 0, true
	}

	i := strings.LastIndex(s, "-")
	if i < 0 {
		return time.Time{}, 0, false
	}
	t, err := time.Parse(timeLayout, s[:i])
	if err != nil {
		return time.Time{}, 0, false
	}
	seq, err := strconv.Atoi(s[i+1:])
	if err != nil || seq < 1 {
		return time.Time{}, 0, false
	}
	return t, seq, true
}

// Prune removes the oldest backups of path beyond the configured limit
func (b *BackupManager) Prune(path string) error {
	if b.keep <= 0 {
		return nil
	}

	backups, err := b.List(path)
	if err != nil {
		return err
	}
	for len(backups) > b.keep {
		if err := os.Remove(backups[0]); err != nil {
			return fmt.Errorf("prune backup: %w", err)
		}
		backups = backups[1:]
	}
	return nil
}

// copyFile copies a file from src to dst, creating directories as needed
func (b *BackupManager) copyFile(src, dst string) error {
	// Create destination directory
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer srcFile.Close()

	// Existing backups are never overwritten
	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}
	defer dstFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return fmt.Errorf("failed to copy: %w", err)
	}

	// Preserve permissions
	srcInfo, err := os.Stat(src)
	if err == nil {
		os.Chmod(dst, srcInfo.Mode())
	}

	return nil
}
