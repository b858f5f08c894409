package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"deskmenu/internal/desktop"
	"deskmenu/internal/models"

	"github.com/charmbracelet/log"
)

const (
	// desktopSuffix is matched case-insensitively
	desktopSuffix = ".desktop"

	// wineExtensionPrefix marks file-association stubs created by wine
	wineExtensionPrefix = "wine-extension-"

	// wineDir is the directory name whose entries are forced into the wine category
	wineDir = "wine"
)

// Scanner collects desktop entries from directory trees
type Scanner struct {
	logger *log.Logger
}

// New creates a new Scanner. A nil logger uses the default logger.
func New(logger *log.Logger) *Scanner {
	if logger == nil {
		logger = log.Default()
	}
	return &Scanner{logger: logger}
}

// Scan walks every root and returns all entries found, in root order
func (s *Scanner) Scan(roots ...string) ([]*models.Entry, error) {
	var entries []*models.Entry
	for _, root := range roots {
		var err error
		entries, err = s.ScanDir(root, entries)
		if err != nil {
			return entries, err
		}
	}
	return entries, nil
}

// ScanDir walks root recursively and appends every entry read to entries.
// Directories that do not exist (including dangling symlinks) contribute
// nothing; any other listing failure is returned.
func (s *Scanner) ScanDir(root string, entries []*models.Entry) ([]*models.Entry, error) {
	return s.scanDir(root, entries, 0)
}

func (s *Scanner) scanDir(dir string, entries []*models.Entry, depth int) ([]*models.Entry, error) {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return entries, nil
		}
		return entries, fmt.Errorf("resolve %s: %w", dir, err)
	}
	if resolved, err = filepath.Abs(resolved); err != nil {
		return entries, fmt.Errorf("resolve %s: %w", dir, err)
	}

	items, err := os.ReadDir(resolved)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return entries, nil
		}
		return entries, fmt.Errorf("list %s: %w", resolved, err)
	}

	parentName := filepath.Base(resolved)
	indent := strings.Repeat(" ", depth)

	for _, item := range items {
		subPath := filepath.Join(resolved, item.Name())

		// Stat follows symlinks so linked directories are walked too
		info, err := os.Stat(subPath)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return entries, fmt.Errorf("stat %s: %w", subPath, err)
		}

		if info.IsDir() {
			entries, err = s.scanDir(subPath, entries, depth+1)
			if err != nil {
				return entries, err
			}
			continue
		}

		if !info.Mode().IsRegular() || !IsDesktopFile(item.Name()) {
			continue
		}

		s.logger.Debug(indent+"* read", "file", item.Name())
		entry, err := desktop.ReadFile(subPath)
		if err != nil {
			if errors.Is(err, desktop.ErrNoHeader) {
				s.logger.Debug(indent+"  skip", "file", item.Name(), "reason", err)
			} else {
				s.logger.Warn("skipping unreadable entry", "file", subPath, "err", err)
			}
			continue
		}

		if parentName == wineDir {
			entry.Set(models.KeyCategories, wineDir)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// IsDesktopFile reports whether a file name is a candidate desktop entry
func IsDesktopFile(name string) bool {
	if !strings.HasSuffix(strings.ToLower(name), desktopSuffix) {
		return false
	}
	return !strings.HasPrefix(name, wineExtensionPrefix)
}
