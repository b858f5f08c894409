package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"time"

	"deskmenu/internal/models"
	"deskmenu/internal/scanner"

	"github.com/charmbracelet/log"
)

// DefaultInterval is the polling interval used when none is given
const DefaultInterval = 2 * time.Second

// Watcher polls desktop entry directories for changes
type Watcher struct {
	roots    []string
	files    []string
	interval time.Duration
	logger   *log.Logger
}

// New creates a watcher over roots. A non-positive interval uses
// DefaultInterval and a nil logger uses the default logger.
func New(roots []string, interval time.Duration, logger *log.Logger) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Watcher{
		roots:    roots,
		interval: interval,
		logger:   logger,
	}
}

// WithFiles adds individual files, such as the custom launchers file, to the
// watched set. Blank paths are ignored.
func (w *Watcher) WithFiles(paths ...string) *Watcher {
	for _, p := range paths {
		if p != "" {
			w.files = append(w.files, p)
		}
	}
	return w
}

// Fingerprint snapshots every watched file, sorted by path. Missing roots
// and files contribute nothing.
func (w *Watcher) Fingerprint() []models.File {
	var files []models.File
	visited := make(map[string]bool)

	for _, root := range w.roots {
		files = collect(root, files, visited)
	}
	for _, p := range w.files {
		if f, err := models.NewFile(p); err == nil {
			files = append(files, *f)
		}
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})
	return files
}

func collect(dir string, files []models.File, visited map[string]bool) []models.File {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil || visited[resolved] {
		return files
	}
	visited[resolved] = true

	items, err := os.ReadDir(resolved)
	if err != nil {
		return files
	}

	for _, item := range items {
		subPath := filepath.Join(resolved, item.Name())
		info, err := os.Stat(subPath)
		if err != nil {
			continue
		}
		if info.IsDir() {
			files = collect(subPath, files, visited)
			continue
		}
		if !info.Mode().IsRegular() || !scanner.IsDesktopFile(item.Name()) {
			continue
		}
		files = append(files, models.File{
			Path:    subPath,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	return files
}

// Changed reports whether two fingerprints differ
func Changed(before, after []models.File) bool {
	if len(before) != len(after) {
		return true
	}
	for i := range before {
		if before[i].Path != after[i].Path || before[i].Changed(after[i]) {
			return true
		}
	}
	return false
}

// WaitForChange blocks until the fingerprint differs from previous or the
// context is cancelled, and returns the new fingerprint
func (w *Watcher) WaitForChange(ctx context.Context, previous []models.File) ([]models.File, error) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return previous, ctx.Err()
		case <-ticker.C:
			current := w.Fingerprint()
			if Changed(previous, current) {
				return current, nil
			}
		}
	}
}

// Run calls fn once, then again after every change until ctx is cancelled.
// Errors from fn are logged and watching continues.
func (w *Watcher) Run(ctx context.Context, fn func() error) error {
	fingerprint := w.Fingerprint()
	if err := fn(); err != nil {
		w.logger.Error("generation failed", "err", err)
	}

	w.logger.Info("watching for changes", "roots", w.roots, "interval", w.interval)
	for {
		var err error
		fingerprint, err = w.WaitForChange(ctx, fingerprint)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}

		w.logger.Info("change detected, regenerating")
		if err := fn(); err != nil {
			w.logger.Error("generation failed", "err", err)
		}
	}
}
