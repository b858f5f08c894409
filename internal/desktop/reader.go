// Package desktop reads XDG desktop entry files.
package desktop

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"deskmenu/internal/models"
)

// GroupHeader opens the group whose keys become the entry
const GroupHeader = "[Desktop Entry]"

// ErrNoHeader is returned for files that never contain a [Desktop Entry] line
var ErrNoHeader = errors.New("no [Desktop Entry] header")

// ReadFile parses the desktop entry file at path
func ReadFile(path string) (*models.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entry, err := Parse(f, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entry, nil
}

// Parse reads key=value lines of the [Desktop Entry] group from r.
// Lines before the header, comments, blank lines and lines without '='
// are ignored. Keys seen later replace earlier values.
//
// Keys in other groups, such as a [Desktop Action new-window] that
// follows the entry, are skipped and never replace the entry's own
// values. Lines have no length limit.
func Parse(r io.Reader, path string) (*models.Entry, error) {
	var entry *models.Entry
	inGroup := false

	reader := bufio.NewReader(r)
	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, readErr
		}
		if readErr == io.EOF && line == "" {
			break
		}
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")

		if strings.HasPrefix(line, "#") {
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if trimmed == GroupHeader {
			if entry == nil {
				entry = models.NewEntry(path)
			}
			inGroup = true
			continue
		}
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			inGroup = false
			continue
		}
		if !inGroup {
			continue
		}

		if key, value, found := strings.Cut(line, "="); found {
			entry.Set(strings.TrimSpace(key), strings.TrimSpace(value))
		}
	}

	if entry == nil {
		return nil, ErrNoHeader
	}
	return entry, nil
}
