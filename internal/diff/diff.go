package diff

import (
	"os"
	"strconv"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// contextLines is the number of unchanged lines kept around each change
const contextLines = 3

// DiffType represents the type of diff operation
type DiffType int

const (
	DiffEqual DiffType = iota
	DiffInsert
	DiffDelete
)

// DiffLine represents a single line in the diff
type DiffLine struct {
	Type    DiffType
	Content string
}

// DiffHunk is a run of changes with surrounding context
type DiffHunk struct {
	Lines []DiffLine
}

// DiffResult contains the diff between the current file and new content
type DiffResult struct {
	OldPath      string
	OldExists    bool
	Identical    bool
	Hunks        []DiffHunk
	LinesAdded   int
	LinesRemoved int
}

// Compute diffs the file at oldPath against newText. A missing file is
// compared as empty.
func Compute(oldPath, newText string) (*DiffResult, error) {
	oldContent, err := os.ReadFile(oldPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	result := Text(string(oldContent), newText)
	result.OldPath = oldPath
	result.OldExists = err == nil
	return result, nil
}

// Text computes a line diff between two texts using go-diff
func Text(oldText, newText string) *DiffResult {
	result := &DiffResult{}

	dmp := diffmatchpatch.New()
	chars1, chars2, lineArray := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffMain(chars1, chars2, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var lines []DiffLine
	for _, d := range diffs {
		var lineType DiffType
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			lineType = DiffInsert
		case diffmatchpatch.DiffDelete:
			lineType = DiffDelete
		default:
			lineType = DiffEqual
		}

		for _, line := range splitLines(d.Text) {
			lines = append(lines, DiffLine{Type: lineType, Content: line})
			switch lineType {
			case DiffInsert:
				result.LinesAdded++
			case DiffDelete:
				result.LinesRemoved++
			}
		}
	}

	result.Hunks = groupHunks(lines)
	result.Identical = len(result.Hunks) == 0
	return result
}

// groupHunks keeps changed lines plus contextLines of context on each side
func groupHunks(lines []DiffLine) []DiffHunk {
	keep := make([]bool, len(lines))
	for i, line := range lines {
		if line.Type == DiffEqual {
			continue
		}
		for j := max(0, i-contextLines); j <= min(len(lines)-1, i+contextLines); j++ {
			keep[j] = true
		}
	}

	var hunks []DiffHunk
	var current *DiffHunk
	for i, line := range lines {
		if !keep[i] {
			if current != nil {
				hunks = append(hunks, *current)
				current = nil
			}
			continue
		}
		if current == nil {
			current = &DiffHunk{}
		}
		current.Lines = append(current.Lines, line)
	}
	if current != nil {
		hunks = append(hunks, *current)
	}
	return hunks
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// FormatUnifiedDiff formats the diff result as unified diff
func FormatUnifiedDiff(result *DiffResult) string {
	var sb strings.Builder

	sb.WriteString("--- " + result.OldPath + "\n")
	sb.WriteString("+++ " + result.OldPath + " (generated)\n")

	for _, hunk := range result.Hunks {
		sb.WriteString("@@\n")
		for _, line := range hunk.Lines {
			sb.WriteString(Prefix(line.Type) + line.Content + "\n")
		}
	}

	return sb.String()
}

// Prefix returns the unified diff marker for a line type
func Prefix(t DiffType) string {
	switch t {
	case DiffInsert:
		return "+"
	case DiffDelete:
		return "-"
	default:
		return " "
	}
}

// HasChanges returns true if there are any changes
func (d *DiffResult) HasChanges() bool {
	return !d.Identical
}

// Summary returns a brief summary of changes
func (d *DiffResult) Summary() string {
	if d.Identical {
		return "No changes"
	}

	var parts []string
	if d.LinesAdded > 0 {
		parts = append(parts, "+"+strconv.Itoa(d.LinesAdded))
	}
	if d.LinesRemoved > 0 {
		parts = append(parts, "-"+strconv.Itoa(d.LinesRemoved))
	}
	return strings.Join(parts, " ")
}
