package diff

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestText(t *testing.T) {
	result := Text("line1\nline2\nline3\n", "line1\nmodified\nline3\nline4\n")

	if result.Identical {
		t.Error("Texts should not be identical")
	}
	if result.LinesAdded != 2 {
		t.Errorf("Expected 2 added lines, got %d", result.LinesAdded)
	}
	if result.LinesRemoved != 1 {
		t.Errorf("Expected 1 removed line, got %d", result.LinesRemoved)
	}
	if !result.HasChanges() {
		t.Error("HasChanges should be true")
	}
}

func TestText_Identical(t *testing.T) {
	result := Text("same\n", "same\n")

	if !result.Identical {
		t.Error("Texts should be identical")
	}
	if result.Summary() != "No changes" {
		t.Errorf("Expected 'No changes', got %q", result.Summary())
	}
}

func TestText_ContextIsLimited(t *testing.T) {
	var oldLines []string
	for i := 1; i <= 20; i++ {
		oldLines = append(oldLines, fmt.Sprintf("line%d", i))
	}
	newLines := append([]string{}, oldLines...)
	newLines[1] = "changed2"
	newLines[17] = "changed18"

	result := Text(strings.Join(oldLines, "\n")+"\n", strings.Join(newLines, "\n")+"\n")

	if len(result.Hunks) != 2 {
		t.Fatalf("Expected 2 hunks, got %d", len(result.Hunks))
	}
	for _, line := range result.Hunks[0].Lines {
		if line.Content == "line10" {
			t.Error("Lines far from any change should not be included")
		}
	}
}

func TestCompute_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu")

	result, err := Compute(path, "<JWM>\n</JWM>\n")
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if result.OldExists {
		t.Error("OldExists should be false")
	}
	if result.LinesAdded != 2 || result.LinesRemoved != 0 {
		t.Errorf("Expected +2 -0, got %s", result.Summary())
	}
}

func TestCompute_ExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu")
	os.WriteFile(path, []byte("a\nb\n"), 0644)

	result, err := Compute(path, "a\nc\n")
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if !result.OldExists {
		t.Error("OldExists should be true")
	}
	if result.Summary() != "+1 -1" {
		t.Errorf("Expected '+1 -1', got %q", result.Summary())
	}
}

func TestFormatUnifiedDiff(t *testing.T) {
	result := Text("a\nb\n", "a\nc\n")
	result.OldPath = "menu"

	out := FormatUnifiedDiff(result)

	for _, want := range []string{"--- menu\n", "+++ menu (generated)\n", "@@\n", " a\n", "-b\n", "+c\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestPrefix(t *testing.T) {
	if Prefix(DiffInsert) != "+" || Prefix(DiffDelete) != "-" || Prefix(DiffEqual) != " " {
		t.Error("Unexpected diff prefixes")
	}
}
