package customapps

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeLaunchers(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "launchers.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write error = %v", err)
	}
	return path
}

func TestNew_DefaultPath(t *testing.T) {
	store := New("  ")
	if store.Path() != DefaultPath() {
		t.Errorf("Expected default path %s, got %s", DefaultPath(), store.Path())
	}
	if filepath.Base(store.Path()) != "launchers.yaml" {
		t.Errorf("Expected launchers.yaml, got %s", filepath.Base(store.Path()))
	}
}

func TestStore_LoadMissingFile_ReturnsEmpty(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "missing.yaml"))

	defs, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(defs) != 0 {
		t.Fatalf("expected empty definitions, got %d", len(defs))
	}
}

func TestStore_Load(t *testing.T) {
	path := writeLaunchers(t, `launchers:
  - name: " Top "
    exec: xterm -e top
    icon: utilities-system-monitor
    categories: System;Monitor;
  - exec: /opt/tool/bin/tool %f
`)

	defs, err := New(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("expected 2 definitions, got %d", len(defs))
	}
	if defs[0].Name != "Top" {
		t.Errorf("expected trimmed name 'Top', got %q", defs[0].Name)
	}
	if defs[0].Categories != "System;Monitor;" {
		t.Errorf("unexpected categories: %q", defs[0].Categories)
	}
	if defs[1].Name != "" {
		t.Errorf("expected empty name, got %q", defs[1].Name)
	}
}

func TestStore_LoadMissingExec_ReturnsError(t *testing.T) {
	path := writeLaunchers(t, "launchers:\n  - name: Broken\n")

	_, err := New(path).Load()
	if err == nil {
		t.Fatal("expected error for launcher without exec")
	}
	if !strings.Contains(err.Error(), "Broken") {
		t.Errorf("expected error to name the launcher, got %v", err)
	}
}

func TestStore_LoadInvalidYAML_ReturnsError(t *testing.T) {
	path := writeLaunchers(t, "launchers: [unclosed\n")

	if _, err := New(path).Load(); err == nil {
		t.Fatal("expected YAML error")
	}
}

func TestStore_Entries(t *testing.T) {
	path := writeLaunchers(t, "launchers:\n  - name: Top\n    exec: xterm -e top\n")

	entries, err := New(path).Entries()
	if err != nil {
		t.Fatalf("Entries() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Path != path {
		t.Errorf("expected source %s, got %s", path, entries[0].Path)
	}
	if entries[0].Exec() != "xterm -e top" {
		t.Errorf("unexpected exec: %q", entries[0].Exec())
	}
	if _, ok := entries[0].Categories(); ok {
		t.Error("expected no categories to be declared")
	}
	if entries[0].Name() != "Top" {
		t.Errorf("unexpected name: %q", entries[0].Name())
	}
}
