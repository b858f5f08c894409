package customapps

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"deskmenu/internal/config"
	"deskmenu/internal/models"

	"gopkg.in/yaml.v3"
)

const launchersFileName = "launchers.yaml"

// Store reads user-defined launchers from a YAML file.
type Store struct {
	path string
}

// New creates a new launcher store.
func New(path string) *Store {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath()
	}
	return &Store{path: path}
}

// DefaultPath returns the default launchers file path.
func DefaultPath() string {
	return filepath.Join(config.ConfigDir(), launchersFileName)
}

// Path returns the file backing the store.
func (s *Store) Path() string {
	return s.path
}

// Load returns all launcher definitions. A missing file yields none.
func (s *Store) Load() ([]models.LauncherDefinition, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.LauncherDefinition{}, nil
		}
		return nil, err
	}

	var cfg models.LauncherConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}

	defs := make([]models.LauncherDefinition, 0, len(cfg.Launchers))
	for i, def := range cfg.Launchers {
		def, err := sanitizeDefinition(def)
		if err != nil {
			return nil, fmt.Errorf("%s: launcher %d: %w", s.path, i+1, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// Entries loads the launchers as desktop entries.
func (s *Store) Entries() ([]*models.Entry, error) {
	defs, err := s.Load()
	if err != nil {
		return nil, err
	}

	entries := make([]*models.Entry, 0, len(defs))
	for _, def := range defs {
		entries = append(entries, models.NewEntryFromDefinition(def, s.path))
	}
	return entries, nil
}

func sanitizeDefinition(def models.LauncherDefinition) (models.LauncherDefinition, error) {
	def.Name = strings.TrimSpace(def.Name)
	def.Exec = strings.TrimSpace(def.Exec)
	def.Icon = strings.TrimSpace(def.Icon)
	def.Categories = strings.TrimSpace(def.Categories)

	if def.Exec == "" {
		if def.Name != "" {
			return def, fmt.Errorf("exec is required for %q", def.Name)
		}
		return def, fmt.Errorf("exec is required")
	}
	return def, nil
}
