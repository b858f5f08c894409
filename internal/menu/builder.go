// Package menu turns categorized desktop entries into a JWM menu tree and
// writes it out as an include file.
package menu

import (
	"sort"

	"deskmenu/internal/launcher"
	"deskmenu/internal/models"

	"github.com/charmbracelet/log"
)

// DefaultLabel is the label of the root menu
const DefaultLabel = "Programs"

// Builder assembles the menu tree
type Builder struct {
	label  string
	logger *log.Logger
}

// NewBuilder creates a builder for a root menu with the given label
func NewBuilder(label string, logger *log.Logger) *Builder {
	if label == "" {
		label = DefaultLabel
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Builder{label: label, logger: logger}
}

// Build creates the root menu. Named categories become submenus in sorted
// order; uncategorized entries are attached to the root after them. Within
// a category, programs are sorted by name and a command is emitted once.
// Entries are resolved in place (see launcher.Resolve) before sorting.
func (b *Builder) Build(index models.CategoryIndex) (*models.Menu, error) {
	root := models.NewMenu(b.label)
	submenus := make(map[string]*models.Menu)
	resolved := make(map[*models.Entry]bool)

	for _, cat := range index.Order() {
		b.logger.Debug("  *", "category", cat)

		target := root
		if !cat.IsUncategorized() {
			target = submenus[cat.Label()]
			if target == nil {
				target = models.NewMenu(cat.Label())
				submenus[cat.Label()] = target
				root.Append(target)
			}
		}

		items := index[cat]
		for _, entry := range items {
			if resolved[entry] {
				continue
			}
			if err := launcher.Resolve(entry); err != nil {
				return nil, err
			}
			resolved[entry] = true
		}

		sorted := make([]*models.Entry, len(items))
		copy(sorted, items)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Name() < sorted[j].Name()
		})

		emitted := make(map[string]bool)
		for _, entry := range sorted {
			command := entry.Exec()
			if emitted[command] {
				b.logger.Debug("  - duplicate", "command", command)
				continue
			}
			emitted[command] = true
			b.logger.Debug("  -", "command", command)

			program := &models.Program{
				Label:   entry.Name(),
				Command: command,
			}
			if icon, ok := entry.Icon(); ok {
				program.Icon = icon
			}
			target.Append(program)
		}
	}

	return root, nil
}
