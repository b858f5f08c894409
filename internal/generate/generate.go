// Package generate runs the full pipeline from desktop entry directories to
// a written menu file.
package generate

import (
	"fmt"

	"deskmenu/internal/backup"
	"deskmenu/internal/customapps"
	"deskmenu/internal/diff"
	"deskmenu/internal/menu"
	"deskmenu/internal/models"
	"deskmenu/internal/scanner"

	"github.com/charmbracelet/log"
)

// Options configures a generation run
type Options struct {
	Roots       []string
	Destination string
	MenuName    string
	Launchers   *customapps.Store      // optional extra launchers
	Backup      *backup.BackupManager // optional, backs up Destination before writing
}

// Result describes what a run produced
type Result struct {
	Menu       *models.Menu
	Document   []byte
	Entries    int // desktop entries read from the roots
	Launchers  int // custom launchers added
	Categories int // submenus in the root menu
	Programs   int // programs in the whole tree
	Backup     *backup.BackedUpFile
}

// Generator builds menus from Options
type Generator struct {
	opts    Options
	scanner *scanner.Scanner
	logger  *log.Logger
}

// New creates a generator. A nil logger uses the default logger.
func New(opts Options, logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.Default()
	}
	return &Generator{
		opts:    opts,
		scanner: scanner.New(logger),
		logger:  logger,
	}
}

// Generate scans the roots and builds the menu document without writing it
func (g *Generator) Generate() (*Result, error) {
	result := &Result{}

	entries, err := g.scanner.Scan(g.opts.Roots...)
	if err != nil {
		return nil, err
	}
	result.Entries = len(entries)

	if g.opts.Launchers != nil {
		custom, err := g.opts.Launchers.Entries()
		if err != nil {
			return nil, err
		}
		if len(custom) > 0 {
			g.logger.Debug("adding custom launchers", "file", g.opts.Launchers.Path(), "count", len(custom))
		}
		result.Launchers = len(custom)
		entries = append(entries, custom...)
	}

	index := scanner.GroupByCategory(entries)
	root, err := menu.NewBuilder(g.opts.MenuName, g.logger).Build(index)
	if err != nil {
		return nil, err
	}

	result.Menu = root
	result.Document = menu.Render(root)
	result.Categories = len(root.Submenus())
	result.Programs = root.CountPrograms()
	return result, nil
}

// Run generates the menu and writes it to the destination, backing up the
// previous file first when a backup manager is configured
func (g *Generator) Run() (*Result, error) {
	if g.opts.Destination == "" {
		return nil, fmt.Errorf("no destination given")
	}

	result, err := g.Generate()
	if err != nil {
		return nil, err
	}

	if g.opts.Backup != nil {
		backedUp, err := g.opts.Backup.Backup(g.opts.Destination)
		if err != nil {
			return nil, err
		}
		if backedUp != nil {
			g.logger.Debug("backed up menu",
				"from", backedUp.FilePath,
				"to", backedUp.DestPath,
				"hash", backup.QuickHash(backedUp.Hash),
				"reused", backedUp.Reused)
		}
		result.Backup = backedUp
	}

	if err := menu.WriteFile(g.opts.Destination, result.Menu); err != nil {
		return nil, err
	}

	g.logger.Info("menu written",
		"file", g.opts.Destination,
		"entries", result.Entries,
		"categories", result.Categories,
		"programs", result.Programs)
	return result, nil
}

// Diff generates the menu and compares it against the current destination
func (g *Generator) Diff() (*Result, *diff.DiffResult, error) {
	result, err := g.Generate()
	if err != nil {
		return nil, nil, err
	}

	changes, err := diff.Compute(g.opts.Destination, string(result.Document))
	if err != nil {
		return nil, nil, err
	}
	return result, changes, nil
}
