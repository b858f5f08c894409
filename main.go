package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"deskmenu/internal/backup"
	"deskmenu/internal/config"
	"deskmenu/internal/customapps"
	"deskmenu/internal/diff"
	"deskmenu/internal/generate"
	"deskmenu/internal/ui"
	"deskmenu/internal/watch"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Version info (set by ldflags)
var (
	version   = "dev"
	buildTime = "unknown"
)

// options holds the command-line flags
type options struct {
	configPath  string
	menuName    string
	launchers   string
	debug       bool
	backup      bool
	diff        bool
	print       bool
	color       bool
	watch       bool
	interval    time.Duration
	writeConfig bool
}

// targets is what a run scans and where it writes
type targets struct {
	Roots       []string
	Destination string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "deskmenu [flags] DIR... DEST",
		Short: "Generate a JWM menu from XDG desktop entries",
		Long: ui.TitleStyle.Render("deskmenu") + ui.HelpDescStyle.Render(" - Generate a JWM menu from XDG desktop entries") + `

Every .desktop file below the given directories with an Exec key becomes
a Program node, grouped into one submenu per category. The last argument
is the destination include file, which is always overwritten.`,
		Version:       fmt.Sprintf("%s (built %s)", version, buildTime),
		SilenceUsage:  true,
		SilenceErrors: true,
		FParseErrWhitelist: cobra.FParseErrWhitelist{
			UnknownFlags: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	cmd.SetVersionTemplate(ui.VersionStyle.Render("deskmenu {{.Version}}") + "\n")

	flags := cmd.Flags()
	flags.StringVar(&opts.menuName, "menu-name", config.DefaultMenuName, "label of the root menu")
	flags.StringVar(&opts.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/deskmenu/config.yaml)")
	flags.StringVar(&opts.launchers, "launchers", "", "YAML file with extra launchers (default is $XDG_CONFIG_HOME/deskmenu/launchers.yaml)")
	flags.BoolVarP(&opts.debug, "debug", "d", false, "log every file and category read")
	flags.BoolVar(&opts.backup, "backup", false, "back up the destination before overwriting it")
	flags.BoolVar(&opts.diff, "diff", false, "show changes against the destination without writing")
	flags.BoolVar(&opts.print, "print", false, "print the menu to stdout without writing")
	flags.BoolVar(&opts.color, "color", true, "highlight --print and --diff output")
	flags.BoolVarP(&opts.watch, "watch", "w", false, "regenerate whenever a desktop entry changes")
	flags.DurationVar(&opts.interval, "interval", watch.DefaultInterval, "polling interval for --watch")
	flags.BoolVar(&opts.writeConfig, "write-config", false, "save the effective settings to the config file and exit")

	return cmd
}

func newLogger(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "deskmenu",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	configPath := config.ConfigPath()
	if opts.configPath != "" {
		configPath = config.ExpandPath(opts.configPath)
	}

	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg, opts)

	logger := newLogger(cmd.ErrOrStderr(), cfg.Debug)
	log.SetDefault(logger)
	logger.Debug("config loaded", "file", configPath)

	if opts.writeConfig {
		return saveConfig(cmd.OutOrStdout(), cfg, args, configPath)
	}

	t, ok := resolveTargets(args, cfg, cmd.OutOrStdout(), logger)
	if !ok {
		return nil
	}

	genOpts := generate.Options{
		Roots:       t.Roots,
		Destination: t.Destination,
		MenuName:    cfg.MenuName,
		Launchers:   customapps.New(cfg.LaunchersFile),
	}
	if cfg.Backup {
		genOpts.Backup = backup.New(cfg.GetBackupDir(t.Destination), cfg.BackupKeep)
	}
	gen := generate.New(genOpts, logger)

	switch {
	case opts.print:
		return printMenu(cmd.OutOrStdout(), gen, opts.color)
	case opts.diff:
		return printDiff(cmd.OutOrStdout(), gen, opts.color)
	case opts.watch:
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		w := watch.New(t.Roots, opts.interval, logger).WithFiles(genOpts.Launchers.Path())
		return w.Run(ctx, func() error {
			_, err := gen.Run()
			return err
		})
	default:
		_, err := gen.Run()
		return err
	}
}

// applyFlags overrides config values with flags given on the command line
func applyFlags(cmd *cobra.Command, cfg *config.Config, opts *options) {
	flags := cmd.Flags()
	if flags.Changed("menu-name") {
		cfg.MenuName = opts.menuName
	}
	if flags.Changed("launchers") {
		cfg.LaunchersFile = config.ExpandPath(opts.launchers)
	}
	if flags.Changed("debug") {
		cfg.Debug = opts.debug
	}
	if flags.Changed("backup") {
		cfg.Backup = opts.backup
	}
}

// resolveTargets picks roots and destination: positional arguments first,
// then the config file, then the per-user default directory. It returns
// false when there is nothing to do.
func resolveTargets(args []string, cfg *config.Config, stdout io.Writer, logger *log.Logger) (targets, bool) {
	if len(args) >= 2 {
		return targets{
			Roots:       args[:len(args)-1],
			Destination: args[len(args)-1],
		}, true
	}

	if len(cfg.Roots) > 0 {
		logger.Debug("using roots from config", "roots", cfg.Roots, "destination", cfg.Destination)
		return targets{Roots: cfg.Roots, Destination: cfg.Destination}, true
	}

	fmt.Fprintln(stdout, usage())
	logger.Warn("You must specify a directory and a destination file to write/overwrite.")

	root, dest := config.DefaultRoot(), config.DefaultDestination()
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return targets{}, false
	}

	logger.Warn("Defaulting to", "root", root, "destination", dest)
	return targets{Roots: []string{root}, Destination: dest}, true
}

func usage() string {
	root, dest := config.DefaultRoot(), config.DefaultDestination()

	var sb strings.Builder
	sb.WriteString(ui.HeaderStyle.Render("deskmenu") + " generates a JWM submenu from a directory of XDG .desktop files.\n")
	sb.WriteString(ui.MutedStyle.Render("Comments are ignored. Only entries with an Exec key become Program nodes.") + "\n\n")
	sb.WriteString(ui.TitleStyle.Render("Usage:") + "\n")
	sb.WriteString("  " + ui.RenderHelpLine("deskmenu [--menu-name NAME] DIR... DEST", "scan DIRs and overwrite DEST") + "\n\n")
	sb.WriteString(ui.TitleStyle.Render("Example:") + "\n")
	sb.WriteString("  deskmenu " + root + " " + dest + "\n\n")
	sb.WriteString("Then add the following inside of a RootMenu node in ~/.jwmrc:\n")
	sb.WriteString("  " + ui.HelpKeyStyle.Render("<Include>"+dest+"</Include>"))
	return sb.String()
}

func saveConfig(stdout io.Writer, cfg *config.Config, args []string, path string) error {
	if len(args) >= 2 {
		cfg.Roots = args[:len(args)-1]
		cfg.Destination = args[len(args)-1]
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.Save(path); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	fmt.Fprintln(stdout, ui.RenderNotification("Config saved to "+path, ui.NotificationSuccess))
	return nil
}

func printMenu(stdout io.Writer, gen *generate.Generator, color bool) error {
	result, err := gen.Generate()
	if err != nil {
		return err
	}

	doc := string(result.Document)
	if color {
		doc = ui.NewHighlighter().Highlight(doc, "menu.xml")
	}
	_, err = io.WriteString(stdout, doc)
	return err
}

func printDiff(stdout io.Writer, gen *generate.Generator, color bool) error {
	_, changes, err := gen.Diff()
	if err != nil {
		return err
	}

	if !changes.HasChanges() {
		fmt.Fprintln(stdout, ui.RenderDiffStats(changes))
		return nil
	}

	if color {
		fmt.Fprint(stdout, ui.RenderDiff(changes))
		fmt.Fprintln(stdout, ui.RenderDiffStats(changes))
	} else {
		fmt.Fprint(stdout, diff.FormatUnifiedDiff(changes))
		fmt.Fprintln(stdout, changes.Summary())
	}
	return nil
}

func main() {
	cmd := newRootCmd()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
