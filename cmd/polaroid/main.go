// Polaroid: a birthday gallery of photos hung on strings of lights.
//
// Usage:
//
//	polaroid [flags]            browse the gallery in the terminal
//	polaroid export [flags]     write the gallery as a static HTML page
//	polaroid themes             list built-in themes
//
// Flags:
//
//	--config      YAML config file
//	--images      Directory holding <id>.<ext> photos (default: images)
//	--count       Number of photos (default: 100)
//	--theme       Built-in theme name (default: meadow)
//	--theme-file  YAML theme file, overrides --theme; reloaded on save
//	--seed        Fix rotations, offsets and decorations (0 = random)
//	--log         Log file (default: $TMPDIR/polaroid.log)
//	--debug       Log at debug level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Mr-Dark-debug/polaroid/internal/config"
	"github.com/Mr-Dark-debug/polaroid/internal/decor"
	"github.com/Mr-Dark-debug/polaroid/internal/export"
	"github.com/Mr-Dark-debug/polaroid/internal/logging"
	"github.com/Mr-Dark-debug/polaroid/internal/photo"
	"github.com/Mr-Dark-debug/polaroid/internal/theme"
	"github.com/Mr-Dark-debug/polaroid/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// flags holds command-line overrides. Only flags the user actually set
// replace config values.
type flags struct {
	configPath string
	imageDir   string
	count      int
	theme      string
	themeFile  string
	seed       uint64
	logPath    string
	debug      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:   "polaroid",
		Short: "A gallery of polaroids hung on strings of lights",
		Long: `Polaroid hangs a set of photos on strings of fairy lights, six to a
string, with confetti, balloons and a lightbox for a closer look.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, f)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "YAML config file")
	pf.StringVar(&f.imageDir, "images", "", "Directory holding <id>.<ext> photos")
	pf.IntVar(&f.count, "count", 0, "Number of photos")
	pf.StringVar(&f.theme, "theme", "", "Built-in theme name")
	pf.StringVar(&f.themeFile, "theme-file", "", "YAML theme file, overrides --theme")
	pf.Uint64Var(&f.seed, "seed", 0, "Random seed for rotations, offsets and decorations (0 = random)")
	pf.StringVar(&f.logPath, "log", "", "Log file")
	pf.BoolVar(&f.debug, "debug", false, "Log at debug level")

	root.AddCommand(newExportCmd(f), newThemesCmd())
	return root
}

func newExportCmd(f *flags) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the gallery as a static HTML page",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, f, out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "polaroid.html", "Output file (- for stdout)")
	return cmd
}

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List built-in themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range theme.Names() {
				th, err := theme.Builtin(name)
				if err != nil {
					return err
				}
				marker := " "
				if name == theme.DefaultName {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-10s %s\n", marker, name, th.Title)
			}
			return nil
		},
	}
}

// loadConfig merges the config file with the flags the user set.
func loadConfig(cmd *cobra.Command, f *flags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}

	changed := cmd.Flags().Changed
	if changed("images") {
		cfg.ImageDir = f.imageDir
	}
	if changed("count") {
		cfg.Count = f.count
	}
	if changed("theme") {
		cfg.Theme = f.theme
	}
	if changed("theme-file") {
		cfg.ThemeFile = f.themeFile
	}
	if changed("seed") {
		cfg.Seed = f.seed
	}
	if changed("log") {
		cfg.LogPath = f.logPath
	}
	if changed("debug") {
		cfg.Debug = f.debug
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func runTUI(cmd *cobra.Command, f *flags) error {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}
	th, err := cfg.ResolveTheme()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogPath, cfg.Debug)
	if err != nil {
		return err
	}
	defer logger.Sync()

	rng := photo.NewRand(cfg.Seed)
	photos := photo.Generate(cfg.Count, rng, cfg.PhotoOptions(th))
	logger.Info("gallery starting",
		zap.String("theme", th.Name),
		zap.String("images", cfg.ImageDir),
		zap.Int("photos", len(photos)),
		zap.Uint64("seed", cfg.Seed))

	opts := tui.Options{
		Photos:    photos,
		Theme:     th,
		GroupSize: cfg.GroupSize,
		Bulbs:     cfg.Bulbs,
		Decor:     cfg.DecorCounts(),
		Rand:      rng,
		Logger:    logger,
	}
	if cfg.ThemeFile != "" {
		watcher, err := theme.Watch(cfg.ThemeFile, theme.DefaultDebounce)
		if err != nil {
			// Live reload is a convenience; the gallery still runs.
			logger.Warn("theme file not watched", zap.String("path", cfg.ThemeFile), zap.Error(err))
		} else {
			defer watcher.Close()
			opts.ThemeUpdates = watcher.Updates()
		}
	}

	model, err := tui.NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running gallery: %w", err)
	}
	return nil
}

func runExport(cmd *cobra.Command, f *flags, out string) error {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}
	th, err := cfg.ResolveTheme()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogPath, cfg.Debug)
	if err != nil {
		return err
	}
	defer logger.Sync()

	rng := photo.NewRand(cfg.Seed)
	page := export.Page{
		Theme:     th,
		Photos:    photo.Generate(cfg.Count, rng, cfg.PhotoOptions(th)),
		GroupSize: cfg.GroupSize,
		SpacingPx: cfg.SpacingPx,
		Bulbs:     cfg.Bulbs,
	}
	page.Scene = decor.Generate(rng, th, cfg.DecorCounts())

	if out == "-" {
		err = export.Render(cmd.OutOrStdout(), page)
	} else {
		file, cerr := os.Create(out)
		if cerr != nil {
			return fmt.Errorf("creating %s: %w", out, cerr)
		}
		err = writePage(file, out, page)
	}
	if err != nil {
		return err
	}
	logger.Info("gallery exported", zap.String("out", out), zap.String("theme", th.Name), zap.Int("photos", len(page.Photos)))
	if out != "-" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", out)
	}
	return nil
}

// writePage renders page into w and closes it. A failed close means the
// page may not have reached the disk, so it is reported like a failed
// write.
func writePage(w io.WriteCloser, name string, page export.Page) error {
	if err := export.Render(w, page); err != nil {
		w.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", name, err)
	}
	return nil
}
