// ABOUTME: Root cobra command: persistent flags, settings resolution and console setup
// ABOUTME: Settings come from config files, then --style, then the colour and border flags

package main

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/mauromedda/termdraw/internal/config"
	"github.com/mauromedda/termdraw/internal/log"
	"github.com/mauromedda/termdraw/pkg/draw"
	"github.com/mauromedda/termdraw/pkg/draw/layout"
	"github.com/mauromedda/termdraw/pkg/draw/style"
	"github.com/mauromedda/termdraw/pkg/draw/terminal"
)

type options struct {
	configPath string
	stylePath  string
	noColor    bool
	verbose    bool
	border     string
	fg         string
	bg         string
}

// app carries the state shared by every subcommand.
type app struct {
	opts     options
	term     terminal.Terminal
	settings *config.Settings
	console  *draw.Console
}

// profiler is implemented by terminals that can detect their colour support.
type profiler interface {
	Profile() termenv.Profile
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "termdraw",
		Short: "Draw text, frames, gauges and banners at absolute terminal positions",
		Long: `termdraw renders positioned, coloured output straight to the terminal:
wrapped text, paginated files, bordered frames, progress bars, sliders,
bar charts and figlet banners that fall back gracefully when they do not fit.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetVersionTemplate(fmt.Sprintf("termdraw %s\n  commit: %s\n  built:  %s\n", version, commit, date))

	f := root.PersistentFlags()
	f.StringVar(&a.opts.configPath, "config", "", "Settings file (default: ~/.termdraw/config.yaml merged with .termdraw/config.yaml)")
	f.StringVar(&a.opts.stylePath, "style", "", "Style file (.yaml, .toml or .json)")
	f.BoolVar(&a.opts.noColor, "no-color", false, "Disable colour output")
	f.BoolVarP(&a.opts.verbose, "verbose", "v", false, "Enable debug logging")
	f.StringVar(&a.opts.border, "border", "", "Border set: single, double, rounded, heavy, ascii")
	f.StringVar(&a.opts.fg, "fg", "", "Foreground colour (name, 0-255 or #rrggbb)")
	f.StringVar(&a.opts.bg, "bg", "", "Background colour (name, 0-255 or #rrggbb)")

	root.AddCommand(
		newTextCmd(a),
		newPageCmd(a),
		newFrameCmd(a),
		newBoxCmd(a),
		newProgressCmd(a),
		newSliderCmd(a),
		newChartCmd(a),
		newFigletCmd(a),
		newDemoCmd(a),
	)
	return root
}

// setup loads settings, resolves the defaults and creates the console.
func (a *app) setup(*cobra.Command, []string) error {
	if a.opts.verbose {
		log.SetLevel(log.LevelDebug)
	}

	d, err := a.resolve()
	if err != nil {
		return err
	}
	if !a.opts.verbose && a.settings.LogLevel != "" {
		l, err := log.ParseLevel(a.settings.LogLevel)
		if err != nil {
			return err
		}
		log.SetLevel(l)
	}

	style.SetCurrent(d)
	a.console = draw.NewConsole(a.term, d)
	return nil
}

// resolve reads every settings source and layers them over the built-in
// defaults. It is re-run when watched files change.
func (a *app) resolve() (style.Defaults, error) {
	var (
		s   *config.Settings
		err error
	)
	if a.opts.configPath != "" {
		s, err = config.LoadFile(a.opts.configPath)
	} else {
		var cwd string
		if cwd, err = os.Getwd(); err == nil {
			s, err = config.Load(cwd)
		}
	}
	if err != nil {
		return style.Defaults{}, fmt.Errorf("loading settings: %w", err)
	}
	a.settings = s

	base := style.Builtin()
	if p, ok := a.term.(profiler); ok && s.Profile == "" {
		base.Style.Profile = p.Profile()
	}

	d, err := s.Resolve(base)
	if err != nil {
		return style.Defaults{}, err
	}
	if a.opts.stylePath != "" {
		if d, err = style.LoadFileOver(a.opts.stylePath, d); err != nil {
			return style.Defaults{}, err
		}
	}
	d, err = d.With(style.Overrides{Border: a.opts.border, Foreground: a.opts.fg, Background: a.opts.bg})
	if err != nil {
		return style.Defaults{}, err
	}
	if a.opts.noColor {
		d.Style = d.Style.WithoutColor()
	}
	log.Debug("defaults: border=%s font=%s color=%t", d.Border.Name, d.Font, d.Style.Active())
	return d, nil
}

// watchPaths lists the files whose changes trigger a demo redraw.
func (a *app) watchPaths() []string {
	if a.opts.configPath != "" {
		paths := []string{a.opts.configPath}
		if a.settings.StyleFile != "" {
			paths = append(paths, a.settings.StyleFile)
		}
		return append(paths, a.extraStylePath()...)
	}
	cwd, _ := os.Getwd()
	return append(a.settings.WatchPaths(cwd), a.extraStylePath()...)
}

func (a *app) extraStylePath() []string {
	if a.opts.stylePath == "" {
		return nil
	}
	return []string{a.opts.stylePath}
}

// fit fills zero Width and Height of r from the window, leaving room for a
// border when bordered is set.
func (a *app) fit(r layout.Region, bordered bool) (layout.Region, error) {
	if r.Width > 0 && r.Height > 0 {
		return r, nil
	}
	win, err := a.console.Window()
	if err != nil {
		return r, err
	}
	edge := 0
	if bordered {
		edge = 2
	}
	if r.Width <= 0 {
		r.Width = max(0, win.Width-r.Left-edge)
	}
	if r.Height <= 0 {
		r.Height = max(0, win.Height-r.Top-edge)
	}
	return r, nil
}

func addRegionFlags(cmd *cobra.Command, r *layout.Region) {
	f := cmd.Flags()
	f.IntVar(&r.Left, "left", 0, "Column of the region origin (0-based)")
	f.IntVar(&r.Top, "top", 0, "Row of the region origin (0-based)")
	f.IntVar(&r.Width, "width", 0, "Interior width in cells (0: to the window edge)")
	f.IntVar(&r.Height, "height", 0, "Interior height in rows (0: to the window edge)")
}
