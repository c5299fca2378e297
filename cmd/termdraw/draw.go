// ABOUTME: One-shot drawing subcommands: text, page, frame, box, progress, slider, chart, figlet
// ABOUTME: Each maps its flags onto a render spec and writes it through the console

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mauromedda/termdraw/internal/log"
	"github.com/mauromedda/termdraw/pkg/draw/figlet"
	"github.com/mauromedda/termdraw/pkg/draw/layout"
	"github.com/mauromedda/termdraw/pkg/draw/render"
	"github.com/mauromedda/termdraw/pkg/draw/width"
)

// readInput joins args, or reads stdin when there are none or the only
// argument is "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && (len(args) != 1 || args[0] != "-") {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func newTextCmd(a *app) *cobra.Command {
	var (
		region layout.Region
		align  string
		middle bool
		start  int
	)
	cmd := &cobra.Command{
		Use:   "text [words...]",
		Short: "Wrap and align text inside a region",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			mode, err := layout.ParseAlign(align)
			if err != nil {
				return err
			}
			r, err := a.fit(region, false)
			if err != nil {
				return err
			}
			n, err := a.console.Text(render.TextSpec{Text: text, Region: r, Align: mode, Middle: middle, Start: start})
			log.Debug("text: %d lines drawn", n)
			return err
		},
	}
	addRegionFlags(cmd, &region)
	cmd.Flags().StringVar(&align, "align", "left", "Horizontal alignment: left, center, right")
	cmd.Flags().BoolVar(&middle, "middle", false, "Centre the block vertically")
	cmd.Flags().IntVar(&start, "start", 0, "Skip this many display lines")
	return cmd
}

func newPageCmd(a *app) *cobra.Command {
	var (
		region layout.Region
		start  int
	)
	cmd := &cobra.Command{
		Use:   "page FILE",
		Short: "Show one page of a file, wrapped to the region width",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			r, err := a.fit(region, false)
			if err != nil {
				return err
			}
			lines := width.Wrap(strings.TrimRight(string(data), "\n"), r.Width)
			consumed, err := a.console.Page(render.PageSpec{Lines: lines, Start: start, Region: r})
			if err != nil {
				return err
			}
			if next := start + consumed; next < len(lines) {
				log.Info("page: next page starts at line %d of %d", next, len(lines))
			}
			return nil
		},
	}
	addRegionFlags(cmd, &region)
	cmd.Flags().IntVar(&start, "start", 0, "Index of the first line shown")
	return cmd
}

func newFrameCmd(a *app) *cobra.Command {
	var (
		region layout.Region
		title  string
		fill   bool
	)
	cmd := &cobra.Command{
		Use:   "frame",
		Short: "Draw a border around a region",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			r, err := a.fit(region, true)
			if err != nil {
				return err
			}
			f := render.FrameSpec{Region: r, Title: title}
			if fill {
				return a.console.BoxFrame(f)
			}
			return a.console.Frame(f)
		},
	}
	addRegionFlags(cmd, &region)
	cmd.Flags().StringVar(&title, "title", "", "Title shown in the top edge")
	cmd.Flags().BoolVar(&fill, "fill", false, "Also fill the interior with the background colour")
	return cmd
}

func newBoxCmd(a *app) *cobra.Command {
	var region layout.Region
	cmd := &cobra.Command{
		Use:   "box",
		Short: "Fill a region with background-coloured cells",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			r, err := a.fit(region, false)
			if err != nil {
				return err
			}
			return a.console.Box(render.BoxSpec{Region: r})
		},
	}
	addRegionFlags(cmd, &region)
	return cmd
}

type fillFlags struct {
	region   layout.Region
	min, max float64
	border   bool
	targeted bool
	filled   string
	empty    string
}

func (f *fillFlags) register(cmd *cobra.Command) {
	addRegionFlags(cmd, &f.region)
	fl := cmd.Flags()
	fl.Float64Var(&f.min, "min", 0, "Value of an empty track")
	fl.Float64Var(&f.max, "max", 100, "Value of a full track")
	fl.BoolVar(&f.border, "frame", false, "Draw a border around the track")
	fl.BoolVar(&f.targeted, "targeted", false, "One cell per unit while the range fits, scroll offset otherwise")
	fl.StringVar(&f.filled, "filled", "", "Glyph for filled cells")
	fl.StringVar(&f.empty, "empty", "", "Glyph for empty cells")
}

func (f *fillFlags) policy() layout.FillPolicy {
	if f.targeted {
		return layout.FillTargeted
	}
	return layout.FillLinear
}

func (f *fillFlags) track(a *app, vertical bool) (render.Track, error) {
	r := f.region
	if vertical {
		if r.Width <= 0 {
			r.Width = 1
		}
	} else if r.Height <= 0 {
		r.Height = 1
	}
	r, err := a.fit(r, f.border)
	if err != nil {
		return render.Track{}, err
	}
	return render.Track{Region: r, Filled: f.filled, Empty: f.empty, Border: f.border}, nil
}

func parseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q: %w", s, err)
	}
	return v, nil
}

func newProgressCmd(a *app) *cobra.Command {
	var ff fillFlags
	cmd := &cobra.Command{
		Use:   "progress VALUE",
		Short: "Draw a progress bar filled in proportion to VALUE",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			v, err := parseValue(args[0])
			if err != nil {
				return err
			}
			t, err := ff.track(a, false)
			if err != nil {
				return err
			}
			return a.console.Progress(render.ProgressSpec{Track: t, Value: v, Min: ff.min, Max: ff.max, Policy: ff.policy()})
		},
	}
	ff.register(cmd)
	return cmd
}

func newSliderCmd(a *app) *cobra.Command {
	var (
		ff       fillFlags
		vertical bool
		reverse  bool
	)
	cmd := &cobra.Command{
		Use:   "slider VALUE",
		Short: "Draw a horizontal or vertical slider",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			v, err := parseValue(args[0])
			if err != nil {
				return err
			}
			t, err := ff.track(a, vertical)
			if err != nil {
				return err
			}
			return a.console.Slider(render.SliderSpec{
				Track:    t,
				Value:    v,
				Min:      ff.min,
				Max:      ff.max,
				Policy:   ff.policy(),
				Vertical: vertical,
				Reverse:  reverse,
			})
		},
	}
	ff.register(cmd)
	cmd.Flags().BoolVar(&vertical, "vertical", false, "Fill a column instead of a row")
	cmd.Flags().BoolVar(&reverse, "reverse", false, "Fill from the far end")
	return cmd
}

// parseBars reads label=value pairs.
func parseBars(args []string) ([]render.Bar, error) {
	bars := make([]render.Bar, 0, len(args))
	for _, arg := range args {
		label, raw, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("invalid bar %q: want label=value", arg)
		}
		v, err := parseValue(raw)
		if err != nil {
			return nil, err
		}
		bars = append(bars, render.Bar{Label: label, Value: v})
	}
	return bars, nil
}

func newChartCmd(a *app) *cobra.Command {
	var (
		region     layout.Region
		top        float64
		showValues bool
		filled     string
	)
	cmd := &cobra.Command{
		Use:   "chart LABEL=VALUE...",
		Short: "Draw a horizontal bar chart",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			bars, err := parseBars(args)
			if err != nil {
				return err
			}
			r := region
			if r.Height <= 0 {
				r.Height = len(bars)
			}
			if r, err = a.fit(r, false); err != nil {
				return err
			}
			return a.console.BarChart(render.ChartSpec{Region: r, Bars: bars, Max: top, ShowValues: showValues, Filled: filled})
		},
	}
	addRegionFlags(cmd, &region)
	cmd.Flags().Float64Var(&top, "max", 0, "Value of a full-width bar (0: the largest value)")
	cmd.Flags().BoolVar(&showValues, "values", false, "Print each value after its bar")
	cmd.Flags().StringVar(&filled, "filled", "", "Glyph for bar cells")
	return cmd
}

func newFigletCmd(a *app) *cobra.Command {
	var (
		font   string
		top    int
		center int
	)
	cmd := &cobra.Command{
		Use:   "figlet TEXT...",
		Short: "Draw a block-letter banner, falling back to smaller text when it does not fit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			pl, err := a.console.Figlet(figlet.PlaceSpec{
				Text:   strings.Join(args, " "),
				Font:   font,
				Top:    top,
				Center: center,
			})
			if err != nil {
				return err
			}
			log.Debug("figlet: %s stage at (%d,%d) %dx%d", pl.Stage, pl.Left, pl.Top, pl.Width, pl.Height)
			return nil
		},
	}
	cmd.Flags().StringVar(&font, "font", "", "Figlet font (default from settings, then \"standard\")")
	cmd.Flags().IntVar(&top, "top", 0, "Row of the first banner row")
	cmd.Flags().IntVar(&center, "center", -1, "Column the banner is centred on (-1: window centre)")
	return cmd
}
