// ABOUTME: demo subcommand: a full-window scene exercising every renderer
// ABOUTME: --watch repaints on resize and on settings or style file changes until interrupted

package main

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/mauromedda/termdraw/internal/config"
	"github.com/mauromedda/termdraw/internal/log"
	"github.com/mauromedda/termdraw/pkg/draw"
	"github.com/mauromedda/termdraw/pkg/draw/figlet"
	"github.com/mauromedda/termdraw/pkg/draw/layout"
	"github.com/mauromedda/termdraw/pkg/draw/render"
	"github.com/mauromedda/termdraw/pkg/draw/seq"
	"github.com/mauromedda/termdraw/pkg/draw/terminal"
)

// Smallest window the full scene is laid out in.
const (
	demoMinWidth  = 30
	demoMinHeight = 14
)

func newDemoCmd(a *app) *cobra.Command {
	var (
		watch    bool
		interval time.Duration
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Draw a sample scene that uses every renderer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, _, err := terminal.EnsureReady(a.term); err != nil {
				return err
			}
			if !watch {
				return a.console.Batch(func() error {
					if err := a.console.Clear(); err != nil {
						return err
					}
					return demoScene(a.console)
				})
			}
			return a.watch(cmd.Context(), interval)
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", false, "Keep redrawing on resize and settings changes until interrupted")
	cmd.Flags().DurationVar(&interval, "interval", config.DefaultInterval, "Polling interval for settings changes")
	return cmd
}

// watch runs the scene on the alternate screen until ctx is cancelled.
func (a *app) watch(ctx context.Context, interval time.Duration) error {
	if _, err := a.term.Write([]byte(seq.AltScreenEnter + seq.HideCursor)); err != nil {
		return err
	}
	defer terminal.Restore(a.term)

	a.console.Start(demoScene)
	defer a.console.Stop()

	w := config.NewWatcher(interval, a.watchPaths()...)
	err := w.Run(ctx, func() {
		d, err := a.resolve()
		if err != nil {
			log.Warn("demo: reload: %v", err)
			return
		}
		log.Debug("demo: settings changed, redrawing")
		a.console.SetDefaults(d)
	})
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

var demoBars = []render.Bar{
	{Label: "single", Value: 3},
	{Label: "double", Value: 5},
	{Label: "rounded", Value: 8},
	{Label: "heavy", Value: 2},
}

// demoScene lays out a titled frame holding a banner, a progress bar, a
// bar chart, a vertical slider and a line of wrapped text.
func demoScene(c *draw.Console) error {
	win, err := c.Window()
	if err != nil {
		return err
	}
	if win.Width < demoMinWidth || win.Height < demoMinHeight {
		_, err := c.Text(render.TextSpec{
			Text:   "window too small for the demo",
			Region: win,
			Align:  layout.AlignCenter,
			Middle: true,
		})
		return err
	}

	outer := layout.Rect(0, 0, win.Width-2, win.Height-2)
	in := outer.Interior()
	errs := []error{c.Frame(render.FrameSpec{Region: outer, Title: "termdraw"})}

	// The slider takes the rightmost interior column, everything else the rest.
	contentW := in.Width - 2
	pl, err := c.Figlet(figlet.PlaceSpec{
		Text:         "termdraw",
		Top:          in.Top,
		Center:       in.Left + contentW/2,
		WindowWidth:  in.Left + contentW,
		WindowHeight: win.Height - 1,
	})
	errs = append(errs, err)

	y := pl.Top + max(pl.Height, 1) + 1
	errs = append(errs, c.Progress(render.ProgressSpec{
		Track: render.Track{Region: layout.Rect(in.Left, y, contentW-2, 1), Border: true},
		Value: 66,
		Max:   100,
	}))
	y += 3

	if chartH := min(len(demoBars), in.Top+in.Height-y-2); chartH > 0 {
		errs = append(errs, c.BarChart(render.ChartSpec{
			Region:     layout.Rect(in.Left, y, contentW, chartH),
			Bars:       demoBars,
			ShowValues: true,
		}))
		y += chartH + 1
	}

	if rows := in.Top + in.Height - y; rows > 0 {
		_, err := c.Text(render.TextSpec{
			Text:   "Edit ~/.termdraw/config.yaml or resize the window to redraw.",
			Region: layout.Rect(in.Left, y, contentW, rows),
			Align:  layout.AlignCenter,
		})
		errs = append(errs, err)
	}

	errs = append(errs, c.Slider(render.SliderSpec{
		Track:    render.Track{Region: layout.Rect(in.Left+in.Width-1, in.Top, 1, in.Height)},
		Value:    40,
		Max:      100,
		Vertical: true,
		Reverse:  true,
	}))
	return errors.Join(errs...)
}
