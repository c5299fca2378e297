// ABOUTME: Console ties renderers to a terminal: resolved defaults in, composed output out
// ABOUTME: Coalescing redraw loop repaints a scene on request, resize, or settings reload

// Package draw is the host-facing entry point of termdraw. The pure renderers
// live in the render and figlet subpackages; Console fills in the resolved
// defaults and writes their results to a terminal.
package draw

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/mauromedda/termdraw/internal/log"
	"github.com/mauromedda/termdraw/pkg/draw/figlet"
	"github.com/mauromedda/termdraw/pkg/draw/internal/pool"
	"github.com/mauromedda/termdraw/pkg/draw/layout"
	"github.com/mauromedda/termdraw/pkg/draw/render"
	"github.com/mauromedda/termdraw/pkg/draw/seq"
	"github.com/mauromedda/termdraw/pkg/draw/style"
	"github.com/mauromedda/termdraw/pkg/draw/terminal"
)

// Scene draws one full frame onto c.
type Scene func(c *Console) error

// Console writes rendered output to a terminal.
type Console struct {
	term    terminal.Terminal
	metrics figlet.Metrics

	mu       sync.Mutex
	defaults style.Defaults
	batch    *strings.Builder

	scene    Scene
	renderCh chan struct{}
	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once
	running  bool
}

// NewConsole returns a Console drawing on t with defaults d.
func NewConsole(t terminal.Terminal, d style.Defaults) *Console {
	return &Console{
		term:     t,
		metrics:  figlet.NewFigure(),
		defaults: d,
		renderCh: make(chan struct{}, 1),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Defaults returns the defaults render calls fall back to.
func (c *Console) Defaults() style.Defaults {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.defaults
}

// SetDefaults replaces the defaults and requests a redraw.
func (c *Console) SetDefaults(d style.Defaults) {
	c.mu.Lock()
	c.defaults = d
	c.mu.Unlock()
	c.RequestRender()
}

// SetMetrics replaces the figlet metrics provider.
func (c *Console) SetMetrics(m figlet.Metrics) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.metrics = m
}

// Write sends a render result to the terminal. A failed result is logged
// and returned without writing anything.
func (c *Console) Write(res render.Result) error {
	if res.Failed() {
		log.Warn("draw: %v", res.Err)
		return res.Err
	}
	return c.writeString(res.Output)
}

func (c *Console) writeString(s string) error {
	if s == "" {
		return nil
	}
	c.mu.Lock()
	if c.batch != nil {
		c.batch.WriteString(s)
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	if _, err := c.term.Write([]byte(s)); err != nil {
		err = fmt.Errorf("writing to terminal: %w", err)
		log.Warn("draw: %v", err)
		return err
	}
	return nil
}

// Batch collects every write made by fn and sends them as one synchronized
// update. Nested calls join the outer batch.
func (c *Console) Batch(fn func() error) error {
	c.mu.Lock()
	if c.batch != nil {
		c.mu.Unlock()
		return fn()
	}
	sb := pool.GetBuilder()
	sb.WriteString(seq.SyncBegin)
	c.batch = sb
	c.mu.Unlock()

	// A panic in fn must not leave later writes trapped in the builder.
	detached := false
	detach := func() {
		if detached {
			return
		}
		detached = true
		c.mu.Lock()
		c.batch = nil
		c.mu.Unlock()
	}
	defer func() {
		detach()
		pool.PutBuilder(sb)
	}()

	fnErr := fn()
	detach()

	var writeErr error
	if sb.Len() > len(seq.SyncBegin) {
		sb.WriteString(seq.SyncEnd)
		writeErr = c.writeString(sb.String())
	}
	return errors.Join(fnErr, writeErr)
}

// styled returns st, or the default style when st is the zero value.
func (c *Console) styled(st style.Style) style.Style {
	if st == (style.Style{}) {
		return c.Defaults().Style
	}
	return st
}

func (c *Console) glyphs(g style.BorderGlyphs) style.BorderGlyphs {
	if g == (style.BorderGlyphs{}) {
		return c.Defaults().Border
	}
	return g
}

// Clear erases the screen and homes the cursor.
func (c *Console) Clear() error {
	return c.writeString(seq.ClearScreen + seq.CursorHome)
}

// Page renders a viewport of lines and returns how many it consumed.
func (c *Console) Page(p render.PageSpec) (int, error) {
	p.Style = c.styled(p.Style)
	res, n := render.RenderPage(p)
	return n, c.Write(res)
}

// Text renders wrapped, aligned text and returns the number of lines drawn.
func (c *Console) Text(t render.TextSpec) (int, error) {
	t.Style = c.styled(t.Style)
	res, n := render.RenderText(t)
	return n, c.Write(res)
}

// Frame draws a border, using the default glyphs when f has none.
func (c *Console) Frame(f render.FrameSpec) error {
	f.Style = c.styled(f.Style)
	f.Glyphs = c.glyphs(f.Glyphs)
	return c.Write(render.RenderFrame(f))
}

// Box fills a region with background-coloured cells.
func (c *Console) Box(b render.BoxSpec) error {
	b.Style = c.styled(b.Style)
	return c.Write(render.RenderBox(b))
}

// BoxFrame fills a region and draws a border around it.
func (c *Console) BoxFrame(f render.FrameSpec) error {
	f.Style = c.styled(f.Style)
	f.Glyphs = c.glyphs(f.Glyphs)
	return c.Write(render.RenderBoxFrame(f))
}

func (c *Console) track(t render.Track) render.Track {
	t.Style = c.styled(t.Style)
	if t.Border {
		t.Glyphs = c.glyphs(t.Glyphs)
	}
	return t
}

// Progress draws a progress bar.
func (c *Console) Progress(p render.ProgressSpec) error {
	p.Track = c.track(p.Track)
	return c.Write(render.ProgressBar(p))
}

// Slider draws a horizontal or vertical slider.
func (c *Console) Slider(s render.SliderSpec) error {
	s.Track = c.track(s.Track)
	return c.Write(render.Slider(s))
}

// BarChart draws a labelled horizontal bar chart.
func (c *Console) BarChart(ch render.ChartSpec) error {
	ch.Style = c.styled(ch.Style)
	return c.Write(render.BarChart(ch))
}

// Figlet places a banner in the current window. An empty p.Font uses the
// default font; zero window dimensions are read from the terminal.
func (c *Console) Figlet(p figlet.PlaceSpec) (figlet.Placement, error) {
	d := c.Defaults()
	if p.Font == "" {
		p.Font = d.Font
	}
	if p.Style == (style.Style{}) {
		p.Style = d.Style
	}
	if p.WindowWidth == 0 || p.WindowHeight == 0 {
		w, h, err := c.term.Size()
		if err != nil {
			return figlet.Placement{}, fmt.Errorf("reading terminal size: %w", err)
		}
		p.WindowWidth, p.WindowHeight = w, h
	}

	c.mu.Lock()
	m := c.metrics
	c.mu.Unlock()

	pl, res := figlet.Place(p, m)
	for _, msg := range pl.Diagnostics {
		log.Debug("figlet: %s", msg)
	}
	return pl, c.Write(res)
}

// Window returns the terminal area as a region.
func (c *Console) Window() (layout.Region, error) {
	w, h, err := c.term.Size()
	if err != nil {
		return layout.Region{}, fmt.Errorf("reading terminal size: %w", err)
	}
	return layout.Rect(0, 0, w, h), nil
}

// RequestRender asks the redraw loop for a repaint. Multiple calls coalesce
// into a single repaint.
func (c *Console) RequestRender() {
	select {
	case c.renderCh <- struct{}{}:
	default:
	}
}

// Start begins repainting scene in a goroutine, once immediately and again
// after every RequestRender or terminal resize. Call Stop to terminate.
func (c *Console) Start(scene Scene) {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return
	}
	c.running = true
	c.scene = scene
	c.mu.Unlock()

	c.term.OnResize(func(int, int) { c.RequestRender() })
	c.RequestRender()
	go c.renderLoop()
}

// Stop terminates the redraw loop and waits for it to exit. Safe to call
// multiple times.
func (c *Console) Stop() {
	c.stopOnce.Do(func() {
		c.mu.Lock()
		running := c.running
		c.running = false
		c.mu.Unlock()
		close(c.stopCh)
		if running {
			<-c.doneCh
		}
	})
}

// RenderOnce repaints the scene synchronously.
func (c *Console) RenderOnce() error {
	c.mu.Lock()
	scene := c.scene
	c.mu.Unlock()
	if scene == nil {
		return nil
	}
	return c.Batch(func() error {
		if err := c.Clear(); err != nil {
			return err
		}
		return scene(c)
	})
}

func (c *Console) renderLoop() {
	defer close(c.doneCh)
	defer terminal.RecoverGoroutine(c.term)
	for {
		select {
		case <-c.stopCh:
			return
		case <-c.renderCh:
			if err := c.RenderOnce(); err != nil {
				log.Warn("draw: repaint: %v", err)
			}
		}
	}
}
