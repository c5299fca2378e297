// ABOUTME: EstimateWidth computes the cell width of strings with grapheme-aware segmentation
// ABOUTME: Escape sequences measure zero; LRU cache for non-ASCII strings; fast path for pure ASCII

package width

import (
	"container/list"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const cacheSize = 512

// emojiPresentation is VS16; it forces a narrow base glyph into a two-cell emoji.
const emojiPresentation = "\uFE0F"

// lruEntry holds a cached width measurement.
type lruEntry struct {
	key   string
	value int
}

// cache is an O(1) LRU cache for non-ASCII string widths.
// Uses container/list for O(1) eviction and sync.Mutex because every hit
// reorders the list.
type cache struct {
	mu    sync.Mutex
	items map[string]*list.Element
	order *list.List
	size  int
}

func newCache(size int) *cache {
	return &cache{
		items: make(map[string]*list.Element, size),
		order: list.New(),
		size:  size,
	}
}

func (c *cache) get(key string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	elem, ok := c.items[key]
	if !ok {
		return 0, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(lruEntry).value, true
}

func (c *cache) put(key string, value int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[key]; ok {
		return
	}
	if c.order.Len() >= c.size {
		// Evict least recently used (back of list)
		if back := c.order.Back(); back != nil {
			c.order.Remove(back)
			delete(c.items, back.Value.(lruEntry).key)
		}
	}
	c.items[key] = c.order.PushFront(lruEntry{key: key, value: value})
}

var widthCache = newCache(cacheSize)

// EstimateWidth returns the number of terminal cells s occupies.
// Escape sequences contribute zero, East Asian wide glyphs and emoji two,
// combining marks and control characters zero, everything else one.
func EstimateWidth(s string) int {
	if s == "" {
		return 0
	}
	if isPlainASCII(s) {
		return len(s)
	}
	if w, ok := widthCache.get(s); ok {
		return w
	}
	w := computeWidth(s)
	widthCache.put(s, w)
	return w
}

// isPlainASCII returns true if s contains only printable ASCII (0x20-0x7E)
// with no escape sequences.
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b < 0x20 || b > 0x7E {
			return false
		}
	}
	return true
}

// computeWidth measures the visible width by iterating grapheme clusters of
// the escape-filtered text.
func computeWidth(s string) int {
	stripped := StripSequences(s)
	w := 0
	state := -1
	for len(stripped) > 0 {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(stripped, state)
		w += graphemeWidth(cluster)
		stripped = rest
		state = newState
	}
	return w
}

// graphemeWidth returns the display width of a single grapheme cluster.
// The base rune decides; trailing combining marks and joiners add nothing.
func graphemeWidth(cluster string) int {
	if len(cluster) == 0 {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	if r == utf8.RuneError {
		return 1
	}
	w := runewidth.RuneWidth(r)
	if w == 1 && len(cluster) > utf8.RuneLen(r) && strings.Contains(cluster, emojiPresentation) {
		return 2
	}
	return w
}

// StyledLine pairs a raw line, which may embed escape sequences, with its
// escape-filtered form used for measuring.
type StyledLine struct {
	Visible string
	Raw     string
}

// NewStyledLine builds a StyledLine from raw text.
func NewStyledLine(raw string) StyledLine {
	return StyledLine{Visible: StripSequences(raw), Raw: raw}
}

// Width returns the cell width of the line.
func (l StyledLine) Width() int {
	return EstimateWidth(l.Visible)
}
