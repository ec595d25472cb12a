// ABOUTME: Display-width measurement with grapheme-aware segmentation and an LRU cache
// ABOUTME: Escape sequences contribute zero width; pure ASCII takes a fast path

package textwidth

import (
	"container/list"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const cacheSize = 512

// lruEntry holds a cached width measurement.
type lruEntry struct {
	key   string
	value int
}

// cache is an O(1) LRU for non-ASCII string widths.
type cache struct {
	mu    sync.RWMutex
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
	c.mu.RLock()
	elem, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return 0, false
	}
	c.mu.Lock()
	c.order.MoveToFront(elem)
	c.mu.Unlock()
	return elem.Value.(lruEntry).value, true
}

func (c *cache) put(key string, value int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[key]; ok {
		return
	}
	if c.order.Len() >= c.size {
		back := c.order.Back()
		if back != nil {
			c.order.Remove(back)
			delete(c.items, back.Value.(lruEntry).key)
		}
	}
	c.items[key] = c.order.PushFront(lruEntry{key: key, value: value})
}

var widthCache = newCache(cacheSize)

// Visible returns the display width of s in terminal cells, counting escape
// sequences as zero and grapheme clusters at their cell width (wide for East
// Asian characters and emoji).
func Visible(s string) int {
	if s == "" {
		return 0
	}
	if isPlainASCII(s) {
		return len(s)
	}
	if w, ok := widthCache.get(s); ok {
		return w
	}
	w := compute(s)
	widthCache.put(s, w)
	return w
}

// Pad appends spaces until the visible width of s reaches width. Strings
// already at or past width are returned unchanged.
func Pad(s string, width int) string {
	w := Visible(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// Truncate cuts s to at most width cells, never splitting a grapheme
// cluster. Escape sequences are not expected in the input.
func Truncate(s string, width int) string {
	if Visible(s) <= width {
		return s
	}
	var b strings.Builder
	w := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		cluster, tail, _, newState := uniseg.FirstGraphemeClusterInString(rest, state)
		cw := clusterWidth(cluster)
		if w+cw > width {
			break
		}
		b.WriteString(cluster)
		w += cw
		rest = tail
		state = newState
	}
	return b.String()
}

// isPlainASCII reports whether s is printable ASCII with no escapes.
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b < 0x20 || b > 0x7E {
			return false
		}
	}
	return true
}

// compute measures the visible width grapheme by grapheme, skipping ANSI
// escape sequences.
func compute(s string) int {
	stripped := stripEscapes(s)
	w := 0
	state := -1
	for len(stripped) > 0 {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(stripped, state)
		w += clusterWidth(cluster)
		stripped = rest
		state = newState
	}
	return w
}

// clusterWidth returns the cell width of a single grapheme cluster.
func clusterWidth(cluster string) int {
	if len(cluster) == 0 {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}

// stripEscapes removes CSI, OSC, and simple two-byte ESC sequences.
func stripEscapes(s string) string {
	if !strings.ContainsRune(s, '\x1b') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' {
			i = skipEscape(s, i)
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// skipEscape advances past the escape sequence starting at s[i], returning
// the index of the first byte after it.
func skipEscape(s string, i int) int {
	i++ // ESC
	if i >= len(s) {
		return i
	}
	switch s[i] {
	case '[':
		// CSI: parameters and intermediates end at a final byte 0x40-0x7E.
		i++
		for i < len(s) {
			if s[i] >= 0x40 && s[i] <= 0x7E {
				return i + 1
			}
			i++
		}
		return i
	case ']':
		// OSC: terminated by BEL or ST.
		i++
		for i < len(s) {
			if s[i] == '\x07' {
				return i + 1
			}
			if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
			i++
		}
		return i
	default:
		return i + 1
	}
}
