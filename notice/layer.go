package notice

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Layer is a mount handle: notices with a Holder render into it instead of
// their natural position, and the owner paints it over the rest of the
// screen with Composite.
type Layer struct {
	entries []layerEntry
}

type layerEntry struct {
	key  string
	x, y int
	view string
}

func NewLayer() *Layer { return &Layer{} }

// Mount places view at (x, y) under key, replacing an earlier mount of
// the same key without changing its paint order.
func (l *Layer) Mount(key string, x, y int, view string) {
	for i := range l.entries {
		if l.entries[i].key == key {
			l.entries[i] = layerEntry{key: key, x: x, y: y, view: view}
			return
		}
	}
	l.entries = append(l.entries, layerEntry{key: key, x: x, y: y, view: view})
}

func (l *Layer) Unmount(key string) {
	for i := range l.entries {
		if l.entries[i].key == key {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}

func (l *Layer) Has(key string) bool {
	for _, e := range l.entries {
		if e.key == key {
			return true
		}
	}
	return false
}

func (l *Layer) Len() int { return len(l.entries) }

// Composite paints every mounted view over base in mount order. Lines and
// columns are added when a view falls outside base.
func (l *Layer) Composite(base string) string {
	if len(l.entries) == 0 {
		return base
	}
	lines := strings.Split(base, "\n")
	for _, e := range l.entries {
		x, y := max(e.x, 0), max(e.y, 0)
		for i, vl := range strings.Split(e.view, "\n") {
			row := y + i
			for len(lines) <= row {
				lines = append(lines, "")
			}
			lines[row] = overlayLine(lines[row], vl, x)
		}
	}
	return strings.Join(lines, "\n")
}

func overlayLine(line, over string, x int) string {
	if w := ansi.StringWidth(line); w < x {
		line += strings.Repeat(" ", x-w)
	}
	left := ansi.Truncate(line, x, "")
	right := ansi.TruncateLeft(line, x+ansi.StringWidth(over), "")
	return left + ansi.ResetStyle + over + ansi.ResetStyle + right
}
