package notice

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestLayerCompositeOverBase(t *testing.T) {
	l := NewLayer()
	l.Mount("a", 1, 1, "XY")

	got := ansi.Strip(l.Composite("aaaaa\nbbbbb"))
	assert.Equal(t, "aaaaa\nbXYbb", got)
}

func TestLayerCompositeExtendsBase(t *testing.T) {
	l := NewLayer()
	l.Mount("a", 4, 2, "Z\nW")

	got := ansi.Strip(l.Composite("ab"))
	assert.Equal(t, "ab\n\n    Z\n    W", got)
}

func TestLayerMountReplacesInPlace(t *testing.T) {
	l := NewLayer()
	l.Mount("a", 0, 0, "AAA")
	l.Mount("b", 1, 0, "B")
	l.Mount("a", 0, 0, "CCC")

	assert.Equal(t, 2, l.Len())
	// b was mounted after a, so it still paints on top
	assert.Equal(t, "CBC", ansi.Strip(l.Composite("...")))

	l.Unmount("a")
	l.Unmount("missing")
	assert.False(t, l.Has("a"))
	assert.True(t, l.Has("b"))
	assert.Equal(t, ".B.", ansi.Strip(l.Composite("...")))
}

func TestLayerEmptyReturnsBase(t *testing.T) {
	assert.Equal(t, "base", NewLayer().Composite("base"))
}
