package main

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/andareed/teanotice/config"
	"github.com/andareed/teanotice/notice"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pendingTick struct {
	d  time.Duration
	fn func(time.Time) tea.Msg
}

type fakeClock struct {
	ticks []pendingTick
}

func (c *fakeClock) schedule(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	c.ticks = append(c.ticks, pendingTick{d: d, fn: fn})
	return func() tea.Msg { return fn(time.Now()) }
}

func (c *fakeClock) fire(i int) tea.Msg { return c.ticks[i].fn(time.Now()) }

func newTestModel(t *testing.T, cfg *config.Config, usePortal bool) (*model, *fakeClock) {
	t.Helper()
	clock := &fakeClock{}
	m := newModel(cfg, usePortal, "hello", notice.WithScheduler(clock.schedule))
	seq := 0
	m.newKey = func() string {
		seq++
		return fmt.Sprintf("key-%d", seq)
	}
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m, clock
}

func splitLines(s string) []string { return strings.Split(s, "\n") }

// cellIndex returns the screen column of sub in line, or -1.
func cellIndex(line, sub string) int {
	i := strings.Index(line, sub)
	if i < 0 {
		return -1
	}
	return ansi.StringWidth(line[:i])
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestOwnerReleasesKeyOnExpiry(t *testing.T) {
	m, clock := newTestModel(t, config.Default(), false)

	require.NotNil(t, m.Init())
	assert.Equal(t, map[string]bool{"key-1": true}, m.pending)
	require.Len(t, clock.ticks, 1)
	assert.Equal(t, 1500*time.Millisecond, clock.ticks[0].d)

	m.Update(clock.fire(0))
	assert.Empty(t, m.pending)
	assert.Nil(t, m.current)
	require.Len(t, m.ui.closeLog, 1)
	assert.Equal(t, "key-1", m.ui.closeLog[0].key)
	assert.Equal(t, "expired/dismissed", m.ui.closeLog[0].how)
}

func TestOwnerRemovalNotifiesOnce(t *testing.T) {
	m, clock := newTestModel(t, config.Default(), false)
	m.Init()

	m.Update(runes("n"))
	assert.Equal(t, map[string]bool{"key-2": true}, m.pending)
	require.Len(t, m.ui.closeLog, 1)
	assert.Equal(t, "removed", m.ui.closeLog[0].how)

	// the removed notice's timer still lands
	m.Update(clock.fire(0))
	assert.Equal(t, 1, m.ui.closed)
	assert.Equal(t, "key-2", m.current.Key())
}

func TestOwnerQuitDisposes(t *testing.T) {
	m, _ := newTestModel(t, config.Default(), false)
	m.Init()

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Empty(t, m.pending)
	assert.Equal(t, 1, m.ui.closed)
}

func TestOwnerDurationAndVisibleUpdates(t *testing.T) {
	m, clock := newTestModel(t, config.Default(), false)
	m.Init()

	m.Update(runes("+"))
	require.Len(t, clock.ticks, 2)
	assert.Equal(t, 2*time.Second, clock.ticks[1].d)

	m.Update(runes("v"))
	assert.Len(t, clock.ticks, 2, "hiding does not restart")
	m.Update(runes("v"))
	assert.Len(t, clock.ticks, 3, "showing again restarts")

	m.Update(runes("u"))
	assert.Len(t, clock.ticks, 4, "content replacement restarts")
	assert.Equal(t, "2", m.current.ForwardedAttrs()["data-seq"])

	m.Update(clock.fire(2))
	assert.Equal(t, 0, m.ui.closed, "superseded timer")
	m.Update(clock.fire(3))
	assert.Equal(t, 1, m.ui.closed)
}

func TestOwnerShorterStopsAtZero(t *testing.T) {
	cfg := config.Default()
	cfg.Notice.Duration = 0.5
	m, clock := newTestModel(t, cfg, false)
	m.Init()

	m.Update(runes("-"))
	m.Update(runes("-"))
	assert.Zero(t, m.current.Props().Duration)
	assert.False(t, m.current.TimerPending())
	assert.Len(t, clock.ticks, 1)
}

func TestOwnerCloseControlStopsPropagation(t *testing.T) {
	cfg := config.Default()
	cfg.Notice.Closable = true
	cfg.Notice.Duration = 0
	m, _ := newTestModel(t, cfg, false)
	m.Init()

	plain := ansi.Strip(m.View())
	require.Contains(t, plain, "hello")
	require.Contains(t, plain, "×")

	// find the glyph on screen and click it
	x, y := -1, -1
	for row, line := range splitLines(plain) {
		if col := cellIndex(line, "×"); col >= 0 {
			x, y = col, row
			break
		}
	}
	require.GreaterOrEqual(t, x, 0)

	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, 1, m.ui.closed)
	assert.Empty(t, m.ui.statusMsg, "owner must not see the close click")

	m.Update(tea.MouseMsg{X: 90, Y: 25, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Contains(t, m.ui.statusMsg, "screen clicked")
}

func TestOwnerFocusedDismissKey(t *testing.T) {
	cfg := config.Default()
	cfg.Notice.Closable = true
	m, _ := newTestModel(t, cfg, false)
	m.Init()

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, m.current.Focused())
	m.Update(runes("x"))
	assert.Equal(t, 1, m.ui.closed)
	assert.Nil(t, m.current)
}

func TestOwnerPortalRendersThroughLayer(t *testing.T) {
	m, _ := newTestModel(t, config.Default(), true)
	m.Init()

	out := ansi.Strip(m.View())
	assert.Contains(t, out, "hello")
	assert.True(t, m.layer.Has("key-1"))

	m.Update(runes("v"))
	assert.False(t, m.layer.Has("key-1"))
	assert.NotContains(t, ansi.Strip(m.View()), "hello")

	m.Update(runes("q"))
	assert.Equal(t, 0, m.layer.Len())
}

func TestHelpDialogCapturesKeys(t *testing.T) {
	m, _ := newTestModel(t, config.Default(), false)
	m.Init()

	m.Update(runes("?"))
	require.NotNil(t, m.activeDialog)
	assert.Contains(t, ansi.Strip(m.View()), "dismiss notice")

	m.Update(runes("n"))
	assert.Equal(t, "key-1", m.current.Key(), "keys go to the dialog")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.activeDialog.IsVisible())
}
