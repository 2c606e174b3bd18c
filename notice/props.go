package notice

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

const (
	// DefaultDuration is the auto-close delay used by NewProps.
	DefaultDuration = 1500 * time.Millisecond
	DefaultPrefix   = "toast"
	defaultCloseX   = "×"
)

// StyleFunc refines a lipgloss style. Later funcs override earlier ones.
type StyleFunc func(lipgloss.Style) lipgloss.Style

// Props is the configuration an owner supplies for one notice.
//
// The zero value never auto-closes; use NewProps for the defaults.
type Props struct {
	Key string

	// Duration <= 0 disables auto-close.
	Duration time.Duration

	// UpdateMark is opaque. Changing it means the content of a same-key
	// notice was replaced and restarts the countdown.
	UpdateMark string

	// Visible going false->true restarts the countdown. Going true->false
	// leaves it running.
	Visible bool

	Closable  bool
	CloseIcon string

	Content   string
	PrefixCls string
	ClassName string
	Style     StyleFunc

	// Attrs carries caller metadata. Only role, data-* and aria-* entries
	// reach the rendered node.
	Attrs map[string]string

	// Holder redirects rendering into an external layer.
	Holder *Layer

	OnClose func(key string)
	OnClick func(ev *Event)
}

// NewProps returns props with the default duration, prefix and a no-op
// close callback.
func NewProps(key string) Props {
	return Props{
		Key:       key,
		Duration:  DefaultDuration,
		Visible:   true,
		PrefixCls: DefaultPrefix,
		OnClose:   func(string) {},
	}
}

func (p Props) prefix() string {
	if p.PrefixCls == "" {
		return DefaultPrefix
	}
	return p.PrefixCls
}

func (p Props) closeGlyph() string {
	if p.CloseIcon != "" {
		return p.CloseIcon
	}
	return defaultCloseX
}

// needsRestart reports whether moving from prev to p must restart the timer.
func (p Props) needsRestart(prev Props) bool {
	return p.Duration != prev.Duration ||
		p.UpdateMark != prev.UpdateMark ||
		(p.Visible != prev.Visible && p.Visible)
}
