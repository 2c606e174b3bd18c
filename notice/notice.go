// Package notice implements a transient, dismissible message box for
// Bubble Tea programs.
//
// A Notice auto-closes after its duration, can be dismissed by click or
// key, and reports its end to the owner exactly once through OnClose. The
// owner drives the lifecycle: Init on mount, SetProps on every update,
// Update for messages and Dispose on removal.
package notice

import (
	"time"

	"github.com/andareed/teanotice/logging"
	tea "github.com/charmbracelet/bubbletea"
)

// Scheduler arranges for fn's message to be delivered after d.
type Scheduler func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

type closeState int

const (
	closePending closeState = iota
	closeFiring
	closeFired
)

type Notice struct {
	props Props
	theme *Theme
	keys  KeyMap

	schedule Scheduler
	seq      int // last issued timer id
	timer    int // id of the live delayed action, 0 when none

	state    closeState
	disposed bool

	hovered bool
	focused bool
	originX int
	originY int
	layout  layout
}

type Option func(*Notice)

// WithScheduler replaces tea.Tick as the delayed action primitive.
func WithScheduler(s Scheduler) Option {
	return func(n *Notice) { n.schedule = s }
}

func WithTheme(t Theme) Option {
	return func(n *Notice) { n.theme = &t }
}

func WithKeyMap(k KeyMap) Option {
	return func(n *Notice) { n.keys = k }
}

// New creates a notice. Nothing is scheduled until Init.
func New(p Props, opts ...Option) *Notice {
	n := &Notice{
		props:    p,
		keys:     DefaultKeyMap(),
		schedule: tea.Tick,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Init mounts the notice and starts the countdown.
func (n *Notice) Init() tea.Cmd {
	logging.Debugf("notice[%s]: mounted duration=%s", n.props.Key, n.props.Duration)
	return n.StartTimer()
}

func (n *Notice) Key() string  { return n.props.Key }
func (n *Notice) Props() Props { return n.props }

// SetProps applies a configuration update. The countdown restarts when
// the duration or update mark changed, or the notice became visible.
func (n *Notice) SetProps(next Props) tea.Cmd {
	prev := n.props
	if next.Key != prev.Key {
		logging.Warnf("notice[%s]: ignoring key change to %q", prev.Key, next.Key)
		next.Key = prev.Key
	}
	if prev.Holder != nil && prev.Holder != next.Holder {
		prev.Holder.Unmount(prev.Key)
	}
	n.props = next

	if next.needsRestart(prev) {
		logging.Debugf("notice[%s]: restart on update", next.Key)
		return n.RestartTimer()
	}
	return nil
}

// SetOrigin records where the owner placed the notice on screen, used
// for mouse hit testing and for the holder position.
func (n *Notice) SetOrigin(x, y int) {
	n.originX, n.originY = x, y
}

func (n *Notice) Focus()        { n.focused = true }
func (n *Notice) Blur()         { n.focused = false }
func (n *Notice) Focused() bool { return n.focused }
func (n *Notice) Hovered() bool { return n.hovered }

// Update handles timer expiry, mouse and key messages for this notice.
// Messages addressed to other notices are ignored.
func (n *Notice) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ExpireMsg:
		if msg.Key != n.props.Key {
			return nil
		}
		n.expire(msg)
		return nil
	case tea.MouseMsg:
		return n.Dispatch(&Event{Mouse: msg})
	case tea.KeyMsg:
		return n.handleKey(msg)
	}
	return nil
}
