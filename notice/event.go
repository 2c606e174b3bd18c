package notice

import tea "github.com/charmbracelet/bubbletea"

// Event wraps a mouse message delivered to a notice.
type Event struct {
	Mouse tea.MouseMsg

	// X and Y are relative to the notice origin. Set by Dispatch.
	X, Y int

	stopped bool
}

func (e *Event) StopPropagation() { e.stopped = true }

// PropagationStopped reports whether the notice consumed the event.
func (e *Event) PropagationStopped() bool { return e.stopped }

// Dispatch runs a mouse event through the notice: hover tracking first,
// then a left press on the close control closes the notice and anything
// else inside the box goes to OnClick.
func (n *Notice) Dispatch(ev *Event) tea.Cmd {
	m := ev.Mouse
	ev.X, ev.Y = m.X-n.originX, m.Y-n.originY
	inside := n.layout.contains(ev.X, ev.Y)

	var cmd tea.Cmd
	switch {
	case inside && !n.hovered:
		n.MouseEnter()
	case !inside && n.hovered:
		cmd = n.MouseLeave()
	}

	if !inside || m.Action != tea.MouseActionPress || m.Button != tea.MouseButtonLeft {
		return cmd
	}
	if n.props.Closable && n.layout.onClose(ev.X, ev.Y) {
		n.Close(ev)
		return cmd
	}
	if n.props.OnClick != nil {
		n.props.OnClick(ev)
	}
	return cmd
}
