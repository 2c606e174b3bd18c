package notice

import "github.com/andareed/teanotice/logging"

// Close ends the notice. The pending countdown is always cancelled, but
// OnClose runs at most once per notice. A non-nil ev has its propagation
// stopped so the owner's own click handling does not see it.
func (n *Notice) Close(ev *Event) {
	if ev != nil {
		ev.StopPropagation()
	}
	n.ClearTimer()

	if n.state != closePending {
		logging.Debugf("notice[%s]: close already fired", n.props.Key)
		return
	}
	onClose := n.props.OnClose
	if onClose == nil {
		return
	}

	// closeFiring guards against the owner disposing us from inside OnClose.
	n.state = closeFiring
	key := n.props.Key
	logging.Debugf("notice[%s]: close fired", key)
	onClose(key)
	n.state = closeFired
}

// Closed reports whether the close notification has been delivered.
func (n *Notice) Closed() bool { return n.state != closePending }

// Dispose tears the notice down. Owners call it once when removing the
// notice; if the close notification never fired, it fires now.
func (n *Notice) Dispose() {
	if n.disposed {
		return
	}
	n.ClearTimer()
	if n.state == closePending {
		n.Close(nil)
	}
	n.disposed = true
	if h := n.props.Holder; h != nil {
		h.Unmount(n.props.Key)
	}
	logging.Debugf("notice[%s]: disposed", n.props.Key)
}

func (n *Notice) Disposed() bool { return n.disposed }
