package notice

import (
	"time"

	"github.com/andareed/teanotice/logging"
	tea "github.com/charmbracelet/bubbletea"
)

// ExpireMsg is delivered when a notice's countdown runs out. Owners route
// it to the notice with the matching key.
type ExpireMsg struct {
	Key string
	id  int
}

// StartTimer schedules the auto-close. It returns nil when auto-close is
// disabled. Starting again supersedes any earlier countdown.
func (n *Notice) StartTimer() tea.Cmd {
	d := n.props.Duration
	if d <= 0 || n.disposed {
		return nil
	}

	// bump sequence to invalidate older timers
	n.seq++
	id := n.seq
	n.timer = id
	key := n.props.Key

	logging.Debugf("notice[%s]: timer %d started for %s", key, id, d)
	return n.schedule(d, func(time.Time) tea.Msg { return ExpireMsg{Key: key, id: id} })
}

// ClearTimer cancels the pending countdown. Safe to call at any time.
func (n *Notice) ClearTimer() {
	if n.timer == 0 {
		return
	}
	logging.Debugf("notice[%s]: timer %d cleared", n.props.Key, n.timer)
	n.timer = 0
}

func (n *Notice) RestartTimer() tea.Cmd {
	n.ClearTimer()
	return n.StartTimer()
}

// TimerPending reports whether a countdown is armed.
func (n *Notice) TimerPending() bool { return n.timer != 0 }

func (n *Notice) MouseEnter() {
	n.hovered = true
	n.ClearTimer()
}

func (n *Notice) MouseLeave() tea.Cmd {
	n.hovered = false
	return n.StartTimer()
}

func (n *Notice) expire(msg ExpireMsg) {
	if msg.id == 0 || msg.id != n.timer {
		logging.Debugf("notice[%s]: stale timer %d ignored", n.props.Key, msg.id)
		return
	}
	n.timer = 0
	logging.Debugf("notice[%s]: timer %d expired", n.props.Key, msg.id)
	n.Close(nil)
}
