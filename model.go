package main

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/andareed/teanotice/config"
	"github.com/andareed/teanotice/dialogs"
	"github.com/andareed/teanotice/logging"
	"github.com/andareed/teanotice/notice"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

type clearStatusMsg struct{ id int }

const (
	statusDuration = 2 * time.Second
	durationStep   = 500 * time.Millisecond
)

// model is the owner of the notice: it mounts one notice at a time,
// tracks which keys are still pending and removes a notice once it
// reports closed.
type model struct {
	cfg   *config.Config
	theme notice.Theme
	layer *notice.Layer
	opts  []notice.Option

	message    string
	current    *notice.Notice
	pending    map[string]bool
	removing   bool
	contentSeq int
	newKey     func() string

	terminalWidth  int
	terminalHeight int
	ready          bool
	activeDialog   dialogs.Dialog
	ui             uiState
}

func newModel(cfg *config.Config, usePortal bool, message string, opts ...notice.Option) *model {
	m := &model{
		cfg:     cfg,
		theme:   cfg.NoticeTheme(),
		opts:    opts,
		message: message,
		pending: make(map[string]bool),
		newKey:  uuid.NewString,
	}
	if usePortal {
		m.layer = notice.NewLayer()
	}
	return m
}

func (m *model) Init() tea.Cmd {
	log.Println("teanotice: Initialised")
	return m.mount(m.message)
}

// mount replaces the current notice with a new one under a fresh key.
func (m *model) mount(content string) tea.Cmd {
	if m.current != nil {
		m.remove()
	}
	m.contentSeq++

	p := m.cfg.NoticeProps(m.newKey(), content)
	p.ClassName = "info"
	p.OnClose = m.onClose
	p.OnClick = m.onNoticeClick
	p.Holder = m.layer
	p.Attrs = noticeAttrs(m.contentSeq)

	opts := append([]notice.Option{notice.WithTheme(m.theme)}, m.opts...)
	n := notice.New(p, opts...)
	m.current = n
	m.placeNotice()
	m.pending[p.Key] = true
	logging.Infof("owner: mounted notice %s", p.Key)
	return n.Init()
}

// remove takes the current notice out of the tree. Dispose delivers the
// close notification if the notice never closed itself.
func (m *model) remove() {
	n := m.current
	if n == nil {
		return
	}
	m.current = nil
	m.removing = true
	n.Dispose()
	m.removing = false
}

func noticeAttrs(seq int) map[string]string {
	return map[string]string{
		"role":      "status",
		"aria-live": "polite",
		"data-seq":  strconv.Itoa(seq),
	}
}

func (m *model) onClose(key string) {
	how := "expired/dismissed"
	if m.removing {
		how = "removed"
	}
	if !m.pending[key] {
		logging.Warnf("owner: close for unknown key %s", key)
	}
	delete(m.pending, key)
	m.ui.logClose(closeRecord{key: key, at: time.Now(), how: how})
	logging.Infof("owner: notice %s closed (%s)", key, how)

	if !m.removing && m.current != nil && m.current.Key() == key {
		m.remove()
	}
}

func (m *model) onNoticeClick(ev *notice.Event) {
	logging.Debugf("owner: notice body clicked at %d,%d", ev.X, ev.Y)
}

func (m *model) placeNotice() {
	if m.current == nil {
		return
	}
	x, y := panelOrigin()
	if m.layer != nil {
		// hang off the bottom edge of the panel, outside its clip
		y += panelHeight - 1
		x += 4
	}
	m.current.SetOrigin(x, y)
}

func (m *model) pendingKeys() []string {
	keys := make([]string, 0, len(m.pending))
	for k := range m.pending {
		keys = append(keys, shortKey(k))
	}
	sort.Strings(keys)
	return keys
}

func (m *model) startStatus(msg, msgType string) tea.Cmd {
	m.ui.statusMsg = msg
	m.ui.statusType = msgType

	// bump sequence to invalidate older timers
	m.ui.statusSeq++
	id := m.ui.statusSeq

	return tea.Tick(statusDuration, func(time.Time) tea.Msg { return clearStatusMsg{id: id} })
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.terminalWidth = msg.Width
		m.terminalHeight = msg.Height
		m.ready = true
		m.placeNotice()
		return m, nil
	case notice.ExpireMsg:
		if m.current != nil {
			return m, m.current.Update(msg)
		}
		return m, nil
	case clearStatusMsg:
		if msg.id == m.ui.statusSeq {
			m.ui.statusMsg = ""
			m.ui.statusType = ""
		}
		return m, nil
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m *model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.current != nil && m.current.Props().Visible {
		ev := &notice.Event{Mouse: msg}
		cmds = append(cmds, m.current.Dispatch(ev))
		if ev.PropagationStopped() {
			return m, tea.Batch(cmds...)
		}
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		cmds = append(cmds, m.startStatus(fmt.Sprintf("screen clicked at %d,%d", msg.X, msg.Y), "info"))
	}
	return m, tea.Batch(cmds...)
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		d, cmd := m.activeDialog.Update(msg)
		m.activeDialog = d
		return m, cmd
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		m.remove()
		return m, tea.Quit
	case key.Matches(msg, Keys.NewNotice):
		return m, m.mount(fmt.Sprintf("%s (#%d)", m.message, m.contentSeq+1))
	case key.Matches(msg, Keys.OpenHelp):
		m.activeDialog = dialogs.NewHelpDialog(append(Keys.Legend(), notice.DefaultKeyMap().Dismiss))
		return m, nil
	}

	if m.current == nil {
		return m, nil
	}
	p := m.current.Props()
	switch {
	case key.Matches(msg, Keys.ReplaceContent):
		m.contentSeq++
		p.Content = fmt.Sprintf("%s (update %d)", m.message, m.contentSeq)
		p.UpdateMark = uuid.NewString()
		p.Attrs = noticeAttrs(m.contentSeq)
		return m, m.current.SetProps(p)
	case key.Matches(msg, Keys.ToggleVisible):
		p.Visible = !p.Visible
		if !p.Visible && m.layer != nil {
			m.layer.Unmount(p.Key)
		}
		return m, m.current.SetProps(p)
	case key.Matches(msg, Keys.Longer):
		p.Duration += durationStep
		return m, m.current.SetProps(p)
	case key.Matches(msg, Keys.Shorter):
		p.Duration = max(0, p.Duration-durationStep)
		return m, m.current.SetProps(p)
	case key.Matches(msg, Keys.ToggleClosable):
		p.Closable = !p.Closable
		return m, m.current.SetProps(p)
	case key.Matches(msg, Keys.FocusNotice):
		if m.current.Focused() {
			m.current.Blur()
		} else {
			m.current.Focus()
		}
		return m, nil
	}
	return m, m.current.Update(msg)
}

func (m *model) panelView() string {
	hints := hintStyle.Render("n new · u update · v visible · +/- duration · tab focus")
	if m.current == nil || !m.current.Props().Visible {
		return panelStyle.Render(hints)
	}

	nv := m.current.View()
	if nv == "" {
		// rendered into the layer
		return panelStyle.Render(hints)
	}
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, nv, hints))
}

func (m *model) logView() string {
	if len(m.ui.closeLog) == 0 {
		return logStyle.Render(hintStyle.Render("no notices closed yet"))
	}
	lines := make([]string, 0, len(m.ui.closeLog))
	for i := len(m.ui.closeLog) - 1; i >= 0; i-- {
		lines = append(lines, m.ui.closeLog[i].String())
	}
	return logStyle.Render(strings.Join(lines, "\n"))
}

func (m *model) footerView(width int) string {
	st := FooterState{
		Portal:        m.layer != nil,
		Pending:       len(m.pending),
		Closed:        m.ui.closed,
		StatusMessage: noticeText(m.ui.statusMsg, m.ui.statusType),
		Legend:        "(? help · n new · q quit)",
	}
	if m.current != nil {
		p := m.current.Props()
		st.NoticeKey = shortKey(p.Key)
		st.Duration = p.Duration.String()
		if p.Duration <= 0 {
			st.Duration = "off"
		}
		st.Visible = p.Visible
		st.Focused = m.current.Focused()
	}
	if st.StatusMessage == "" && len(m.pending) > 0 {
		st.StatusMessage = "pending: " + strings.Join(m.pendingKeys(), ", ")
	}
	return renderFooter(width, st, defaultFooterStyles())
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		w, h := m.terminalWidth, m.terminalHeight
		return lipgloss.Place(
			w, h,
			lipgloss.Center, lipgloss.Center,
			m.activeDialog.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color("236")),
		)
	}

	body := appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, m.panelView(), "", m.logView()))
	screen := body + "\n" + m.footerView(m.terminalWidth)
	if m.layer != nil {
		screen = m.layer.Composite(screen)
	}
	return screen
}
