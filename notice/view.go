package notice

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	defaultBorderColor = "#4a9a8a"
	defaultTextColor   = "#d4d4d4"
	defaultAccentColor = "#e6b450"
)

// Theme maps the notice classes to styles. Box is the base style of the
// root container; Classes refine it in class order.
type Theme struct {
	Box     lipgloss.Style
	Content lipgloss.Style
	Close   lipgloss.Style
	Classes map[string]StyleFunc
}

func DefaultTheme(prefix string) Theme {
	return NewTheme(prefix, lipgloss.Color(defaultBorderColor), lipgloss.Color(defaultTextColor), lipgloss.Color(defaultAccentColor))
}

func NewTheme(prefix string, border, text, accent lipgloss.Color) Theme {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	base := prefix + "-notice"
	return Theme{
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		Content: lipgloss.NewStyle().Foreground(text),
		Close:   lipgloss.NewStyle().Foreground(accent).Bold(true),
		Classes: map[string]StyleFunc{
			base + "-closable": func(s lipgloss.Style) lipgloss.Style { return s.BorderForeground(accent) },
			"info":             func(s lipgloss.Style) lipgloss.Style { return s.BorderForeground(lipgloss.Color("4")) },
			"success":          func(s lipgloss.Style) lipgloss.Style { return s.BorderForeground(lipgloss.Color("2")) },
			"warn":             func(s lipgloss.Style) lipgloss.Style { return s.BorderForeground(lipgloss.Color("3")) },
			"error":            func(s lipgloss.Style) lipgloss.Style { return s.BorderForeground(lipgloss.Color("1")) },
		},
	}
}

// Node is the render tree of a notice before styling.
type Node struct {
	Classes   []string
	Attrs     map[string]string
	Content   string
	Closable  bool
	CloseIcon string
}

// layout remembers the geometry of the last render for hit testing.
type layout struct {
	width, height int

	hasClose       bool
	closeX, closeY int
	closeW, closeH int
}

func (l layout) contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < l.width && y < l.height
}

func (l layout) onClose(x, y int) bool {
	return l.hasClose &&
		x >= l.closeX && x < l.closeX+l.closeW &&
		y >= l.closeY && y < l.closeY+l.closeH
}

// Classes returns the class list of the root container.
func (n *Notice) Classes() []string {
	base := n.props.prefix() + "-notice"
	classes := []string{base}
	classes = append(classes, strings.Fields(n.props.ClassName)...)
	if n.props.Closable {
		classes = append(classes, base+"-closable")
	}
	return classes
}

// ForwardedAttrs returns the attrs that are copied onto the root
// container: role, data-* and aria-*.
func (n *Notice) ForwardedAttrs() map[string]string {
	out := make(map[string]string)
	for name, v := range n.props.Attrs {
		if forwardable(name) {
			out[name] = v
		}
	}
	return out
}

func forwardable(name string) bool {
	return name == "role" ||
		strings.HasPrefix(name, "data-") ||
		strings.HasPrefix(name, "aria-")
}

func (n *Notice) Node() Node {
	node := Node{
		Classes:  n.Classes(),
		Attrs:    n.ForwardedAttrs(),
		Content:  n.props.Content,
		Closable: n.props.Closable,
	}
	if node.Closable {
		node.CloseIcon = n.props.closeGlyph()
	}
	return node
}

func (n *Notice) resolvedTheme() Theme {
	if n.theme != nil {
		return *n.theme
	}
	return DefaultTheme(n.props.prefix())
}

// View renders the notice. With a Holder the output is mounted there at
// the notice origin and View returns "".
func (n *Notice) View() string {
	if n.disposed {
		return ""
	}
	box := n.render()
	if h := n.props.Holder; h != nil {
		h.Mount(n.props.Key, n.originX, n.originY, box)
		return ""
	}
	return box
}

func (n *Notice) render() string {
	node := n.Node()
	t := n.resolvedTheme()

	style := t.Box
	for _, c := range node.Classes {
		if f, ok := t.Classes[c]; ok {
			style = f(style)
		}
	}
	if n.props.Style != nil {
		style = n.props.Style(style)
	}

	content := t.Content.Render(node.Content)
	inner := content
	n.layout.hasClose = false
	if node.Closable {
		ctrl := t.Close.Render(node.CloseIcon)
		inner = lipgloss.JoinHorizontal(lipgloss.Top, content, " ", ctrl)

		n.layout.hasClose = true
		n.layout.closeX = style.GetMarginLeft() + style.GetBorderLeftSize() + style.GetPaddingLeft() + lipgloss.Width(content) + 1
		n.layout.closeY = style.GetMarginTop() + style.GetBorderTopSize() + style.GetPaddingTop()
		n.layout.closeW = lipgloss.Width(ctrl)
		n.layout.closeH = lipgloss.Height(ctrl)
	}

	out := style.Render(inner)
	n.layout.width = lipgloss.Width(out)
	n.layout.height = lipgloss.Height(out)
	return out
}
