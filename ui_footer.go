package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type FooterState struct {
	NoticeKey string
	Duration  string
	Visible   bool
	Focused   bool
	Portal    bool

	Pending int
	Closed  int

	StatusMessage string
	Legend        string
}

type FooterStyles struct {
	BarBG      lipgloss.Color
	StatusBG   lipgloss.Color
	ModePillBG lipgloss.Color
	ModePillFG lipgloss.Color
	KeyFG      lipgloss.Color
	TextFG     lipgloss.Color
	DimFG      lipgloss.Color
	StatusFG   lipgloss.Color
	LegendFG   lipgloss.Color
}

func defaultFooterStyles() FooterStyles {
	return FooterStyles{
		BarBG:      lipgloss.Color("#2b2b2b"),
		StatusBG:   lipgloss.Color("#000000"),
		ModePillBG: lipgloss.Color("#ff9f1c"),
		ModePillFG: lipgloss.Color("#000000"),
		KeyFG:      lipgloss.Color("#e0e0e0"),
		TextFG:     lipgloss.Color("#cfcfcf"),
		DimFG:      lipgloss.Color("#a0a0a0"),
		StatusFG:   lipgloss.Color("#9a9a9a"),
		LegendFG:   lipgloss.Color("#b0b0b0"),
	}
}

func renderFooter(width int, st FooterState, styles FooterStyles) string {
	if width <= 0 {
		return ""
	}
	if st.Legend == "" {
		st.Legend = "(? help · n new · q quit)"
	}
	if st.Pending < 0 {
		st.Pending = 0
	}

	line1 := renderControlBar(width, st, styles)
	line2 := renderStatusBar(width, st, styles)
	return line1 + "\n" + line2
}

func renderControlBar(width int, st FooterState, styles FooterStyles) string {
	rightPlain := fmt.Sprintf(" pending %d · closed %d", st.Pending, st.Closed)
	rightPlain = truncatePlain(rightPlain, width)
	leftW := max(0, width-runeWidth(rightPlain))

	pill := " " + modeLabel(st) + " "
	pill = truncatePlain(pill, leftW)
	pillSeg := ansiBg(styles.ModePillBG) + ansiFg(styles.ModePillFG) + pill + ansiBg(styles.BarBG)

	rest := leftW - runeWidth(pill)
	keyPlain := ""
	if rest > 0 {
		name := st.NoticeKey
		if name == "" {
			name = "(no notice)"
		}
		keyPlain = truncatePlain(" "+name, rest)
	}
	detailPlain := ""
	if rest-runeWidth(keyPlain) > 0 && st.NoticeKey != "" {
		detail := fmt.Sprintf(" · duration %s · visible %v", st.Duration, st.Visible)
		detailPlain = truncatePlain(detail, rest-runeWidth(keyPlain))
	}
	pad := padRightPlain("", rest-runeWidth(keyPlain)-runeWidth(detailPlain))

	line := pillSeg +
		applyFG(keyPlain, styles.KeyFG, styles.TextFG) +
		applyFG(detailPlain, styles.DimFG, styles.TextFG) +
		pad + rightPlain
	return applyBar(line, styles.BarBG, styles.TextFG)
}

func renderStatusBar(width int, st FooterState, styles FooterStyles) string {
	legendPlain := truncatePlain(st.Legend, width)
	leftW := max(0, width-runeWidth(legendPlain))

	msgPlain := truncatePlain(st.StatusMessage, leftW)
	msgPlain = padRightPlain(msgPlain, leftW)

	linePlain := applyFG(msgPlain, styles.StatusFG, styles.StatusFG) + applyFG(legendPlain, styles.LegendFG, styles.StatusFG)
	return applyBar(linePlain, styles.StatusBG, styles.StatusFG)
}

func modeLabel(st FooterState) string {
	switch {
	case st.Focused:
		return "FOCUS"
	case st.Portal:
		return "PORTAL"
	default:
		return "NORMAL"
	}
}

func applyBar(s string, bg lipgloss.Color, baseFG lipgloss.Color) string {
	return ansiBg(bg) + ansiFg(baseFG) + s + "\x1b[0m"
}

func applyFG(s string, fg lipgloss.Color, resetFG lipgloss.Color) string {
	return ansiFg(fg) + s + ansiFg(resetFG)
}

func ansiFg(c lipgloss.Color) string {
	return ansiColor(false, c)
}

func ansiBg(c lipgloss.Color) string {
	return ansiColor(true, c)
}

func ansiColor(isBg bool, c lipgloss.Color) string {
	s := string(c)
	if s == "" {
		if isBg {
			return "\x1b[49m"
		}
		return "\x1b[39m"
	}
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		r, _ := strconv.ParseInt(s[1:3], 16, 0)
		g, _ := strconv.ParseInt(s[3:5], 16, 0)
		b, _ := strconv.ParseInt(s[5:7], 16, 0)
		code := 38
		if isBg {
			code = 48
		}
		return fmt.Sprintf("\x1b[%d;2;%d;%d;%dm", code, r, g, b)
	}
	return ""
}

func padRightPlain(s string, w int) string {
	if w <= 0 {
		return s
	}
	cur := runeWidth(s)
	if cur >= w {
		return s
	}
	return s + strings.Repeat(" ", w-cur)
}

func truncatePlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return ansi.Truncate(s, w, "")
}

func runeWidth(s string) int {
	return ansi.StringWidth(s)
}
