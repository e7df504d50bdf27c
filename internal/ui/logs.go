package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/turtlelog/internal/classify"
)

// logState holds all log-related state.
type logState struct {
	follow bool

	// Visible classified lines of the active stream, rebuilt on every change.
	lines []classify.Line

	// Links in display order and the index of the focused one (-1 for none).
	links       []linkRef
	focusedLink int
}

// linkRef locates a link inside the visible lines.
type linkRef struct {
	line int
	url  string
	text string
}

func newLogState() logState {
	return logState{
		follow:      true,
		focusedLink: -1,
	}
}

// refreshLogContent re-classifies the active stream and re-renders the viewport.
func (m *Model) refreshLogContent() {
	stream := m.activeStream()

	var raw []string
	if buf := m.sources[stream]; buf != nil {
		raw = buf.Lines()
	}
	focused, hadFocus := m.focusedLinkRef()
	m.logState.lines = classify.Visible(classify.ClassifyAll(raw, stream))
	m.logState.links = collectLinks(m.logState.lines)
	m.logState.focusedLink = -1
	if hadFocus {
		m.logState.focusedLink = relocateLink(m.logState.links, focused)
	}

	m.resizeLogViewport()
}

// collectLinks returns every link carried by lines, top to bottom.
func collectLinks(lines []classify.Line) []linkRef {
	var links []linkRef
	for i, line := range lines {
		for _, url := range line.Links() {
			links = append(links, linkRef{line: i, url: url, text: line.Text})
		}
	}
	return links
}

// relocateLink finds prev in links after the buffer changed. Lines only
// move up as older ones are evicted, so the match is the nearest link at or
// above the old line. Returns -1 once the focused line has been evicted.
func relocateLink(links []linkRef, prev linkRef) int {
	for i := len(links) - 1; i >= 0; i-- {
		if links[i].line <= prev.line && links[i].url == prev.url && links[i].text == prev.text {
			return i
		}
	}
	return -1
}

// resizeLogViewport fits the viewport to the window and sets its content.
func (m *Model) resizeLogViewport() {
	if !m.ready {
		return
	}
	width, height := m.logBoxSize()
	// Box inner = box minus borders and horizontal padding
	m.logViewport.Width = maxInt(width-4, 0)
	m.logViewport.Height = maxInt(height-2, 0)
	m.logViewport.Style = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.FocusBg))
	m.logViewport.SetContent(m.renderLogContent())

	if m.logState.follow {
		m.logViewport.GotoBottom()
	}
}

// logBoxSize returns the outer size of the log box.
func (m Model) logBoxSize() (width, height int) {
	width = m.width
	if m.menuShown() {
		width -= menuWidth
	}
	return width, m.height - chromeHeight
}

// menuShown reports whether the log menu occupies a column.
func (m Model) menuShown() bool {
	return m.showMenu && m.width >= LayoutCompactWidth
}

// renderLogContent renders the classified lines with a line number gutter.
func (m Model) renderLogContent() string {
	bg := NewBgStyle(m.theme.FocusBg)
	styles := m.theme.Styles()
	width := m.logViewport.Width

	if len(m.logState.lines) == 0 {
		return bg.FillLine(bg.Render("No log entries", styles.MutedText), width)
	}

	focusedLine := -1
	if ref, ok := m.focusedLinkRef(); ok {
		focusedLine = ref.line
	}

	var b strings.Builder
	for i, line := range m.logState.lines {
		lineContent := bg.Render(fmt.Sprintf("%4d │ ", i+1), styles.FaintText) +
			renderLine(line, styles, bg, i == focusedLine)

		b.WriteString(bg.FillLine(lineContent, width))
		if i < len(m.logState.lines)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// RenderLine styles a single classified line with theme. A focused link is
// highlighted. Suppressed lines render as the empty string.
func RenderLine(theme Theme, line classify.Line, focused bool) string {
	return renderLine(line, theme.Styles(), NewBgStyle(""), focused)
}

func renderLine(line classify.Line, styles Styles, bg BgStyle, focused bool) string {
	linkStyle := styles.LinkText
	if focused {
		linkStyle = styles.FocusedLink
	}

	switch line.Kind {
	case classify.Suppressed:
		return ""
	case classify.Colored:
		return bg.Render(line.Text, styles.TagStyle(line.Color))
	case classify.Link:
		return bg.Render(line.Label, linkStyle)
	case classify.CompoundLink:
		if strings.TrimSpace(line.Prefix) == "" {
			return bg.Render(line.Label, linkStyle)
		}
		return bg.Render(line.Prefix, styles.Text) + bg.Space() + bg.Render(line.Label, linkStyle)
	default:
		return bg.Render(line.Text, styles.Text)
	}
}

// focusedLinkRef returns the focused link, if any.
func (m Model) focusedLinkRef() (linkRef, bool) {
	idx := m.logState.focusedLink
	if idx < 0 || idx >= len(m.logState.links) {
		return linkRef{}, false
	}
	return m.logState.links[idx], true
}

// focusLink moves link focus by delta, wrapping at both ends.
func (m *Model) focusLink(delta int) {
	n := len(m.logState.links)
	if n == 0 {
		return
	}

	idx := m.logState.focusedLink
	switch {
	case idx < 0 && delta > 0:
		idx = 0
	case idx < 0:
		idx = n - 1
	default:
		idx = ((idx+delta)%n + n) % n
	}
	m.logState.focusedLink = idx
	m.logState.follow = false
	m.logViewport.SetContent(m.renderLogContent())
	m.scrollToLine(m.logState.links[idx].line)
}

// scrollToLine centers line in the viewport when it is out of view.
func (m *Model) scrollToLine(line int) {
	top := m.logViewport.YOffset
	if line >= top && line < top+m.logViewport.Height {
		return
	}
	m.logViewport.SetYOffset(maxInt(line-m.logViewport.Height/2, 0))
}

// openLinkCmd hands url to the opener without blocking the update loop.
func openLinkCmd(opener LinkOpener, url string) tea.Cmd {
	if opener == nil || url == "" {
		return nil
	}
	return func() tea.Msg {
		opener.Open(url)
		return nil
	}
}

// renderLogs renders the log box and the status bar under it.
func (m Model) renderLogs() string {
	bg := NewBgStyle(m.theme.FocusBg)
	styles := m.theme.Styles()
	width, height := m.logBoxSize()

	box := m.renderBox(m.activeStream().Label(), m.logViewport.View(), width, height, true)
	return box + "\n" + m.renderLogStatus(styles, bg)
}

// renderLogStatus renders the log status bar.
func (m Model) renderLogStatus(styles Styles, bg BgStyle) string {
	autoTail := "off"
	if m.logState.follow {
		autoTail = "on"
	}
	status := fmt.Sprintf("%s %d lines follow %s", m.activeStream().Label(), len(m.logState.lines), autoTail)

	parts := []string{bg.Render(status, styles.FaintText)}

	if n := len(m.logState.links); n > 0 {
		links := fmt.Sprintf("%d links", n)
		if ref, ok := m.focusedLinkRef(); ok {
			links = fmt.Sprintf("link %d/%d", m.logState.focusedLink+1, n)
			parts = append(parts, bg.Render(links, styles.WarningText), bg.Render(truncateMiddle(ref.url, 60), styles.AccentText))
		} else {
			parts = append(parts, bg.Render(links, styles.MutedText))
		}
	}

	sep := bg.Space() + bg.Render("•", styles.FaintText) + bg.Space()
	return strings.Join(parts, sep)
}

// handleLogsKey processes keyboard input for the log view.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ToggleFollow):
		m.logState.follow = !m.logState.follow
		if m.logState.follow {
			m.logViewport.GotoBottom()
		}
		return m, nil

	case key.Matches(msg, m.keys.NextLink):
		m.focusLink(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevLink):
		m.focusLink(-1)
		return m, nil

	case key.Matches(msg, m.keys.OpenLink):
		if ref, ok := m.focusedLinkRef(); ok {
			return m, openLinkCmd(m.opener, ref.url)
		}
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		if m.logState.focusedLink >= 0 {
			m.logState.focusedLink = -1
			m.logViewport.SetContent(m.renderLogContent())
		}
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.logViewport.GotoTop()
		m.logState.follow = false
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.logViewport.GotoBottom()
		m.logState.follow = true
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.logViewport.ScrollDown(1)
		m.logState.follow = false
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.logViewport.ScrollUp(1)
		m.logState.follow = false
		return m, nil

	case key.Matches(msg, m.keys.HalfPageDown):
		m.logViewport.HalfPageDown()
		m.logState.follow = false
		return m, nil

	case key.Matches(msg, m.keys.HalfPageUp):
		m.logViewport.HalfPageUp()
		m.logState.follow = false
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.logViewport.PageDown()
		m.logState.follow = false
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.logViewport.PageUp()
		m.logState.follow = false
		return m, nil
	}

	return m, nil
}
