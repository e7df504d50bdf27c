package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/turtlelog/internal/classify"
)

// renderMain composes header, command bar, menu and log box.
func (m Model) renderMain() string {
	logs := m.renderLogs()
	body := logs
	if m.menuShown() {
		_, height := m.logBoxSize()
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderMenu(height), logs)
	}
	return m.renderHeader() + "\n" + m.renderCommandBar() + "\n" + body
}

// renderHeader renders the title bar with source health.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < 100

	parts := []string{bg.Render("turtlelog", styles.Logo.Background(lipgloss.Color(m.theme.Surface)))}

	for _, stream := range m.visibleLogs() {
		parts = append(parts, m.formatSourceHealth(stream, compact, styles, bg))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// formatSourceHealth renders one source as "● Label origin".
func (m Model) formatSourceHealth(stream classify.StreamKind, compact bool, styles Styles, bg BgStyle) string {
	status := m.snapshot.Source(stream)

	dot := bg.Render("●", styles.SuccessText)
	if status.IsFailing() {
		dot = bg.Render("●", styles.DangerText)
	} else if status.LastError != nil {
		dot = bg.Render("●", styles.WarningText)
	}

	out := dot + bg.Space() + bg.Render(stream.Label(), styles.Text)
	if compact {
		return out
	}
	if status.IsFailing() {
		return out + bg.Space() + bg.Render(truncate(status.LastError.Error(), 40), styles.DangerText)
	}
	if status.Origin != "" {
		return out + bg.Space() + bg.Render(truncateMiddle(status.Origin, 40), styles.MutedText)
	}
	return out
}

// renderCommandBar renders the command hints bar.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	followLabel := "Pause"
	if !m.logState.follow {
		followLabel = "Follow"
	}

	type cmd struct{ key, desc string }
	commands := []cmd{
		{"Space", followLabel},
		{"n/N", "Links"},
		{"Enter", "Open"},
	}
	if len(m.visibleLogs()) > 1 {
		commands = append(commands, cmd{"Tab", "Switch log"})
	}
	commands = append(commands, cmd{"?", "Help"}, cmd{"q", "Quit"})

	colon := bg.Render(":", styles.FaintText)
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(bg.Join(segments, "  "))
}

// renderMenu renders the log selection column.
func (m Model) renderMenu(height int) string {
	bg := NewBgStyle(m.theme.Surface)
	styles := m.theme.Styles()
	inner := menuWidth - 4
	active := m.activeStream()

	lines := make([]string, 0, len(classify.Streams()))
	for _, stream := range m.visibleLogs() {
		label := truncate(stream.Label(), inner-2)
		if stream == active {
			lines = append(lines, bg.FillLine(bg.Render("▸ "+label, styles.MenuActive), inner))
			continue
		}
		lines = append(lines, bg.FillLine(bg.Spaces(2)+bg.Render(label, styles.MutedText), inner))
	}

	return m.renderBoxWithBg("Logs", strings.Join(lines, "\n"), menuWidth, height, false, bg)
}

// renderBox draws a rounded border with a title around content.
func (m Model) renderBox(title, content string, width, height int, focused bool) string {
	return m.renderBoxWithBg(title, content, width, height, focused, NewBgStyle(m.theme.FocusBg))
}

func (m Model) renderBoxWithBg(title, content string, width, height int, focused bool, bg BgStyle) string {
	if width < 4 || height < 2 {
		return ""
	}

	borderColor := m.theme.Border
	if focused {
		borderColor = m.theme.BorderFocus
	}
	border := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColor))
	titleStyle := m.theme.Styles().Text.Bold(true)
	inner := width - 2

	// ╭─ Title ─────╮
	title = truncate(title, inner-4)
	titleWidth := lipgloss.Width(title)
	top := border.Render("╭─ ") + titleStyle.Render(title) + border.Render(" "+strings.Repeat("─", maxInt(inner-titleWidth-3, 0))+"╮")

	rows := strings.Split(content, "\n")
	var b strings.Builder
	b.WriteString(top)
	for i := 0; i < height-2; i++ {
		row := ""
		if i < len(rows) {
			row = rows[i]
		}
		b.WriteString("\n")
		b.WriteString(border.Render("│"))
		b.WriteString(bg.Space())
		b.WriteString(bg.FillLine(row, inner-2))
		b.WriteString(bg.Space())
		b.WriteString(border.Render("│"))
	}
	b.WriteString("\n")
	b.WriteString(border.Render("╰" + strings.Repeat("─", inner) + "╯"))
	return b.String()
}
