package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/turtlelog/internal/classify"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header and status bars
	FocusBg    string // Log panel background

	// Border colors
	Border      string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Warning string

	// Log line colors, one per classify.ColorTag plus links
	Success string
	Primary string
	Danger  string
	Violet  string
	Link    string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		PrimaryText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		VioletText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Violet)).
			Bold(true),

		LinkText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Link)).
			Underline(true),

		FocusedLink: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Background)).
			Background(lipgloss.Color(t.Link)).
			Underline(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		MenuActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	WarningText lipgloss.Style

	// Log line tags
	SuccessText lipgloss.Style
	PrimaryText lipgloss.Style
	DangerText  lipgloss.Style
	VioletText  lipgloss.Style
	LinkText    lipgloss.Style
	FocusedLink lipgloss.Style

	// Components
	Header     lipgloss.Style
	Logo       lipgloss.Style
	MenuActive lipgloss.Style
}

// TagStyle maps a classified color tag to its style.
func (s Styles) TagStyle(tag classify.ColorTag) lipgloss.Style {
	switch tag {
	case classify.Success:
		return s.SuccessText
	case classify.Primary:
		return s.PrimaryText
	case classify.Danger:
		return s.DangerText
	case classify.Violet:
		return s.VioletText
	default:
		return s.Text
	}
}

// ThemeFor returns the dark or light theme.
func ThemeFor(dark bool) Theme {
	if dark {
		return darkTheme()
	}
	return lightTheme()
}

func darkTheme() Theme {
	// Official Dracula palette: https://draculatheme.com/spec
	return Theme{
		Name: "Dark",

		Background: "#191A21", // BGDarker
		Surface:    "#282A36", // Background
		FocusBg:    "#21222C", // BGDark

		Border:      "#44475A", // Selection
		BorderFocus: "#BD93F9", // Purple

		Text:    "#F8F8F2", // Foreground
		Muted:   "#6272A4", // Comment
		Faint:   "#44475A", // Selection
		Accent:  "#8BE9FD", // Cyan
		Warning: "#FFB86C", // Orange

		Success: "#50FA7B", // Green
		Primary: "#8BE9FD", // Cyan
		Danger:  "#FF5555", // Red
		Violet:  "#BD93F9", // Purple
		Link:    "#FF79C6", // Pink
	}
}

func lightTheme() Theme {
	// Tailwind CSS palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Light",

		Background: "#f8fafc", // slate-50
		Surface:    "#e2e8f0", // slate-200
		FocusBg:    "#ffffff",

		Border:      "#cbd5e1", // slate-300
		BorderFocus: "#7c3aed", // violet-600

		Text:    "#0f172a", // slate-900
		Muted:   "#475569", // slate-600
		Faint:   "#94a3b8", // slate-400
		Accent:  "#0284c7", // sky-600
		Warning: "#d97706", // amber-600

		Success: "#16a34a", // green-600
		Primary: "#0284c7", // sky-600
		Danger:  "#dc2626", // red-600
		Violet:  "#7c3aed", // violet-600
		Link:    "#2563eb", // blue-600
	}
}
