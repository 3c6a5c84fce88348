package ui

import "github.com/charmbracelet/lipgloss"

// Theme bundles palette + symbols + box borders for one presentation mode.
// All UI helpers pull from `current`.
type Theme struct {
	Dark bool

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Done, Selected, Help, ActiveTab, Tab          lipgloss.Style

	// Container is the outer panel: border plus the mode's background.
	Container lipgloss.Style

	BoxUnchecked, BoxChecked string
	// ToggleLabel is the theme switch caption: what pressing it leads to.
	ToggleLabel string
}

var current = lightTheme()

// SetDark switches the presentation mode.
func SetDark(dark bool) {
	if dark {
		current = darkTheme()
	} else {
		current = lightTheme()
	}
	lipgloss.SetHasDarkBackground(dark)
}

// Expose what renderers need
func Current() Theme { return current }

func lightTheme() Theme {
	fg, bg := lipgloss.Color("235"), lipgloss.Color("255")
	base := lipgloss.NewStyle().Foreground(fg).Background(bg)
	return Theme{
		Title:     base.Bold(true),
		Muted:     base.Foreground(lipgloss.Color("245")),
		Accent:    base.Foreground(lipgloss.Color("26")),
		Success:   base.Foreground(lipgloss.Color("28")),
		Error:     base.Foreground(lipgloss.Color("160")).Bold(true),
		Pending:   base.Foreground(lipgloss.Color("166")),
		Done:      base.Foreground(lipgloss.Color("245")).Strikethrough(true),
		Selected:  base.Bold(true).Reverse(true),
		Help:      base.Faint(true),
		ActiveTab: base.Foreground(lipgloss.Color("255")).Background(lipgloss.Color("26")).Bold(true).Padding(0, 1),
		Tab:       base.Padding(0, 1),
		Container: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("250")).
			BorderBackground(bg).
			Foreground(fg).
			Background(bg).
			Padding(0, 1),
		BoxUnchecked: "☐",
		BoxChecked:   "☑",
		ToggleLabel:  "☾",
	}
}

func darkTheme() Theme {
	fg, bg := lipgloss.Color("252"), lipgloss.Color("235")
	base := lipgloss.NewStyle().Foreground(fg).Background(bg)
	return Theme{
		Dark:      true,
		Title:     base.Bold(true).Foreground(lipgloss.Color("213")),
		Muted:     base.Foreground(lipgloss.Color("243")),
		Accent:    base.Foreground(lipgloss.Color("81")),
		Success:   base.Foreground(lipgloss.Color("42")),
		Error:     base.Foreground(lipgloss.Color("9")).Bold(true),
		Pending:   base.Foreground(lipgloss.Color("214")),
		Done:      base.Foreground(lipgloss.Color("243")).Strikethrough(true),
		Selected:  base.Bold(true).Reverse(true),
		Help:      base.Faint(true),
		ActiveTab: base.Foreground(lipgloss.Color("235")).Background(lipgloss.Color("81")).Bold(true).Padding(0, 1),
		Tab:       base.Padding(0, 1),
		Container: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBackground(bg).
			Foreground(fg).
			Background(bg).
			Padding(0, 1),
		BoxUnchecked: "☐",
		BoxChecked:   "☑",
		ToggleLabel:  "☀",
	}
}
