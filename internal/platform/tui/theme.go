package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the styles used around the rendered world.
type Theme struct {
	// Status line
	StatusTitle     lipgloss.Style
	StatusValue     lipgloss.Style
	StatusSeparator lipgloss.Style
	StatusPaused    lipgloss.Style
	Help            lipgloss.Style

	// Overlay
	OverlayBorder lipgloss.Style
	OverlayTitle  lipgloss.Style
	OverlayText   lipgloss.Style

	// Level picker
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		StatusTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		StatusValue:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		StatusSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		StatusPaused:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Help:            lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		OverlayBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 4),
		OverlayTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		OverlayText:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")),

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// MonochromeTheme returns a grayscale theme for terminals without color.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.StatusTitle = lipgloss.NewStyle().Bold(true)
	theme.StatusPaused = lipgloss.NewStyle().Bold(true).Reverse(true)
	theme.OverlayTitle = lipgloss.NewStyle().Bold(true)
	theme.MenuTitle = lipgloss.NewStyle().Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Bold(true).Reverse(true)
	return theme
}
