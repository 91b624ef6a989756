package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/davrell/mdoutline/internal/config"
)

// StyleManager encapsulates all TUI styles and provides methods for style operations
type StyleManager struct {
	// Outline list styles
	Heading  lipgloss.Style
	Active   lipgloss.Style
	Guide    lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
	Dim      lipgloss.Style

	// Chrome styles
	Divider lipgloss.Style
	ErrBan  lipgloss.Style

	// Colors for direct access
	SelectedBg lipgloss.Color
}

// DefaultStyles returns a StyleManager with default styles
func DefaultStyles() *StyleManager {
	return &StyleManager{
		Heading:    lipgloss.NewStyle().Bold(true),
		Active:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		Guide:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Selected:   lipgloss.NewStyle().Background(lipgloss.Color("236")),
		Cursor:     lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Divider:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		ErrBan:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		SelectedBg: lipgloss.Color("236"),
	}
}

// LoadFromConfig updates styles based on configuration
func (s *StyleManager) LoadFromConfig() {
	headingColor := lipgloss.Color(config.GetColorHeading())
	dimColor := lipgloss.Color(config.GetColorDim())
	borderColor := lipgloss.Color(config.GetColorBorder())
	cursorColor := lipgloss.Color(config.GetColorCursor())
	selectedBg := lipgloss.Color(config.GetColorSelected())
	activeColor := lipgloss.Color(config.GetColorActive())

	s.Heading = lipgloss.NewStyle().Foreground(headingColor)
	s.Active = lipgloss.NewStyle().Bold(true).Foreground(activeColor)
	s.Guide = lipgloss.NewStyle().Foreground(borderColor)
	s.Selected = lipgloss.NewStyle().Background(selectedBg)
	s.Cursor = lipgloss.NewStyle().Foreground(cursorColor)
	s.Dim = lipgloss.NewStyle().Foreground(dimColor)
	s.Divider = lipgloss.NewStyle().Foreground(borderColor)
	s.SelectedBg = selectedBg
}

// WithSelection returns a copy of the given style with the selected background applied
func (s *StyleManager) WithSelection(style lipgloss.Style) lipgloss.Style {
	return style.Background(s.SelectedBg)
}

// Global style manager instance
var styles = DefaultStyles()

// RefreshStyles updates the global styles from config
func RefreshStyles() {
	styles.LoadFromConfig()
}
