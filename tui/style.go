package tui

import "github.com/charmbracelet/lipgloss"

const (
	scrollTrackChar = "│"
	scrollThumbChar = "█"
)

// Styles groups the lipgloss styles used when rendering the list.
type Styles struct {
	Row            lipgloss.Style
	SelectedRow    lipgloss.Style
	ScrollbarTrack lipgloss.Style
	ScrollbarThumb lipgloss.Style
}

// DefaultStyles returns a muted default palette.
func DefaultStyles() Styles {
	return Styles{
		Row:            lipgloss.NewStyle(),
		SelectedRow:    lipgloss.NewStyle().Reverse(true),
		ScrollbarTrack: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		ScrollbarThumb: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
