package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the day-view UI.
type Theme struct {
	Gutter      lipgloss.Style // hour labels on the left
	GridLine    lipgloss.Style // empty slots on hour boundaries
	Empty       lipgloss.Style // empty slots between lines
	DayHeader   lipgloss.Style
	TodayHeader lipgloss.Style
	BlockText   lipgloss.Style // foreground laid over the gradient color
	Selected    lipgloss.Style
	DragValid   lipgloss.Style
	DragInvalid lipgloss.Style
	Status      lipgloss.Style
	Help        lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Gutter:      lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		GridLine:    lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
		Empty:       lipgloss.NewStyle(),
		DayHeader:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		TodayHeader: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		BlockText:   lipgloss.NewStyle().Foreground(lipgloss.Color("231")),
		Selected:    lipgloss.NewStyle().Bold(true).Reverse(true),
		DragValid:   lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("24")),
		DragInvalid: lipgloss.NewStyle().Foreground(lipgloss.Color("248")).Background(lipgloss.Color("52")).Faint(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
	}
}
