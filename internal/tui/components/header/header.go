// Package header renders the welcome header shown above the wizard.
package header

import (
	"github.com/charmbracelet/lipgloss"
)

// Title and Tagline are the fixed header texts
const (
	Title   = "MD Corp Ranks"
	Tagline = "La tua opinione conta"
)

// Styles defines the visual styling for the header
type Styles struct {
	Title   lipgloss.Style
	Tagline lipgloss.Style
	Border  lipgloss.Style
}

// DefaultStyles returns the default header styles
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Tagline: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("240")),
	}
}

// View renders the header. A width of 0 leaves the header unpadded.
func View(styles Styles, width int) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render(Title),
		styles.Tagline.Render(Tagline),
	)
	border := styles.Border
	if width > 0 {
		border = border.Width(width)
	}
	return border.Render(content)
}
