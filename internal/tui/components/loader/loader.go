// Package loader provides the loading indicator shown while the wizard has
// nothing to display.
package loader

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultLabel is shown next to the spinner
const DefaultLabel = "Caricamento..."

// Model is a labelled spinner
type Model struct {
	Spinner spinner.Model
	Label   string
	style   lipgloss.Style
}

// New creates a loader with the default label
func New() Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return Model{
		Spinner: s,
		Label:   DefaultLabel,
		style:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// Tick starts the spinner animation
func (m Model) Tick() tea.Msg {
	return m.Spinner.Tick()
}

// Update advances the spinner on its tick messages
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.Spinner, cmd = m.Spinner.Update(msg)
	return m, cmd
}

// View renders the spinner and label
func (m Model) View() string {
	return m.Spinner.View() + " " + m.style.Render(m.Label)
}
