package header

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestView(t *testing.T) {
	out := View(DefaultStyles(), 0)
	require.Contains(t, out, Title)
	require.Contains(t, out, Tagline)

	wide := View(DefaultStyles(), 40)
	for _, line := range strings.Split(wide, "\n") {
		require.Equal(t, 40, lipgloss.Width(line))
	}
}
