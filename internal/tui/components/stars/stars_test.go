package stars

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestView(t *testing.T) {
	require.Equal(t, "☆ ☆ ☆ ☆ ☆", View(DefaultStyles(), 0))
	require.Equal(t, "★ ★ ★ ☆ ☆", View(DefaultStyles(), 3))
	require.Equal(t, "★ ★ ★ ★ ★", View(DefaultStyles(), 5))
}

func TestPlain(t *testing.T) {
	require.Equal(t, "★★☆☆☆", Plain(2))
}

func TestForKey(t *testing.T) {
	tests := []struct {
		key     string
		current int
		want    int
		changed bool
	}{
		{"4", 0, 4, true},
		{"1", 5, 1, true},
		{"right", 0, 1, true},
		{"l", 3, 4, true},
		{"right", 5, 5, false},
		{"left", 3, 2, true},
		{"left", 1, 1, false},
		{"h", 0, 1, true},
		{"x", 2, 2, false},
		{"6", 2, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, changed := ForKey(tt.key, tt.current)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.changed, changed)
		})
	}
}
