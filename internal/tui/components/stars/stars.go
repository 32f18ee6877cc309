// Package stars renders the 5-unit star selector and maps keys to ratings.
package stars

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mdcorpranks.dev/review-wizard/internal/review"
)

const (
	filled = "★"
	empty  = "☆"
)

// Styles defines the visual styling for the star selector
type Styles struct {
	Filled lipgloss.Style
	Empty  lipgloss.Style
}

// DefaultStyles returns the default star styles
func DefaultStyles() Styles {
	return Styles{
		Filled: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Empty:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// View renders rating filled stars out of review.MaxRating
func View(styles Styles, rating int) string {
	var b strings.Builder
	for i := review.MinRating; i <= review.MaxRating; i++ {
		if i > review.MinRating {
			b.WriteString(" ")
		}
		if i <= rating {
			b.WriteString(styles.Filled.Render(filled))
		} else {
			b.WriteString(styles.Empty.Render(empty))
		}
	}
	return b.String()
}

// Plain renders a rating without styling, for line-oriented output
func Plain(rating int) string {
	return strings.Repeat(filled, rating) + strings.Repeat(empty, review.MaxRating-rating)
}

// ForKey maps a key to the rating it selects given the current rating.
// Digits select directly; left/right (h/l) step down and up, staying within 1-5.
func ForKey(key string, current int) (int, bool) {
	switch key {
	case "1", "2", "3", "4", "5":
		return int(key[0] - '0'), true
	case "right", "l", "+":
		if current < review.MaxRating {
			return current + 1, true
		}
		return review.MaxRating, current == 0
	case "left", "h", "-":
		if current > review.MinRating {
			return current - 1, true
		}
		return review.MinRating, current == 0
	}
	return current, false
}
