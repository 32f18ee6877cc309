// Package tui provides the terminal user interface for the review wizard.
//
// It handles:
//   - The full-screen wizard (bubbletea) and its line-mode fallback (survey)
//   - Structured logging and status reporting (Splog)
//   - Terminal styling (lipgloss)
package tui
