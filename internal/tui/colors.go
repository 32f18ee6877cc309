package tui

import "github.com/charmbracelet/lipgloss"

// Palette used by the wizard views
var (
	ColorAccent     = lipgloss.Color("62")
	ColorOnAccent   = lipgloss.Color("230")
	ColorTitle      = lipgloss.Color("39")
	ColorText       = lipgloss.Color("250")
	ColorSuccess    = lipgloss.Color("42")
	ColorWarning    = lipgloss.Color("214")
	ColorError      = lipgloss.Color("196")
	ColorMuted      = lipgloss.Color("245")
	ColorSubtle     = lipgloss.Color("241")
	ColorDisabled   = lipgloss.Color("240")
	ColorDisabledBg = lipgloss.Color("236")
)
