package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Title         *lipgloss.Style
	Header        *lipgloss.Style
	Label         *lipgloss.Style
	FocusedLabel  *lipgloss.Style
	Selector      *lipgloss.Style
	Word          *lipgloss.Style
	WordNote      *lipgloss.Style
	Error         *lipgloss.Style
	Info          *lipgloss.Style
	Footer        *lipgloss.Style
	Dim           *lipgloss.Style
	OverlayTitle  *lipgloss.Style
	OverlayBorder *lipgloss.Style
	OverlayKey    *lipgloss.Style
	OverlayEntry  *lipgloss.Style
	OverlayMatch  *lipgloss.Style
}

var defaultStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Label: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	),
	FocusedLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	),
	Selector: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	),
	Word: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	WordNote: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Dim: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	OverlayTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	OverlayBorder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	OverlayKey: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	),
	OverlayEntry: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	OverlayMatch: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
