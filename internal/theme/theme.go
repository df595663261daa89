package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes the Lip Gloss styles used across the UI. The active set is
// built once at startup and handed to the view explicitly.
type Styles struct {
	Item              *lipgloss.Style
	Group             *lipgloss.Style
	UpRow             *lipgloss.Style
	ItemIndicator     *lipgloss.Style
	SelectedIndicator *lipgloss.Style
	SelectedItem      *lipgloss.Style
	Error             *lipgloss.Style
	Info              *lipgloss.Style
	Header            *lipgloss.Style
	Footer            *lipgloss.Style
	Filter            *lipgloss.Style
	FilterPrompt      *lipgloss.Style
	FilterPlaceholder *lipgloss.Style
	Cursor            *lipgloss.Style
	PreviewTitle      *lipgloss.Style
	PreviewBody       *lipgloss.Style
	PreviewError      *lipgloss.Style

	// Row markers rendered ahead of entry names.
	GroupIcon   string
	CommandIcon string
	UpIcon      string
}

// Default builds the standard style set.
func Default() *Styles {
	return &Styles{
		Item: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
		),
		Group: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
		),
		UpRow: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		),
		ItemIndicator: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		),
		SelectedIndicator: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238")),
		),
		SelectedItem: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
		),
		Error: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		),
		Info: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
		),
		Header: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
		),
		Footer: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
		),
		Filter: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
		),
		FilterPrompt: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
		),
		FilterPlaceholder: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		),
		Cursor: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
		),
		PreviewTitle: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
		),
		PreviewBody: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		),
		PreviewError: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		),
		GroupIcon:   "+",
		CommandIcon: " ",
		UpIcon:      "<",
	}
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
