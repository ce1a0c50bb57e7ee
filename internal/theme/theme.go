package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared by both front-ends. A nil
// style renders its text unchanged.
type Styles struct {
	Banner       *lipgloss.Style
	Header       *lipgloss.Style
	Item         *lipgloss.Style
	SelectedItem *lipgloss.Style
	Gutter       *lipgloss.Style
	Line         *lipgloss.Style
	Success      *lipgloss.Style
	Error        *lipgloss.Style
	Info         *lipgloss.Style
	Footer       *lipgloss.Style
	Suggestion   *lipgloss.Style
}

var defaultStyles = Styles{
	Banner: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Gutter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Line: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Success: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Suggestion: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("110")),
	),
}

var plainStyles = Styles{}

// Default exposes the standard style set.
func Default() *Styles {
	return &defaultStyles
}

// Plain exposes a style set that leaves every string untouched.
func Plain() *Styles {
	return &plainStyles
}

// Render applies style to text, passing text through when style is nil.
func Render(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	return style.Render(text)
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
