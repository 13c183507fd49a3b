package output

import "github.com/charmbracelet/lipgloss"

// LipglossStyleProvider implements StyleProvider backed by lipgloss styles.
// It is the default styling backend for interactive terminals.
type LipglossStyleProvider struct {
	styles map[string]lipgloss.Style
}

// NewLipglossStyleProvider creates the default lipgloss style set.
func NewLipglossStyleProvider() *LipglossStyleProvider {
	return &LipglossStyleProvider{
		styles: map[string]lipgloss.Style{
			"info":      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			"success":   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			"warning":   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			"error":     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
			"highlight": lipgloss.NewStyle().Bold(true),
		},
	}
}

// GetStyle implements StyleProvider.GetStyle.
func (l *LipglossStyleProvider) GetStyle(semantic string) TextStyle {
	if style, ok := l.styles[semantic]; ok {
		return lipglossTextStyle{style: style}
	}
	return NewPlainTextStyle("")
}

// IsAvailable implements StyleProvider.IsAvailable.
func (l *LipglossStyleProvider) IsAvailable() bool {
	return true
}

// lipglossTextStyle adapts a lipgloss.Style to the TextStyle interface.
type lipglossTextStyle struct {
	style lipgloss.Style
}

func (s lipglossTextStyle) Render(text string) string {
	return s.style.Render(text)
}
