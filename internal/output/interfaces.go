// Package output provides a unified console output system for TransferBench.
// It uses dependency injection to support optional styling while keeping the
// result stream clean for plain or scripted consumption.
package output

// StyleProvider is the interface styling backends implement to provide
// styled text rendering. The output package depends only on this interface,
// not on a concrete styling library.
type StyleProvider interface {
	// GetStyle returns a TextStyle for the given semantic type.
	GetStyle(semantic string) TextStyle

	// IsAvailable returns true if the provider is ready to provide styles.
	// This allows the printer to gracefully fall back to plain text.
	IsAvailable() bool
}

// TextStyle represents the capability to render text with styling. It is
// implemented by lipgloss.Style or other styling systems.
type TextStyle interface {
	// Render applies styling to the given text and returns the result.
	Render(text string) string
}

// Mode defines different output modes the printer can operate in.
type Mode int

const (
	// ModeAuto uses styling when a provider is available.
	ModeAuto Mode = iota

	// ModeStyled forces styled output.
	ModeStyled

	// ModePlain forces plain text output.
	ModePlain
)

// SemanticType defines the semantic meaning of output for consistent styling.
type SemanticType string

const (
	// SemanticPlain represents plain text without any semantic meaning.
	SemanticPlain SemanticType = "plain"
	// SemanticInfo represents informational text.
	SemanticInfo SemanticType = "info"
	// SemanticSuccess represents success or completion text.
	SemanticSuccess SemanticType = "success"
	// SemanticWarning represents warning text.
	SemanticWarning SemanticType = "warning"
	// SemanticError represents error text.
	SemanticError SemanticType = "error"
	// SemanticHighlight represents highlighted or emphasized text.
	SemanticHighlight SemanticType = "highlight"
)
