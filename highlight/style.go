package highlight

import "github.com/charmbracelet/lipgloss"

// Style holds the emphasis attached by a Highlighter.
type Style struct {
	// Prefix is attached over prefix matches.
	Prefix lipgloss.Style
	// Mask is attached over masking ranges.
	Mask lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Prefix: lipgloss.NewStyle().Bold(true),
		Mask:   lipgloss.NewStyle().Background(lipgloss.Color("237")),
	}
}
