package utils

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PadRight returns copies of strs padded with spaces to the widest display
// width among them.
func PadRight(strs []string) []string {
	maxWidth := 0
	for _, s := range strs {
		maxWidth = max(maxWidth, lipgloss.Width(s))
	}

	padded := make([]string, len(strs))
	for i, s := range strs {
		padded[i] = s + strings.Repeat(" ", maxWidth-lipgloss.Width(s))
	}
	return padded
}
