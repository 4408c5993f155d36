package layout

import (
	"pkglists/internal/styles"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const truncatedMarker = "…"

// View frames content in the app padding. Content is centered horizontally
// and anchored to the top; when it is taller than the window, the last
// visible line is replaced with a marker.
func View(content string, width, height int) string {
	availableWidth := width - styles.AppStyle.GetHorizontalPadding()
	availableHeight := height - styles.AppStyle.GetVerticalPadding()
	if availableHeight <= 0 || availableWidth <= 0 {
		return ""
	}

	lines := strings.Split(content, "\n")
	if len(lines) > availableHeight {
		lines = lines[:availableHeight]
		lines[availableHeight-1] = truncatedMarker
	}

	placed := lipgloss.Place(
		availableWidth,
		availableHeight,
		lipgloss.Center,
		lipgloss.Top,
		strings.Join(lines, "\n"),
	)

	return styles.AppStyle.Render(placed)
}
