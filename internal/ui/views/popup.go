package views

import (
	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// Render centers the boxed content in an area of width x height.
// Content taller or wider than the area is shown from its top left.
func (pr *PopupRenderer) Render(content string, width, height int) string {
	box := pr.styles.InfoBox.Render(content)
	if width <= 0 || height <= 0 {
		return box
	}
	// Keep a small margin
	if lipgloss.Width(box) > width-2 || lipgloss.Height(box) > height {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
