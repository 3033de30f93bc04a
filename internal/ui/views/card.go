package views

import (
	"strings"

	"shopgrid/internal/domain"
)

// CardRenderer renders a single product card
type CardRenderer struct {
	styles *Styles
	price  PriceFormatter
}

// NewCardRenderer creates a new card renderer
func NewCardRenderer(styles *Styles, price PriceFormatter) *CardRenderer {
	return &CardRenderer{
		styles: styles,
		price:  price,
	}
}

// Render renders p as a card of the given width, padding included
func (cr *CardRenderer) Render(p domain.Product, image string, width int, selected, showDescription bool) string {
	text := width - 2
	lines := []string{
		cr.styles.CardName.Render(truncate(p.Name, text)),
		cr.styles.Category.Render(truncate(p.Category, text)),
		cr.styles.Price.Render("Price: " + cr.price.Format(p.Price)),
	}
	if showDescription && p.Description != "" {
		lines = append(lines, truncate(p.Description, text*2))
	}
	if image != "" {
		lines = append(lines, cr.styles.Dim.Render(truncate("img: "+image, text)))
	}
	if selected {
		lines = append(lines, cr.styles.Filter.Render("[enter] Add To Cart"))
	}

	style := cr.styles.Card
	if selected {
		style = cr.styles.CardSelected
	}
	return style.Width(width).Render(strings.Join(lines, "\n"))
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(runes[:n-1]) + "…"
}
