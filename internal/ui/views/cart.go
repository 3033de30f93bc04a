package views

import (
	"fmt"
	"strings"
)

// CartRenderer renders the cart side panel
type CartRenderer struct {
	styles *Styles
	price  PriceFormatter
}

// NewCartRenderer creates a new cart renderer
func NewCartRenderer(styles *Styles, price PriceFormatter) *CartRenderer {
	return &CartRenderer{
		styles: styles,
		price:  price,
	}
}

const cartWidth = 34

// Render renders the cart lines with the highlighted line from state.OptionIndex
func (cr *CartRenderer) Render(state ViewState) string {
	var b strings.Builder
	b.WriteString(cr.styles.CartBar.Bold(true).Render("Cart"))
	b.WriteString("\n\n")

	if len(state.CartItems) == 0 {
		b.WriteString(cr.styles.Empty.Render("Your cart is empty."))
	} else {
		for i, item := range state.CartItems {
			line := fmt.Sprintf("%dx %s", item.Quantity, truncate(item.Product.Name, cartWidth-14))
			sub := cr.price.Format(item.Subtotal())
			pad := max(cartWidth-len([]rune(line))-len([]rune(sub)), 1)
			line = line + strings.Repeat(" ", pad) + sub
			if i == state.OptionIndex && state.InputMode == "cart" {
				b.WriteString(cr.styles.CartLineSel.Render(line))
			} else {
				b.WriteString(cr.styles.CartLine.Render(line))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Total: %s", cr.price.Format(state.CartTotal)))
	}

	if state.InputMode == "cart" {
		b.WriteString("\n\n")
		b.WriteString(cr.styles.Dim.Render("x remove · C clear · esc close"))
	}
	return cr.styles.CartBox.Width(cartWidth + 2).Render(b.String())
}
