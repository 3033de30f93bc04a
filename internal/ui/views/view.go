package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"shopgrid/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	// Listing
	Products         []domain.Product // projected, in display order
	Images           []string         // resolved image references, parallel to Products
	TotalProducts    int              // size of the full catalog
	SelectedIndex    int
	ViewportOffset   int // first visible row
	ViewportRows     int
	Columns          int
	ShowDescriptions bool

	// Filter
	SearchTerm     string
	Category       string
	PriceSortLabel string
	IsFiltered     bool

	// Input
	InputMode   string // "", "search", "category", "price", "cart"
	InputPrompt string
	TextInput   string
	Options     []string
	OptionIndex int

	// Cart
	CartItems []domain.CartItem
	CartCount int
	CartTotal float64
	ShowCart  bool

	// Popups and footer
	ShowHelp      bool
	HelpContent   string
	ShowInfo      bool
	InfoContent   string
	StatusMessage string
	ShortHelp     string
}

// Renderer handles all view rendering
type Renderer struct {
	styles     *Styles
	price      PriceFormatter
	cardRender *CardRenderer
	cartRender *CartRenderer
	popup      *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(currencySymbol string) *Renderer {
	styles := NewStyles()
	price := NewPriceFormatter(currencySymbol)
	return &Renderer{
		styles:     styles,
		price:      price,
		cardRender: NewCardRenderer(styles, price),
		cartRender: NewCartRenderer(styles, price),
		popup:      NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}
	width := state.Width
	if width <= 0 {
		width = 80
	}
	available := width - 4 // Main padding

	content.WriteString(r.renderTitleLine(state, available))
	content.WriteString("\n")
	content.WriteString(r.renderFilterLine(state))
	content.WriteString("\n")

	if input := r.renderInput(state); input != "" {
		content.WriteString(input)
		content.WriteString("\n")
	}
	content.WriteString("\n")

	// Rows left for the grid or a popup
	areaHeight := state.Height - 2 - strings.Count(content.String(), "\n") - 4

	switch {
	case state.ShowHelp:
		content.WriteString(r.popup.Render(state.HelpContent, available, areaHeight))
	case state.ShowInfo:
		content.WriteString(r.popup.Render(state.InfoContent, available, areaHeight))
	default:
		gridWidth := available
		var cartPanel string
		if state.ShowCart {
			cartPanel = r.cartRender.Render(state)
			gridWidth -= lipgloss.Width(cartPanel) + 2
		}
		grid := r.renderGrid(state, gridWidth)
		if cartPanel != "" {
			grid = lipgloss.JoinHorizontal(lipgloss.Top, grid, "  ", cartPanel)
		}
		content.WriteString(grid)
	}
	content.WriteString("\n")

	if state.StatusMessage != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Status.Render(state.StatusMessage))
	}

	if state.ShortHelp != "" {
		body := content.String()
		// Push the key help to the bottom of the screen
		if state.Height > 0 {
			used := strings.Count(body, "\n") + 1
			if pad := state.Height - 2 - used - 1; pad > 0 {
				content.WriteString(strings.Repeat("\n", pad))
			}
		}
		content.WriteString("\n")
		content.WriteString(state.ShortHelp)
	}

	return r.styles.Main.Render(content.String())
}

// renderTitleLine renders the logo with the cart summary right-aligned
func (r *Renderer) renderTitleLine(state ViewState, available int) string {
	logo := r.styles.Title.Render("shopgrid")
	cart := r.styles.CartBar.Render(fmt.Sprintf("Cart: %s (%s)", pluralItems(state.CartCount), r.price.Format(state.CartTotal)))

	padding := available - lipgloss.Width(logo) - lipgloss.Width(cart)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + cart
}

func pluralItems(n int) string {
	if n == 1 {
		return "1 item"
	}
	return fmt.Sprintf("%d items", n)
}

// renderFilterLine summarizes the active filters and the match count
func (r *Renderer) renderFilterLine(state ViewState) string {
	label := r.styles.FilterLabel.Render
	value := r.styles.Filter.Render

	search := state.SearchTerm
	if strings.TrimSpace(search) == "" {
		search = "-"
	} else {
		search = fmt.Sprintf("%q", search)
	}

	parts := []string{
		label("Search: ") + value(search),
		label("Category: ") + value(state.Category),
		label("Price: ") + value(state.PriceSortLabel),
	}
	count := fmt.Sprintf("%d of %d products", len(state.Products), state.TotalProducts)
	if state.IsFiltered {
		count += " [filtered]"
	}
	return strings.Join(parts, "   ") + "   " + r.styles.Dim.Render(count)
}

// renderInput renders the active prompt: the search field or an option chooser
func (r *Renderer) renderInput(state ViewState) string {
	switch state.InputMode {
	case "search":
		return r.styles.Prompt.Render(state.InputPrompt) + state.TextInput
	case "category", "price":
		title := "Category:"
		if state.InputMode == "price" {
			title = "Price:"
		}
		return r.styles.Prompt.Render(title) + " " + r.renderOptions(state.Options, state.OptionIndex)
	default:
		return ""
	}
}

// renderOptions renders option chips with the highlighted one emphasized
func (r *Renderer) renderOptions(options []string, active int) string {
	chips := make([]string, 0, len(options))
	for i, opt := range options {
		if i == active {
			chips = append(chips, r.styles.OptionActive.Render(opt))
		} else {
			chips = append(chips, r.styles.Option.Render(opt))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, chips...)
}

// renderGrid lays out the visible rows of product cards
func (r *Renderer) renderGrid(state ViewState, width int) string {
	if len(state.Products) == 0 {
		if state.TotalProducts == 0 {
			return r.styles.Empty.Render("The catalog is empty.")
		}
		return r.styles.Empty.Render("No products match the current filters. Press r to reset.")
	}

	columns := max(state.Columns, 1)
	cardWidth := max(width/columns-4, 12) // border and padding
	rows := (len(state.Products) + columns - 1) / columns
	visibleRows := max(state.ViewportRows, 1)
	start := min(max(state.ViewportOffset, 0), rows-1)
	end := min(start+visibleRows, rows)

	lines := make([]string, 0, end-start+1)
	for row := start; row < end; row++ {
		cards := make([]string, 0, columns)
		for col := 0; col < columns; col++ {
			i := row*columns + col
			if i >= len(state.Products) {
				break
			}
			image := ""
			if i < len(state.Images) {
				image = state.Images[i]
			}
			cards = append(cards, r.cardRender.Render(state.Products[i], image, cardWidth, i == state.SelectedIndex, state.ShowDescriptions))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	if rows > visibleRows {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("rows %d-%d of %d", start+1, end, rows)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
