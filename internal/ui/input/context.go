package input

import (
	"shopgrid/internal/filter"
	"shopgrid/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State     *state.AppState
	Filter    filter.State
	Visible   int
	CartLineN int
}

// CurrentIndex returns the selected card index
func (c *ModelContext) CurrentIndex() int {
	return c.State.SelectedIndex
}

// TotalItems returns the number of products currently listed
func (c *ModelContext) TotalItems() int {
	return c.Visible
}

func (c *ModelContext) SearchTerm() string {
	return c.Filter.SearchTerm
}

func (c *ModelContext) Category() string {
	return c.Filter.Category
}

func (c *ModelContext) CategoryOptions() []string {
	return c.Filter.CategoryOptions
}

func (c *ModelContext) PriceSort() filter.PriceSort {
	return c.Filter.PriceSort
}

// CartLines returns the number of lines in the cart
func (c *ModelContext) CartLines() int {
	return c.CartLineN
}
