// Package filter holds the product listing filter state, the actions that
// change it, and the projection of a catalog through it.
package filter

import "strings"

// All is the sentinel category and price-sort label meaning "no filter on this axis"
const All = "All"

// PriceSort is the ordering applied to the listing
type PriceSort int

const (
	PriceSortNone PriceSort = iota
	PriceSortHighToLow
	PriceSortLowToHigh
)

// PriceSortOptions is the fixed set of price orderings offered to the user, in display order
var PriceSortOptions = []struct {
	Sort  PriceSort
	Label string
}{
	{PriceSortNone, All},
	{PriceSortHighToLow, "Highest to Lowest"},
	{PriceSortLowToHigh, "Lowest to Highest"},
}

// String returns the stable key of the sort mode
func (p PriceSort) String() string {
	switch p {
	case PriceSortHighToLow:
		return "HighToLow"
	case PriceSortLowToHigh:
		return "LowToHigh"
	default:
		return All
	}
}

// Label returns the human readable name of the sort mode
func (p PriceSort) Label() string {
	for _, opt := range PriceSortOptions {
		if opt.Sort == p {
			return opt.Label
		}
	}
	return All
}

// ParsePriceSort maps user input to a sort mode. Unknown input means no ordering.
func ParsePriceSort(s string) PriceSort {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hightolow", "high", "desc", "h":
		return PriceSortHighToLow
	case "lowtohigh", "low", "asc", "l":
		return PriceSortLowToHigh
	default:
		return PriceSortNone
	}
}

// State is the current filter criteria of a listing session
type State struct {
	PriceSort       PriceSort
	Category        string
	CategoryOptions []string
	SearchTerm      string
}

// InitialState returns the state a session starts with
func InitialState() State {
	return State{
		PriceSort:       PriceSortNone,
		Category:        All,
		CategoryOptions: []string{},
		SearchTerm:      "",
	}
}

// IsFiltered reports whether any axis narrows or reorders the catalog
func (s State) IsFiltered() bool {
	return strings.TrimSpace(s.SearchTerm) != "" || s.Category != All || s.PriceSort != PriceSortNone
}

func (s State) clone() State {
	out := s
	out.CategoryOptions = append([]string(nil), s.CategoryOptions...)
	if out.CategoryOptions == nil {
		out.CategoryOptions = []string{}
	}
	return out
}
