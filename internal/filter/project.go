package filter

import (
	"slices"
	"strings"

	"shopgrid/internal/domain"
)

// Project returns the products to display for state: search filter, then
// category filter, then a stable price ordering. The input is not modified.
func Project(products []domain.Product, state State) []domain.Product {
	out := make([]domain.Product, 0, len(products))

	term := strings.ToLower(strings.TrimSpace(state.SearchTerm))
	for _, p := range products {
		if term != "" && !strings.Contains(strings.ToLower(p.Name), term) {
			continue
		}
		if state.Category != All && p.Category != state.Category {
			continue
		}
		out = append(out, p)
	}

	switch state.PriceSort {
	case PriceSortHighToLow:
		slices.SortStableFunc(out, func(a, b domain.Product) int {
			return comparePrice(b.Price, a.Price)
		})
	case PriceSortLowToHigh:
		slices.SortStableFunc(out, func(a, b domain.Product) int {
			return comparePrice(a.Price, b.Price)
		})
	}

	return out
}

func comparePrice(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
