package filter

import "shopgrid/internal/domain"

// CategoryOptions returns "All" followed by the distinct categories of
// products in order of first appearance
func CategoryOptions(products []domain.Product) []string {
	options := []string{All}
	seen := make(map[string]bool, len(products))
	for _, p := range products {
		if seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		options = append(options, p.Category)
	}
	return options
}

// Store is the single mutable cell holding a session's filter state.
// It is owned by one UI model and is not safe for concurrent use.
type Store struct {
	state State
}

// NewStore creates a store for the given catalog and populates the
// category options from it
func NewStore(products []domain.Product) *Store {
	s := &Store{state: InitialState()}
	s.Dispatch(SetCategoryOptions{Options: CategoryOptions(products)})
	return s
}

// Dispatch applies one action and returns the resulting state
func (s *Store) Dispatch(action Action) State {
	s.state = Reduce(s.state, action)
	return s.State()
}

// State returns a copy of the current state
func (s *Store) State() State {
	return s.state.clone()
}
