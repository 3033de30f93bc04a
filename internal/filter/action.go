package filter

// Action is a user intent consumed by Reduce. The set of actions is closed:
// only the types in this file implement it.
type Action interface {
	isAction()
}

// SetPriceSort replaces the price ordering
type SetPriceSort struct {
	Value PriceSort
}

// SetCategory replaces the selected category
type SetCategory struct {
	Value string
}

// SetCategoryOptions replaces the selectable categories
type SetCategoryOptions struct {
	Options []string
}

// SetSearchTerm replaces the raw search text
type SetSearchTerm struct {
	Value string
}

func (SetPriceSort) isAction()       {}
func (SetCategory) isAction()        {}
func (SetCategoryOptions) isAction() {}
func (SetSearchTerm) isAction()      {}

// Reduce returns the state that results from applying action to state.
// It never modifies its arguments. A nil action returns state unchanged.
func Reduce(state State, action Action) State {
	next := state.clone()
	switch a := action.(type) {
	case SetPriceSort:
		next.PriceSort = a.Value
	case SetCategory:
		next.Category = a.Value
	case SetCategoryOptions:
		next.CategoryOptions = append([]string{}, a.Options...)
	case SetSearchTerm:
		next.SearchTerm = a.Value
	}
	return next
}
