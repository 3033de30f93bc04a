package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"shopgrid/internal/filter"
	"shopgrid/internal/ui/input/types"
)

// OptionSelectMode cycles through a fixed list of options, applying each one
// as it is highlighted. Enter keeps the highlighted option; Esc restores the
// option that was active on entry.
type OptionSelectMode struct {
	name          string
	options       func(ctx types.Context) []string
	current       func(ctx types.Context) int
	apply         func(ctx types.Context, index int) types.Action
	index         int
	originalIndex int
}

// NewCategoryMode selects the category filter from the session's category options
func NewCategoryMode() *OptionSelectMode {
	return &OptionSelectMode{
		name:    "category",
		options: func(ctx types.Context) []string { return ctx.CategoryOptions() },
		current: func(ctx types.Context) int {
			for i, opt := range ctx.CategoryOptions() {
				if opt == ctx.Category() {
					return i
				}
			}
			return 0
		},
		apply: func(ctx types.Context, index int) types.Action {
			opts := ctx.CategoryOptions()
			if index < 0 || index >= len(opts) {
				return nil
			}
			return types.FilterAction{Action: filter.SetCategory{Value: opts[index]}}
		},
	}
}

// NewPriceSortMode selects one of the three price orderings
func NewPriceSortMode() *OptionSelectMode {
	return &OptionSelectMode{
		name:    "price",
		options: func(types.Context) []string { return PriceSortLabels() },
		current: func(ctx types.Context) int {
			for i, opt := range filter.PriceSortOptions {
				if opt.Sort == ctx.PriceSort() {
					return i
				}
			}
			return 0
		},
		apply: func(ctx types.Context, index int) types.Action {
			if index < 0 || index >= len(filter.PriceSortOptions) {
				return nil
			}
			return types.FilterAction{Action: filter.SetPriceSort{Value: filter.PriceSortOptions[index].Sort}}
		},
	}
}

// PriceSortLabels returns the display labels of the price orderings
func PriceSortLabels() []string {
	labels := make([]string, 0, len(filter.PriceSortOptions))
	for _, opt := range filter.PriceSortOptions {
		labels = append(labels, opt.Label)
	}
	return labels
}

func (m *OptionSelectMode) Name() string {
	return m.name
}

// Options returns the options for display
func (m *OptionSelectMode) Options(ctx types.Context) []string {
	return m.options(ctx)
}

func (m *OptionSelectMode) Enter(ctx types.Context) []types.Action {
	m.index = m.current(ctx)
	m.originalIndex = m.index
	return []types.Action{types.UpdateOptionIndexAction{Index: m.index}}
}

func (m *OptionSelectMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *OptionSelectMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc", "q":
		actions := []types.Action{}
		if a := m.apply(ctx, m.originalIndex); a != nil {
			actions = append(actions, a)
		}
		return append(actions, types.ChangeModeAction{Mode: types.ModeNormal}), true

	case "enter":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true

	case "up", "left", "k", "h":
		return m.move(ctx, -1), true

	case "down", "right", "j", "l", "tab":
		return m.move(ctx, 1), true
	}

	return nil, false
}

func (m *OptionSelectMode) move(ctx types.Context, delta int) []types.Action {
	n := len(m.options(ctx))
	if n == 0 {
		return nil
	}
	m.index = ((m.index+delta)%n + n) % n
	actions := []types.Action{types.UpdateOptionIndexAction{Index: m.index}}
	if a := m.apply(ctx, m.index); a != nil {
		actions = append(actions, a)
	}
	return actions
}

// GetCurrentIndex returns the highlighted option index
func (m *OptionSelectMode) GetCurrentIndex() int {
	return m.index
}
