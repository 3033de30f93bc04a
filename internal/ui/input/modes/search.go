package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"shopgrid/internal/filter"
	"shopgrid/internal/ui/input/types"
)

func filterSearch(term string) filter.Action {
	return filter.SetSearchTerm{Value: term}
}

// SearchMode edits the search term. Every keystroke re-filters the listing;
// Esc puts back the term that was active when the mode was entered.
type SearchMode struct {
	TextInputMode
	original string
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search: ", ti),
	}
}

func (m *SearchMode) Enter(ctx types.Context) []types.Action {
	actions := m.TextInputMode.Enter(ctx)
	m.original = ctx.SearchTerm()
	if m.textInput != nil {
		m.textInput.Placeholder = "Search by name..."
		m.textInput.SetValue(m.original)
		m.textInput.CursorEnd()
	}
	return actions
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.String() == "esc" {
		return []types.Action{
			types.FilterAction{Action: filterSearch(m.original)},
			types.CancelTextAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
