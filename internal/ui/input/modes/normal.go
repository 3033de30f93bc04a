package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"shopgrid/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyLeft:
		return []types.Action{types.NavigateAction{Direction: "left"}}, true

	case tea.KeyRight:
		return []types.Action{types.NavigateAction{Direction: "right"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyEnter, tea.KeySpace:
		if ctx.TotalItems() == 0 {
			return nil, false
		}
		return []types.Action{types.AddToCartAction{Index: -1}}, true

	case tea.KeyEsc:
		// Esc clears the search term, the most common thing to back out of
		if ctx.SearchTerm() != "" {
			return []types.Action{types.FilterAction{Action: filterSearch("")}}, true
		}
		return nil, false
	}

	// Handle string keys
	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case "h":
		return []types.Action{types.NavigateAction{Direction: "left"}}, true
	case "l":
		return []types.Action{types.NavigateAction{Direction: "right"}}, true
	case "g":
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case "G":
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true
	case "c":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeCategory}}, true
	case "s":
		return []types.Action{types.ChangeModeAction{Mode: types.ModePriceSort}}, true
	case "r":
		return []types.Action{types.ResetFiltersAction{}}, true

	case "a":
		if ctx.TotalItems() == 0 {
			return nil, false
		}
		return []types.Action{types.AddToCartAction{Index: -1}}, true
	case "b":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeCart}}, true
	case "i":
		if ctx.TotalItems() == 0 {
			return nil, false
		}
		return []types.Action{types.ShowDetailsAction{}}, true

	case "d":
		return []types.Action{types.ToggleDescriptionsAction{}}, true
	case "+", "=":
		return []types.Action{types.ResizeGridAction{Delta: 1}}, true
	case "-":
		return []types.Action{types.ResizeGridAction{Delta: -1}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}
