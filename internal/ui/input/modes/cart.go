package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"shopgrid/internal/ui/input/types"
)

// CartMode browses the cart panel
type CartMode struct {
	index int
}

func NewCartMode() *CartMode {
	return &CartMode{}
}

func (m *CartMode) Name() string {
	return "cart"
}

func (m *CartMode) Enter(ctx types.Context) []types.Action {
	m.index = 0
	return []types.Action{types.UpdateOptionIndexAction{Index: m.index}}
}

func (m *CartMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *CartMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	lines := ctx.CartLines()
	if m.index >= lines {
		m.index = max(lines-1, 0)
	}

	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc", "b", "q":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true

	case "up", "k":
		if m.index > 0 {
			m.index--
		}
		return []types.Action{types.UpdateOptionIndexAction{Index: m.index}}, true

	case "down", "j":
		if m.index < lines-1 {
			m.index++
		}
		return []types.Action{types.UpdateOptionIndexAction{Index: m.index}}, true

	case "x", "delete", "backspace":
		if lines == 0 {
			return nil, true
		}
		removed := m.index
		if m.index == lines-1 && m.index > 0 {
			m.index--
		}
		return []types.Action{
			types.RemoveFromCartAction{Index: removed},
			types.UpdateOptionIndexAction{Index: m.index},
		}, true

	case "C":
		m.index = 0
		return []types.Action{
			types.ClearCartAction{},
			types.UpdateOptionIndexAction{Index: 0},
		}, true
	}

	return nil, false
}
