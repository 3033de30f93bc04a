package ui

import (
	"github.com/charmbracelet/bubbles/key"

	inputtypes "shopgrid/internal/ui/input/types"
)

// bindings is a flat help.KeyMap
type bindings []key.Binding

func (b bindings) ShortHelp() []key.Binding {
	return b
}

func (b bindings) FullHelp() [][]key.Binding {
	return [][]key.Binding{b}
}

var (
	keyNavigate = key.NewBinding(key.WithKeys("up", "down", "left", "right", "h", "j", "k", "l"), key.WithHelp("←↑↓→", "move"))
	keyAdd      = key.NewBinding(key.WithKeys("enter", " ", "a"), key.WithHelp("enter", "add to cart"))
	keySearch   = key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search"))
	keyCategory = key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "category"))
	keyPrice    = key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "price"))
	keyReset    = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset"))
	keyCart     = key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "cart"))
	keyDetails  = key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "details"))
	keyHelp     = key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help"))
	keyQuit     = key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit"))

	keyAccept = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept"))
	keyCancel = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel"))
	keyCycle  = key.NewBinding(key.WithKeys("left", "right", "tab"), key.WithHelp("←/→", "choose"))
	keyRemove = key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove"))
	keyClear  = key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear cart"))
	keyClose  = key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "close"))
)

// keysForMode returns the bindings shown in the short help line
func keysForMode(mode inputtypes.Mode) bindings {
	switch mode {
	case inputtypes.ModeSearch:
		return bindings{keyAccept, keyCancel}
	case inputtypes.ModeCategory, inputtypes.ModePriceSort:
		return bindings{keyCycle, keyAccept, keyCancel}
	case inputtypes.ModeCart:
		return bindings{keyNavigate, keyRemove, keyClear, keyClose}
	default:
		return bindings{keyNavigate, keyAdd, keySearch, keyCategory, keyPrice, keyReset, keyCart, keyDetails, keyHelp, keyQuit}
	}
}
