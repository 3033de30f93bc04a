package handlers

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"shopgrid/internal/eventbus"
	"shopgrid/internal/ui/state"
)

// EventHandler applies domain events delivered from the bus to the UI state
type EventHandler struct {
	state     *state.AppState
	cartLines func() int
	log       *zap.Logger
}

// NewEventHandler creates a new event handler. cartLines reports the current number of cart lines.
func NewEventHandler(appState *state.AppState, cartLines func() int, logger *zap.Logger) *EventHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventHandler{
		state:     appState,
		cartLines: cartLines,
		log:       logger,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.CatalogLoadedEvent:
		h.state.StatusMessage = fmt.Sprintf("Loaded %d products from %s", e.Products, e.Source)

	case eventbus.CartItemRemovedEvent, eventbus.CartClearedEvent:
		// Keep the cart cursor on an existing line
		if h.cartLines != nil {
			if n := h.cartLines(); h.state.OptionIndex >= n {
				h.state.OptionIndex = max(n-1, 0)
			}
		}

	case eventbus.ErrorEvent:
		h.log.Warn("error event", zap.String("message", e.Message), zap.Error(e.Err))
		h.state.StatusMessage = fmt.Sprintf("Error: %s", e.Message)
	}

	return nil
}
