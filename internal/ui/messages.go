package ui

import (
	"shopgrid/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// clearStatusMsg clears the status message if it is still the one numbered seq
type clearStatusMsg struct {
	seq int
}

// detailsPagerMsg contains the result of showing product details in the pager
type detailsPagerMsg struct {
	productID string
	content   string
	err       error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
