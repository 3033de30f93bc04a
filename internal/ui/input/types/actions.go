package types

import "shopgrid/internal/filter"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "left", "right", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// FilterAction carries a filter store action to the model
type FilterAction struct {
	Action filter.Action
}

func (a FilterAction) Type() string { return "filter" }

type ResetFiltersAction struct{}

func (a ResetFiltersAction) Type() string { return "reset_filters" }

// Option list actions (category, price sort, cart lines)
type UpdateOptionIndexAction struct {
	Index int
}

func (a UpdateOptionIndexAction) Type() string { return "update_option_index" }

// Cart actions
type AddToCartAction struct {
	Index int // -1 for current
}

func (a AddToCartAction) Type() string { return "add_to_cart" }

type RemoveFromCartAction struct {
	Index int // cart line index
}

func (a RemoveFromCartAction) Type() string { return "remove_from_cart" }

type ClearCartAction struct{}

func (a ClearCartAction) Type() string { return "clear_cart" }

// Display actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type ToggleDescriptionsAction struct{}

func (a ToggleDescriptionsAction) Type() string { return "toggle_descriptions" }

type ResizeGridAction struct {
	Delta int // change in column count
}

func (a ResizeGridAction) Type() string { return "resize_grid" }

type ShowDetailsAction struct{}

func (a ShowDetailsAction) Type() string { return "show_details" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
