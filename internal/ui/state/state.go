package state

// AppState contains the UI state that is not part of the filter store
type AppState struct {
	// Selection and scrolling
	SelectedIndex  int // index into the projected listing
	ViewportOffset int // first visible grid row
	ViewportRows   int // number of grid rows that fit on screen

	// Layout preferences
	Columns          int
	ShowDescriptions bool

	// Popups and panels
	ShowHelp    bool
	HelpScroll  int
	ShowInfo    bool
	InfoContent string
	ShowCart    bool

	// Highlighted entry in the open option list or cart panel
	OptionIndex int

	StatusMessage string
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		ViewportRows:     2,
		Columns:          3,
		ShowDescriptions: true,
	}
}

// ClampSelection keeps the selected index inside a listing of total items
func (s *AppState) ClampSelection(total int) {
	if s.SelectedIndex >= total {
		s.SelectedIndex = total - 1
	}
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
}

// ResetSelection moves the selection and scroll position back to the top
func (s *AppState) ResetSelection() {
	s.SelectedIndex = 0
	s.ViewportOffset = 0
}
