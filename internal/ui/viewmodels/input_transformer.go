package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"

	inputtypes "shopgrid/internal/ui/input/types"
)

// InputTransformer turns the active input mode into what the view shows
type InputTransformer struct {
	mode      inputtypes.Mode
	prompt    string
	textInput textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer(textInput textinput.Model) *InputTransformer {
	return &InputTransformer{
		mode:      inputtypes.ModeNormal,
		textInput: textInput,
	}
}

// SetMode sets the current input mode and its prompt
func (it *InputTransformer) SetMode(mode inputtypes.Mode, prompt string) {
	it.mode = mode
	it.prompt = prompt
}

// GetPrompt returns the label shown before the text field
func (it *InputTransformer) GetPrompt() string {
	if it.mode != inputtypes.ModeSearch {
		return ""
	}
	return it.prompt
}

// GetInputText returns the rendered text field, or "" outside text modes
func (it *InputTransformer) GetInputText() string {
	if it.mode != inputtypes.ModeSearch {
		return ""
	}
	return it.textInput.View()
}

// GetInputModeString returns the string representation of the input mode
func (it *InputTransformer) GetInputModeString() string {
	switch it.mode {
	case inputtypes.ModeSearch:
		return "search"
	case inputtypes.ModeCategory:
		return "category"
	case inputtypes.ModePriceSort:
		return "price"
	case inputtypes.ModeCart:
		return "cart"
	default:
		return ""
	}
}
