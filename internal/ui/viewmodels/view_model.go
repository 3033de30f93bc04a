package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"shopgrid/internal/cart"
	"shopgrid/internal/catalog"
	"shopgrid/internal/domain"
	"shopgrid/internal/filter"
	inputtypes "shopgrid/internal/ui/input/types"
	"shopgrid/internal/ui/state"
	"shopgrid/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	cart             cart.Cart
	images           catalog.ImageResolver
	width            int
	height           int
	help             help.Model
	keys             help.KeyMap
	filter           filter.State
	listing          []domain.Product
	totalProducts    int
	options          []string
	helpContent      string
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, c cart.Cart, images catalog.ImageResolver, textInput textinput.Model) *ViewModel {
	return &ViewModel{
		state:            appState,
		cart:             c,
		images:           images,
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetHelp sets the help model and the key map it renders
func (vm *ViewModel) SetHelp(helpModel help.Model, keys help.KeyMap) {
	vm.help = helpModel
	vm.keys = keys
}

// SetHelpContent sets the body of the help popup
func (vm *ViewModel) SetHelpContent(content string) {
	vm.helpContent = content
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode inputtypes.Mode, prompt string, options []string) {
	vm.inputTransformer.SetMode(mode, prompt)
	vm.options = options
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.inputTransformer.textInput = textInput
}

// SetListing sets the filter state and the products it projects to
func (vm *ViewModel) SetListing(fs filter.State, listing []domain.Product, totalProducts int) {
	vm.filter = fs
	vm.listing = listing
	vm.totalProducts = totalProducts
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	images := make([]string, len(vm.listing))
	for i, p := range vm.listing {
		images[i] = vm.images.URL(p)
	}

	var shortHelp string
	if vm.keys != nil {
		shortHelp = vm.help.View(vm.keys)
	}

	vs := views.ViewState{
		Width:            vm.width,
		Height:           vm.height,
		Products:         vm.listing,
		Images:           images,
		TotalProducts:    vm.totalProducts,
		SelectedIndex:    vm.state.SelectedIndex,
		ViewportOffset:   vm.state.ViewportOffset,
		ViewportRows:     vm.state.ViewportRows,
		Columns:          vm.state.Columns,
		ShowDescriptions: vm.state.ShowDescriptions,
		SearchTerm:       vm.filter.SearchTerm,
		Category:         vm.filter.Category,
		PriceSortLabel:   vm.filter.PriceSort.Label(),
		IsFiltered:       vm.filter.IsFiltered(),
		InputMode:        vm.inputTransformer.GetInputModeString(),
		InputPrompt:      vm.inputTransformer.GetPrompt(),
		TextInput:        vm.inputTransformer.GetInputText(),
		Options:          vm.options,
		OptionIndex:      vm.state.OptionIndex,
		ShowCart:         vm.state.ShowCart,
		ShowHelp:         vm.state.ShowHelp,
		HelpContent:      vm.helpContent,
		ShowInfo:         vm.state.ShowInfo,
		InfoContent:      vm.state.InfoContent,
		StatusMessage:    vm.state.StatusMessage,
		ShortHelp:        shortHelp,
	}
	if vm.cart != nil {
		vs.CartItems = vm.cart.Items()
		vs.CartCount = vm.cart.Count()
		vs.CartTotal = vm.cart.Total()
	}
	return vs
}
