package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"shopgrid/internal/cart"
	"shopgrid/internal/catalog"
	"shopgrid/internal/config"
	"shopgrid/internal/domain"
	"shopgrid/internal/eventbus"
	"shopgrid/internal/filter"
	"shopgrid/internal/ui/handlers"
	"shopgrid/internal/ui/input"
	"shopgrid/internal/ui/input/modes"
	inputtypes "shopgrid/internal/ui/input/types"
	"shopgrid/internal/ui/logic"
	"shopgrid/internal/ui/state"
	"shopgrid/internal/ui/viewmodels"
	"shopgrid/internal/ui/views"
)

// How long transient status messages stay on screen
const statusTimeout = 3 * time.Second

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	log    *zap.Logger
	state  *state.AppState // centralized state

	// UI-specific state not in AppState
	width       int
	height      int
	help        help.Model
	inPagerMode bool // tracks if we're currently in pager mode
	statusSeq   int  // numbers status messages so stale clear timers are ignored

	// Listing
	products []domain.Product // catalog snapshot, read-only
	store    *filter.Store
	listing  []domain.Product // projection of products under the store's state
	cart     cart.Cart
	images   catalog.ImageResolver
	price    views.PriceFormatter

	// Handlers
	navigator    *logic.GridNavigator   // grid movement and viewport
	renderer     *views.Renderer        // view renderer
	helpRenderer *HelpRenderer          // help popup content
	eventHandler *handlers.EventHandler // event processing handler
	viewModel    *viewmodels.ViewModel  // view model for rendering
	inputHandler *input.Handler         // input handling
	pager        *PagerOps              // product details pager
}

// NewModel creates a new UI model over the catalog's products. c is the cart the
// add-to-cart trigger writes to; bus and logger may be nil.
func NewModel(bus eventbus.EventBus, cfg *config.Config, products []domain.Product, c cart.Cart, logger *zap.Logger) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if c == nil {
		c = cart.NewMemoryCart(bus, logger)
	}

	appState := state.NewAppState()
	appState.Columns = cfg.UISettings.Columns
	appState.ShowDescriptions = cfg.UISettings.ShowDescriptions

	m := &Model{
		bus:          bus,
		config:       cfg,
		log:          logger.Named("ui"),
		state:        appState,
		help:         help.New(),
		products:     products,
		store:        filter.NewStore(products),
		cart:         c,
		images:       catalog.NewImageResolver(cfg.ImageBaseURL),
		price:        views.NewPriceFormatter(cfg.UISettings.CurrencySymbol),
		navigator:    logic.NewGridNavigator(appState.Columns),
		renderer:     views.NewRenderer(cfg.UISettings.CurrencySymbol),
		helpRenderer: NewHelpRenderer(),
		inputHandler: input.New(),
		pager:        NewPagerOps(nil),
	}

	m.eventHandler = handlers.NewEventHandler(appState, func() int { return len(m.cart.Items()) }, m.log)
	// The view model gets the live text input from the handler while a text mode is active
	placeholderTextInput := textinput.New()
	m.viewModel = viewmodels.NewViewModel(appState, c, m.images, placeholderTextInput)
	m.refreshListing()

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportRows()

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		// Handle help/info popups first
		if m.state.ShowHelp {
			switch msg.String() {
			case "esc", "?", "q":
				m.state.ShowHelp = false
				m.state.HelpScroll = 0
			case "up", "k":
				m.state.HelpScroll = max(m.state.HelpScroll-1, 0)
			case "down", "j":
				m.state.HelpScroll++
			}
			return m, nil
		}

		if m.state.ShowInfo {
			switch msg.String() {
			case "esc", "i", "q", "enter":
				m.state.ShowInfo = false
				m.state.InfoContent = ""
			}
			return m, nil
		}

		actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	default:
		// Cursor blink and other text input messages
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}

	mode := m.inputHandler.CurrentMode()
	var options []string
	switch mode {
	case inputtypes.ModeCategory:
		options = m.store.State().CategoryOptions
	case inputtypes.ModePriceSort:
		options = modes.PriceSortLabels()
	}

	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetInputMode(mode, m.inputHandler.Prompt(), options)
	if ti := m.inputHandler.TextInput(); ti != nil {
		m.viewModel.UpdateTextInput(*ti)
	}
	m.viewModel.SetHelp(m.help, keysForMode(mode))
	m.viewModel.SetListing(m.store.State(), m.listing, len(m.products))
	if m.state.ShowHelp {
		m.viewModel.SetHelpContent(m.helpRenderer.renderHelpContent(m.height, m.state.HelpScroll))
	}

	return m.renderer.Render(m.viewModel.BuildViewState())
}

// Listing returns the products currently shown, in display order
func (m *Model) Listing() []domain.Product {
	return append([]domain.Product(nil), m.listing...)
}

// FilterState returns a copy of the current filter state
func (m *Model) FilterState() filter.State {
	return m.store.State()
}

// SelectedProduct returns the product under the cursor
func (m *Model) SelectedProduct() (domain.Product, bool) {
	if m.state.SelectedIndex < 0 || m.state.SelectedIndex >= len(m.listing) {
		return domain.Product{}, false
	}
	return m.listing[m.state.SelectedIndex], true
}

func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{
		State:     m.state,
		Filter:    m.store.State(),
		Visible:   len(m.listing),
		CartLineN: len(m.cart.Items()),
	}
}

// refreshListing re-derives the listing from the catalog and the filter state
func (m *Model) refreshListing() {
	m.listing = filter.Project(m.products, m.store.State())
	m.state.ClampSelection(len(m.listing))
	m.ensureSelectedVisible()
}

// applyFilter dispatches a filter action and re-derives the listing
func (m *Model) applyFilter(action filter.Action) {
	before := m.store.State()
	after := m.store.Dispatch(action)
	if sameFilter(before, after) {
		return
	}

	m.state.ResetSelection()
	m.refreshListing()

	m.log.Debug("filter applied",
		zap.String("search", after.SearchTerm),
		zap.String("category", after.Category),
		zap.Stringer("price_sort", after.PriceSort),
		zap.Int("matches", len(m.listing)))
	if m.bus != nil {
		m.bus.Publish(eventbus.FilterAppliedEvent{
			SearchTerm: after.SearchTerm,
			Category:   after.Category,
			PriceSort:  after.PriceSort.String(),
			Matches:    len(m.listing),
		})
	}
}

func sameFilter(a, b filter.State) bool {
	return a.SearchTerm == b.SearchTerm && a.Category == b.Category && a.PriceSort == b.PriceSort
}

// setStatus shows a transient status message and returns the command that clears it
func (m *Model) setStatus(format string, args ...any) tea.Cmd {
	m.state.StatusMessage = fmt.Sprintf(format, args...)
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

// updateViewportRows calculates how many rows of cards fit on screen
func (m *Model) updateViewportRows() {
	// Padding, title, filter bar, input line, scroll line, status and key help
	reservedLines := 11

	// Name, category, price, image and the add hint, plus the border
	cardHeight := 7
	if m.state.ShowDescriptions {
		cardHeight += 3
	}

	m.state.ViewportRows = max((m.height-reservedLines)/cardHeight, 1)
	m.ensureSelectedVisible()
}

// ensureSelectedVisible scrolls the grid so the selected card is on screen
func (m *Model) ensureSelectedVisible() {
	m.state.ViewportOffset = m.navigator.EnsureVisible(m.state.SelectedIndex, m.state.ViewportOffset, m.state.ViewportRows)
	if rows := m.navigator.Rows(len(m.listing)); m.state.ViewportOffset > max(rows-m.state.ViewportRows, 0) {
		m.state.ViewportOffset = max(rows-m.state.ViewportRows, 0)
	}
}

// publishConfig announces changed UI preferences so they can be saved
func (m *Model) publishConfig() {
	m.config.UISettings.Columns = m.state.Columns
	m.config.UISettings.ShowDescriptions = m.state.ShowDescriptions
	if m.bus != nil {
		m.bus.Publish(eventbus.ConfigChangedEvent{
			Columns:          m.state.Columns,
			ShowDescriptions: m.state.ShowDescriptions,
		})
	}
}

// buildProductDetails renders the details page of p
func (m *Model) buildProductDetails(p domain.Product) string {
	var info strings.Builder

	info.WriteString(lipgloss.NewStyle().Bold(true).Render(p.Name))
	info.WriteString("\n\n")

	info.WriteString(fmt.Sprintf("ID: %s\n", p.ID))
	info.WriteString(fmt.Sprintf("Category: %s\n", p.Category))
	info.WriteString("Price: ")
	info.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Render(m.price.Format(p.Price)))
	info.WriteString("\n")
	if img := m.images.URL(p); img != "" {
		info.WriteString(fmt.Sprintf("Image: %s\n", img))
	}

	if p.Description != "" {
		info.WriteString("\n")
		info.WriteString(lipgloss.NewStyle().Bold(true).Render("Description:"))
		info.WriteString("\n")
		info.WriteString(p.Description)
		info.WriteString("\n")
	}

	for _, item := range m.cart.Items() {
		if item.Product.ID == p.ID {
			info.WriteString(fmt.Sprintf("\nIn cart: %d (%s)\n", item.Quantity, m.price.Format(item.Subtotal())))
			break
		}
	}

	return info.String()
}

// fetchDetailsPager returns a command that shows content in the ov pager
func (m *Model) fetchDetailsPager(productID, content string) tea.Cmd {
	program := m.pager.program
	return func() tea.Msg {
		// Stop rendering while ov owns the terminal
		program.Send(pauseRenderingMsg{})

		err := m.pager.ShowInPager(content)

		program.Send(resumeRenderingMsg{})

		return detailsPagerMsg{productID: productID, content: content, err: err}
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	m.log.Debug("processAction", zap.String("action", action.Type()))
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		pageRows := max(m.state.ViewportRows-1, 1)
		m.state.SelectedIndex = m.navigator.Move(m.state.SelectedIndex, len(m.listing), a.Direction, pageRows)
		m.ensureSelectedVisible()

	case inputtypes.ChangeModeAction:
		m.state.ShowCart = a.Mode == inputtypes.ModeCart

	case inputtypes.UpdateTextAction:
		if m.inputHandler.CurrentMode() == inputtypes.ModeSearch {
			m.applyFilter(filter.SetSearchTerm{Value: a.Text})
		}

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeSearch {
			// Typing already filtered; submitting only leaves the field
			m.applyFilter(filter.SetSearchTerm{Value: a.Text})
		}

	case inputtypes.CancelTextAction:
		// The search mode restores the previous term itself

	case inputtypes.FilterAction:
		m.applyFilter(a.Action)

	case inputtypes.ResetFiltersAction:
		if !m.store.State().IsFiltered() {
			return nil
		}
		m.applyFilter(filter.SetSearchTerm{Value: ""})
		m.applyFilter(filter.SetCategory{Value: filter.All})
		m.applyFilter(filter.SetPriceSort{Value: filter.PriceSortNone})
		return m.setStatus("Filters cleared")

	case inputtypes.UpdateOptionIndexAction:
		m.state.OptionIndex = a.Index

	case inputtypes.AddToCartAction:
		index := a.Index
		if index < 0 {
			index = m.state.SelectedIndex
		}
		if index >= len(m.listing) {
			return nil
		}
		product := m.listing[index]
		item := m.cart.Add(product)
		if item.Quantity > 1 {
			return m.setStatus("Added %s to cart (%d in cart)", product.Name, item.Quantity)
		}
		return m.setStatus("Added %s to cart", product.Name)

	case inputtypes.RemoveFromCartAction:
		items := m.cart.Items()
		if a.Index < 0 || a.Index >= len(items) {
			return nil
		}
		removed := items[a.Index].Product
		if m.cart.Remove(removed.ID) {
			return m.setStatus("Removed %s from cart", removed.Name)
		}

	case inputtypes.ClearCartAction:
		if m.cart.Count() == 0 {
			return nil
		}
		m.cart.Clear()
		m.state.OptionIndex = 0
		return m.setStatus("Cart cleared")

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp
		m.state.HelpScroll = 0

	case inputtypes.ToggleDescriptionsAction:
		m.state.ShowDescriptions = !m.state.ShowDescriptions
		m.updateViewportRows()
		m.publishConfig()
		if m.state.ShowDescriptions {
			return m.setStatus("Descriptions shown")
		}
		return m.setStatus("Descriptions hidden")

	case inputtypes.ResizeGridAction:
		columns := min(max(m.state.Columns+a.Delta, config.MinColumns), config.MaxColumns)
		if columns == m.state.Columns {
			return nil
		}
		m.state.Columns = columns
		m.navigator.SetColumns(columns)
		m.ensureSelectedVisible()
		m.publishConfig()
		return m.setStatus("%d columns", columns)

	case inputtypes.ShowDetailsAction:
		product, ok := m.SelectedProduct()
		if !ok {
			return nil
		}
		content := m.buildProductDetails(product)
		if m.pager.Available() {
			return m.fetchDetailsPager(product.ID, content)
		}
		m.state.ShowInfo = true
		m.state.InfoContent = content

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		before := m.state.StatusMessage
		cmd := m.eventHandler.HandleEvent(msg.Event)
		if m.state.StatusMessage != before {
			return m, tea.Batch(cmd, m.setStatus("%s", m.state.StatusMessage))
		}
		return m, cmd

	case detailsPagerMsg:
		if msg.err != nil {
			// Pager failed, fall back to the info popup
			m.log.Warn("details pager failed", zap.String("product", msg.productID), zap.Error(msg.err))
			m.state.ShowInfo = true
			m.state.InfoContent = msg.content
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.state.StatusMessage = ""
		}
		return m, nil

	default:
		return m, nil
	}
}
