package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"shopgrid/internal/cart"
	"shopgrid/internal/config"
	"shopgrid/internal/domain"
	"shopgrid/internal/eventbus"
	"shopgrid/internal/filter"
	inputtypes "shopgrid/internal/ui/input/types"
)

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: "1", Name: "Red Shirt", Category: "Tops", Price: 20, Description: "Soft cotton", Image: "shirt.jpg"},
		{ID: "2", Name: "Blue Shoe", Category: "Shoes", Price: 50},
		{ID: "3", Name: "red Hat", Category: "Hats", Price: 10},
		{ID: "4", Name: "Green Shoe", Category: "Shoes", Price: 50},
	}
}

func newTestModel(t *testing.T, bus eventbus.EventBus) (*Model, *cart.MemoryCart) {
	t.Helper()
	logger := zaptest.NewLogger(t)
	c := cart.NewMemoryCart(bus, logger)
	m := NewModel(bus, config.DefaultConfig(), testProducts(), c, logger)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, c
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m.Update(msg)
	}
}

func listingIDs(m *Model) []string {
	ids := []string{}
	for _, p := range m.Listing() {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestModelStartsWithFullCatalog(t *testing.T) {
	m, _ := newTestModel(t, nil)

	assert.Equal(t, []string{"1", "2", "3", "4"}, listingIDs(m))
	fs := m.FilterState()
	assert.Equal(t, []string{filter.All, "Tops", "Shoes", "Hats"}, fs.CategoryOptions)
	assert.Equal(t, filter.All, fs.Category)
	assert.Equal(t, filter.PriceSortNone, fs.PriceSort)
	assert.Empty(t, fs.SearchTerm)
}

func TestModelSearchFiltersWhileTyping(t *testing.T) {
	m, _ := newTestModel(t, nil)

	press(m, "/", "r", "e", "d")
	assert.Equal(t, inputtypes.ModeSearch, m.inputHandler.CurrentMode())
	assert.Equal(t, "red", m.FilterState().SearchTerm)
	assert.Equal(t, []string{"1", "3"}, listingIDs(m))

	press(m, "enter")
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())
	assert.Equal(t, []string{"1", "3"}, listingIDs(m))

	// Esc in the listing clears the search
	press(m, "esc")
	assert.Empty(t, m.FilterState().SearchTerm)
	assert.Equal(t, []string{"1", "2", "3", "4"}, listingIDs(m))
}

func TestModelSearchEscRestoresPreviousTerm(t *testing.T) {
	m, _ := newTestModel(t, nil)

	press(m, "/", "s", "h", "o", "e", "enter")
	require.Equal(t, []string{"2", "4"}, listingIDs(m))

	press(m, "/", "x", "y")
	assert.Empty(t, m.Listing())

	press(m, "esc")
	assert.Equal(t, "shoe", m.FilterState().SearchTerm)
	assert.Equal(t, []string{"2", "4"}, listingIDs(m))
}

func TestModelCategorySelection(t *testing.T) {
	m, _ := newTestModel(t, nil)

	press(m, "c", "right")
	assert.Equal(t, "Tops", m.FilterState().Category)
	assert.Equal(t, []string{"1"}, listingIDs(m))

	press(m, "right", "enter")
	assert.Equal(t, "Shoes", m.FilterState().Category)
	assert.Equal(t, []string{"2", "4"}, listingIDs(m))
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())

	// Esc puts back the category active on entry
	press(m, "c", "right", "esc")
	assert.Equal(t, "Shoes", m.FilterState().Category)
}

func TestModelPriceSortSelection(t *testing.T) {
	m, _ := newTestModel(t, nil)

	press(m, "s", "right")
	assert.Equal(t, filter.PriceSortHighToLow, m.FilterState().PriceSort)
	assert.Equal(t, []string{"2", "4", "1", "3"}, listingIDs(m))

	press(m, "right")
	assert.Equal(t, filter.PriceSortLowToHigh, m.FilterState().PriceSort)
	assert.Equal(t, []string{"3", "1", "2", "4"}, listingIDs(m))

	press(m, "esc")
	assert.Equal(t, filter.PriceSortNone, m.FilterState().PriceSort)
	assert.Equal(t, []string{"1", "2", "3", "4"}, listingIDs(m))
}

func TestModelCombinedFiltersAndReset(t *testing.T) {
	m, _ := newTestModel(t, nil)

	press(m, "/", "s", "h", "o", "e", "enter")
	press(m, "c", "right", "right", "enter")
	press(m, "s", "right", "right", "enter")
	assert.Equal(t, []string{"2", "4"}, listingIDs(m))
	assert.True(t, m.FilterState().IsFiltered())

	press(m, "r")
	fs := m.FilterState()
	assert.False(t, fs.IsFiltered())
	assert.Equal(t, []string{"1", "2", "3", "4"}, listingIDs(m))
	assert.Equal(t, "Filters cleared", m.state.StatusMessage)
}

func TestModelAddToCart(t *testing.T) {
	m, c := newTestModel(t, nil)

	press(m, "enter")
	require.Len(t, c.Items(), 1)
	assert.Equal(t, "1", c.Items()[0].Product.ID)
	assert.Equal(t, "Added Red Shirt to cart", m.state.StatusMessage)

	press(m, "l", "a", "a")
	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "2", items[1].Product.ID)
	assert.Equal(t, 2, items[1].Quantity)
	assert.Equal(t, 3, c.Count())
	assert.InDelta(t, 120.0, c.Total(), 0.001)
	assert.Equal(t, "Added Blue Shoe to cart (2 in cart)", m.state.StatusMessage)
}

func TestModelAddToCartUsesProjectedOrder(t *testing.T) {
	m, c := newTestModel(t, nil)

	// Lowest price first puts the hat at the top
	press(m, "s", "right", "right", "enter", "enter")
	require.Len(t, c.Items(), 1)
	assert.Equal(t, "3", c.Items()[0].Product.ID)
}

func TestModelAddToCartOnEmptyListingIsIgnored(t *testing.T) {
	m, c := newTestModel(t, nil)

	press(m, "/", "z", "z", "z", "enter", "enter")
	assert.Empty(t, m.Listing())
	assert.Empty(t, c.Items())
}

func TestModelCartPanel(t *testing.T) {
	m, c := newTestModel(t, nil)
	press(m, "enter", "l", "enter", "l", "enter")
	require.Len(t, c.Items(), 3)

	press(m, "b")
	assert.True(t, m.state.ShowCart)
	assert.Equal(t, inputtypes.ModeCart, m.inputHandler.CurrentMode())

	press(m, "down", "x")
	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].Product.ID)
	assert.Equal(t, "3", items[1].Product.ID)
	assert.Equal(t, "Removed Blue Shoe from cart", m.state.StatusMessage)

	press(m, "C")
	assert.Empty(t, c.Items())
	assert.Equal(t, "Cart cleared", m.state.StatusMessage)

	press(m, "esc")
	assert.False(t, m.state.ShowCart)
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())
}

func TestModelGridNavigation(t *testing.T) {
	m, _ := newTestModel(t, nil)
	press(m, "-") // three columns down to two
	require.Equal(t, 2, m.state.Columns)

	press(m, "j")
	p, ok := m.SelectedProduct()
	require.True(t, ok)
	assert.Equal(t, "3", p.ID)

	press(m, "l")
	p, _ = m.SelectedProduct()
	assert.Equal(t, "4", p.ID)

	press(m, "g")
	p, _ = m.SelectedProduct()
	assert.Equal(t, "1", p.ID)

	press(m, "G")
	p, _ = m.SelectedProduct()
	assert.Equal(t, "4", p.ID)
}

func TestModelFilterResetsSelection(t *testing.T) {
	m, _ := newTestModel(t, nil)
	press(m, "G")
	require.Equal(t, 3, m.state.SelectedIndex)

	press(m, "c", "right", "enter")
	assert.Equal(t, 0, m.state.SelectedIndex)
}

func TestModelDetailsPopupWithoutProgram(t *testing.T) {
	m, _ := newTestModel(t, nil)

	press(m, "i")
	require.True(t, m.state.ShowInfo)
	assert.Contains(t, m.state.InfoContent, "Red Shirt")
	assert.Contains(t, m.state.InfoContent, "$20.00")
	assert.Contains(t, m.state.InfoContent, "Soft cotton")
	assert.Contains(t, m.View(), "Category: Tops")

	press(m, "esc")
	assert.False(t, m.state.ShowInfo)
}

func TestModelHelpPopup(t *testing.T) {
	m, _ := newTestModel(t, nil)

	press(m, "?")
	require.True(t, m.state.ShowHelp)
	assert.Contains(t, m.View(), "Search by name")

	// Keys don't reach the listing while help is open
	press(m, "q")
	assert.False(t, m.state.ShowHelp)
}

func TestModelViewRendersCardsAndCart(t *testing.T) {
	m, _ := newTestModel(t, nil)

	view := m.View()
	assert.Contains(t, view, "Red Shirt")
	assert.Contains(t, view, "$20.00")
	assert.Contains(t, view, "Cart: 0 items ($0.00)")
	assert.Contains(t, view, "4 of 4 products")

	press(m, "enter")
	assert.Contains(t, m.View(), "Cart: 1 item ($20.00)")
}

func TestModelViewEmptyState(t *testing.T) {
	m, _ := newTestModel(t, nil)

	press(m, "/", "q", "q", "q", "enter")
	view := m.View()
	assert.Contains(t, view, "No products match")
	assert.Contains(t, view, "0 of 4 products")
}

func TestModelViewBeforeResize(t *testing.T) {
	m := NewModel(nil, nil, testProducts(), nil, nil)
	assert.Equal(t, "Loading...", m.View())
}

func TestModelPublishesEvents(t *testing.T) {
	bus := eventbus.New(zaptest.NewLogger(t))
	defer bus.Close()

	filters := make(chan eventbus.FilterAppliedEvent, 10)
	configs := make(chan eventbus.ConfigChangedEvent, 10)
	bus.Subscribe(eventbus.EventFilterApplied, func(e eventbus.DomainEvent) {
		filters <- e.(eventbus.FilterAppliedEvent)
	})
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		configs <- e.(eventbus.ConfigChangedEvent)
	})

	m, _ := newTestModel(t, bus)

	press(m, "c", "right", "enter")
	select {
	case e := <-filters:
		assert.Equal(t, "Tops", e.Category)
		assert.Equal(t, 1, e.Matches)
	case <-time.After(2 * time.Second):
		t.Fatal("no FilterAppliedEvent")
	}

	press(m, "d")
	select {
	case e := <-configs:
		assert.False(t, e.ShowDescriptions)
		assert.Equal(t, 3, e.Columns)
	case <-time.After(2 * time.Second):
		t.Fatal("no ConfigChangedEvent")
	}
	assert.False(t, m.config.UISettings.ShowDescriptions)
}

func TestModelEventMsg(t *testing.T) {
	m, _ := newTestModel(t, nil)

	_, cmd := m.Update(EventMsg{Event: eventbus.ErrorEvent{Message: "catalog unavailable"}})
	assert.NotNil(t, cmd)
	assert.Equal(t, "Error: catalog unavailable", m.state.StatusMessage)

	// A stale timer does not clear a newer message
	m.Update(clearStatusMsg{seq: m.statusSeq - 1})
	assert.NotEmpty(t, m.state.StatusMessage)
	m.Update(clearStatusMsg{seq: m.statusSeq})
	assert.Empty(t, m.state.StatusMessage)
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		require.Len(t, batch, 1)
		msg = batch[0]()
	}
	assert.IsType(t, tea.QuitMsg{}, msg)
}
