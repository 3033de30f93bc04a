package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCatalogLoaded   EventType = "CatalogLoaded"
	EventCartItemAdded   EventType = "CartItemAdded"
	EventCartItemRemoved EventType = "CartItemRemoved"
	EventCartCleared     EventType = "CartCleared"
	EventFilterApplied   EventType = "FilterApplied"
	EventConfigChanged   EventType = "ConfigChanged"
	EventError           EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CatalogLoadedEvent is emitted once the session catalog is available
type CatalogLoadedEvent struct {
	Source   string // file path, or "embedded"
	Products int
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// CartItemAddedEvent is emitted when a product is added to the cart
type CartItemAddedEvent struct {
	Product  Product
	Quantity int // quantity of the line after the add
}

func (e CartItemAddedEvent) Type() EventType { return EventCartItemAdded }

// CartItemRemovedEvent is emitted when a cart line is removed
type CartItemRemovedEvent struct {
	ProductID string
}

func (e CartItemRemovedEvent) Type() EventType { return EventCartItemRemoved }

// CartClearedEvent is emitted when the cart is emptied
type CartClearedEvent struct {
	Items int // number of lines that were removed
}

func (e CartClearedEvent) Type() EventType { return EventCartCleared }

// FilterAppliedEvent is emitted after the filter state changed and the listing was re-derived
type FilterAppliedEvent struct {
	SearchTerm string
	Category   string
	PriceSort  string
	Matches    int
}

func (e FilterAppliedEvent) Type() EventType { return EventFilterApplied }

// ConfigChangedEvent is emitted when UI preferences changed and should be saved
type ConfigChangedEvent struct {
	Columns          int
	ShowDescriptions bool
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
