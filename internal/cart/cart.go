// Package cart holds the shopping cart shared by the listing and the cart bar.
package cart

import (
	"sync"

	"go.uber.org/zap"

	"shopgrid/internal/domain"
	"shopgrid/internal/eventbus"
)

// Cart is the handle components use to change and read the cart
type Cart interface {
	Add(product domain.Product) domain.CartItem
	Remove(productID string) bool
	Items() []domain.CartItem
	Count() int
	Total() float64
	Clear()
}

// MemoryCart is an in-memory Cart. Lines keep the order products were first added in.
type MemoryCart struct {
	mu    sync.RWMutex
	items []domain.CartItem
	index map[string]int // product id -> position in items
	bus   eventbus.EventBus
	log   *zap.Logger
}

// NewMemoryCart creates an empty cart. bus may be nil.
func NewMemoryCart(bus eventbus.EventBus, logger *zap.Logger) *MemoryCart {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MemoryCart{
		index: make(map[string]int),
		bus:   bus,
		log:   logger.Named("cart"),
	}
}

// Add appends product as a new line or increments its existing line
func (c *MemoryCart) Add(product domain.Product) domain.CartItem {
	c.mu.Lock()
	var item domain.CartItem
	if i, ok := c.index[product.ID]; ok {
		c.items[i].Quantity++
		item = c.items[i]
	} else {
		item = domain.CartItem{Product: product, Quantity: 1}
		c.index[product.ID] = len(c.items)
		c.items = append(c.items, item)
	}
	c.mu.Unlock()

	c.log.Debug("added to cart", zap.String("product", product.ID), zap.Int("quantity", item.Quantity))
	c.publish(eventbus.CartItemAddedEvent{Product: product, Quantity: item.Quantity})
	return item
}

// Remove drops the whole line for productID
func (c *MemoryCart) Remove(productID string) bool {
	c.mu.Lock()
	i, ok := c.index[productID]
	if ok {
		c.items = append(c.items[:i], c.items[i+1:]...)
		c.reindex()
	}
	c.mu.Unlock()

	if ok {
		c.log.Debug("removed from cart", zap.String("product", productID))
		c.publish(eventbus.CartItemRemovedEvent{ProductID: productID})
	}
	return ok
}

// Items returns a copy of the cart lines
func (c *MemoryCart) Items() []domain.CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Count returns the total quantity across all lines
func (c *MemoryCart) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, item := range c.items {
		n += item.Quantity
	}
	return n
}

// Total returns the sum of all line subtotals
func (c *MemoryCart) Total() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var total float64
	for _, item := range c.items {
		total += item.Subtotal()
	}
	return total
}

// Clear empties the cart
func (c *MemoryCart) Clear() {
	c.mu.Lock()
	n := len(c.items)
	c.items = nil
	c.index = make(map[string]int)
	c.mu.Unlock()

	if n > 0 {
		c.publish(eventbus.CartClearedEvent{Items: n})
	}
}

// reindex rebuilds the id index; caller holds the lock
func (c *MemoryCart) reindex() {
	c.index = make(map[string]int, len(c.items))
	for i, item := range c.items {
		c.index[item.Product.ID] = i
	}
}

func (c *MemoryCart) publish(e eventbus.DomainEvent) {
	if c.bus != nil {
		c.bus.Publish(e)
	}
}
