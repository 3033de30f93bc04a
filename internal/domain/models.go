package domain

// Product is a single catalog entry
type Product struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Category    string  `yaml:"category"`
	Price       float64 `yaml:"price"`
	Description string  `yaml:"description"`
	Image       string  `yaml:"image"` // opaque image reference, resolved by catalog.ImageResolver
}

// CartItem is one line of the cart
type CartItem struct {
	Product  Product
	Quantity int
}

// Subtotal returns price times quantity for the line
func (c CartItem) Subtotal() float64 {
	return c.Product.Price * float64(c.Quantity)
}
