package entity

// CartLine is one selected product with its quantity. Lines are keyed
// by product id; adding the same product again merges into the
// existing line instead of appending a duplicate.
type CartLine struct {
	Product  Product
	Quantity int
}

func (l CartLine) Subtotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}
