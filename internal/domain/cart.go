package domain

type LineID string

// CartLine is one product in the cart with its quantity. Lines are keyed by
// the server-assigned LineID, not the product id: the server owns line
// identity. Quantity is always >= 1; a decrement to zero removes the line.
type CartLine struct {
	ID       LineID
	Product  ProductSummary
	Quantity int
}

func (l CartLine) Subtotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}
