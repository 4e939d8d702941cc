package domain

type ProductID string

// ProductSummary is a read-only snapshot of a catalog product as embedded in
// cart lines and wishlist entries. It is copied, not referenced: price drift
// after the copy is accepted and never reconciled client-side.
type ProductSummary struct {
	ID     ProductID
	Name   string
	Price  float64
	Image  string
	Brand  string
	Active bool
}

type Category struct {
	ID    string
	Name  string
	Image string
}
