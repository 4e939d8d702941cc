package domain

type EntryID string

// WishlistEntry marks a product as saved for later. Presence is the entire
// state; there is no quantity. At most one entry exists per product.
type WishlistEntry struct {
	ID      EntryID
	Product ProductSummary
}
