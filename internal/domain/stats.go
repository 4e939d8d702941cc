package domain

// StoreStats is the management dashboard summary.
type StoreStats struct {
	Users    int
	Blocked  int
	Products int
	Orders   int
	// Revenue sums the totals of all non-cancelled orders.
	Revenue float64
}
