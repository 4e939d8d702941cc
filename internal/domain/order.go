package domain

import "time"

type OrderID string

type OrderStatus string

const (
	OrderProcessing OrderStatus = "Processing"
	OrderShipped    OrderStatus = "Shipped"
	OrderDelivered  OrderStatus = "Delivered"
	OrderCancelled  OrderStatus = "Cancelled"
)

type ShippingAddress struct {
	FullName string
	Phone    string
	Line1    string
	Line2    string
	City     string
	Pincode  string
	State    string
}

// OrderDraft is what the client submits at checkout. Receipt is a
// client-generated reference echoed back through payment verification.
type OrderDraft struct {
	Items    []CartLine
	Total    float64
	Address  ShippingAddress
	Receipt  string
	PlacedAt time.Time
}

type Order struct {
	ID       OrderID
	Items    []CartLine
	Total    float64
	Status   OrderStatus
	Address  ShippingAddress
	Receipt  string
	PlacedAt time.Time
}

// PaymentProof carries the gateway's payment confirmation for server-side
// signature verification.
type PaymentProof struct {
	OrderID   OrderID
	PaymentID string
	Signature string
}
