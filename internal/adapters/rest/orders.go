package rest

import (
	"context"
	"time"

	"github.com/maelys-dev/sweetshop-cli/internal/domain"
	"github.com/maelys-dev/sweetshop-cli/internal/ports"
)

type orderAPI struct {
	client *Client
}

var _ ports.OrderAPI = (*orderAPI)(nil)

func NewOrderAPI(client *Client) ports.OrderAPI {
	return &orderAPI{client: client}
}

type addressPayload struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Line1    string `json:"address1"`
	Line2    string `json:"address2,omitempty"`
	City     string `json:"city"`
	Pincode  string `json:"pincode"`
	State    string `json:"state"`
}

func addressToPayload(a domain.ShippingAddress) addressPayload {
	return addressPayload{
		FullName: a.FullName,
		Phone:    a.Phone,
		Line1:    a.Line1,
		Line2:    a.Line2,
		City:     a.City,
		Pincode:  a.Pincode,
		State:    a.State,
	}
}

func (a addressPayload) toDomain() domain.ShippingAddress {
	return domain.ShippingAddress{
		FullName: a.FullName,
		Phone:    a.Phone,
		Line1:    a.Line1,
		Line2:    a.Line2,
		City:     a.City,
		Pincode:  a.Pincode,
		State:    a.State,
	}
}

type orderPayload struct {
	ID      flexString        `json:"id"`
	Items   []cartLinePayload `json:"items"`
	Total   flexFloat         `json:"total"`
	Status  string            `json:"status"`
	Address addressPayload    `json:"address"`
	Receipt string            `json:"receipt"`
	Date    string            `json:"date"`
}

func (p orderPayload) toDomain() domain.Order {
	items := make([]domain.CartLine, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, item.toDomain())
	}

	placedAt, err := time.Parse(time.RFC3339, p.Date)
	if err != nil {
		placedAt = time.Time{}
	}

	return domain.Order{
		ID:       domain.OrderID(p.ID),
		Items:    items,
		Total:    float64(p.Total),
		Status:   domain.OrderStatus(p.Status),
		Address:  p.Address.toDomain(),
		Receipt:  p.Receipt,
		PlacedAt: placedAt,
	}
}

func (o *orderAPI) Create(ctx context.Context, draft domain.OrderDraft) (domain.Order, error) {
	items := make([]map[string]any, 0, len(draft.Items))
	for _, line := range draft.Items {
		items = append(items, map[string]any{
			"product":  string(line.Product.ID),
			"quantity": line.Quantity,
			"price":    line.Product.Price,
		})
	}

	body := map[string]any{
		"items":   items,
		"total":   draft.Total,
		"address": addressToPayload(draft.Address),
		"receipt": draft.Receipt,
		"date":    draft.PlacedAt.Format(time.RFC3339),
	}

	var payload orderPayload
	if err := o.client.post(ctx, "orders", body, &payload); err != nil {
		return domain.Order{}, err
	}
	if payload.ID == "" {
		return domain.Order{}, domain.ErrBadResponse
	}
	return payload.toDomain(), nil
}

func (o *orderAPI) VerifyPayment(ctx context.Context, proof domain.PaymentProof) error {
	body := map[string]string{
		"order_id":   string(proof.OrderID),
		"payment_id": proof.PaymentID,
		"signature":  proof.Signature,
	}
	return o.client.post(ctx, "orders/verify-payment", body, nil)
}

func (o *orderAPI) List(ctx context.Context) ([]domain.Order, error) {
	var payload []orderPayload
	if err := o.client.get(ctx, "orders", &payload); err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(payload))
	for _, entry := range payload {
		orders = append(orders, entry.toDomain())
	}
	return orders, nil
}
