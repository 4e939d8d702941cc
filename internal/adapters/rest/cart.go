package rest

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/maelys-dev/sweetshop-cli/internal/domain"
	"github.com/maelys-dev/sweetshop-cli/internal/ports"
)

type cartAPI struct {
	client *Client
}

var _ ports.CartAPI = (*cartAPI)(nil)

func NewCartAPI(client *Client) ports.CartAPI {
	return &cartAPI{client: client}
}

type cartLinePayload struct {
	ID             flexString      `json:"id"`
	Quantity       int             `json:"quantity"`
	Product        json.RawMessage `json:"product"`
	ProductDetails json.RawMessage `json:"product_details"`

	// Older backend revisions inline the snapshot fields on the line.
	Name  string    `json:"name"`
	Price flexFloat `json:"price"`
	Image string    `json:"image"`
	Brand string    `json:"brand"`
}

func (p cartLinePayload) toDomain() domain.CartLine {
	product, ok := decodeEmbeddedProduct(p.ProductDetails)
	if !ok {
		product, _ = decodeEmbeddedProduct(p.Product)
	}
	if product.Name == "" && p.Name != "" {
		product.Name = p.Name
		product.Price = float64(p.Price)
		product.Image = p.Image
		product.Brand = p.Brand
		product.Active = true
	}

	quantity := p.Quantity
	if quantity < 1 {
		quantity = 1
	}

	return domain.CartLine{
		ID:       domain.LineID(p.ID),
		Product:  product,
		Quantity: quantity,
	}
}

func (c *cartAPI) Fetch(ctx context.Context) ([]domain.CartLine, error) {
	var payload []cartLinePayload
	if err := c.client.get(ctx, "cart", &payload); err != nil {
		return nil, err
	}

	lines := make([]domain.CartLine, 0, len(payload))
	for _, entry := range payload {
		lines = append(lines, entry.toDomain())
	}
	return lines, nil
}

func (c *cartAPI) Add(ctx context.Context, productID domain.ProductID, quantity int) (domain.CartLine, error) {
	body := map[string]any{"product": string(productID), "quantity": quantity}

	var payload cartLinePayload
	if err := c.client.post(ctx, "cart", body, &payload); err != nil {
		return domain.CartLine{}, err
	}
	if payload.ID == "" {
		return domain.CartLine{}, domain.ErrBadResponse
	}

	return payload.toDomain(), nil
}

func (c *cartAPI) UpdateQuantity(ctx context.Context, id domain.LineID, quantity int) error {
	body := map[string]int{"quantity": quantity}
	return c.client.patch(ctx, fmt.Sprintf("cart/%s", id), body, nil)
}

func (c *cartAPI) Remove(ctx context.Context, id domain.LineID) error {
	return c.client.delete(ctx, fmt.Sprintf("cart/%s", id), nil)
}

func (c *cartAPI) Clear(ctx context.Context) error {
	return c.client.delete(ctx, "cart", nil)
}
