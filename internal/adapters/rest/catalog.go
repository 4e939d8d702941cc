package rest

import (
	"context"
	"fmt"

	"github.com/maelys-dev/sweetshop-cli/internal/domain"
	"github.com/maelys-dev/sweetshop-cli/internal/ports"
)

type catalogAPI struct {
	client *Client
}

var _ ports.CatalogAPI = (*catalogAPI)(nil)

func NewCatalogAPI(client *Client) ports.CatalogAPI {
	return &catalogAPI{client: client}
}

func (c *catalogAPI) Products(ctx context.Context, limit int) ([]domain.ProductSummary, error) {
	path := "products"
	if limit > 0 {
		path = fmt.Sprintf("products?limit=%d", limit)
	}

	var payload []productPayload
	if err := c.client.get(ctx, path, &payload); err != nil {
		return nil, err
	}

	products := make([]domain.ProductSummary, 0, len(payload))
	for _, entry := range payload {
		products = append(products, entry.toDomain())
	}
	return products, nil
}

func (c *catalogAPI) Product(ctx context.Context, id domain.ProductID) (domain.ProductSummary, error) {
	var payload productPayload
	if err := c.client.get(ctx, fmt.Sprintf("products/%s", id), &payload); err != nil {
		return domain.ProductSummary{}, err
	}
	if payload.ID == "" {
		return domain.ProductSummary{}, domain.ErrBadResponse
	}
	return payload.toDomain(), nil
}

func (c *catalogAPI) Categories(ctx context.Context) ([]domain.Category, error) {
	var payload []struct {
		ID    flexString `json:"id"`
		Name  string     `json:"name"`
		Image string     `json:"image"`
	}
	if err := c.client.get(ctx, "categories", &payload); err != nil {
		return nil, err
	}

	categories := make([]domain.Category, 0, len(payload))
	for _, entry := range payload {
		categories = append(categories, domain.Category{
			ID:    string(entry.ID),
			Name:  entry.Name,
			Image: entry.Image,
		})
	}
	return categories, nil
}
