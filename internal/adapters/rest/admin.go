package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/maelys-dev/sweetshop-cli/internal/domain"
	"github.com/maelys-dev/sweetshop-cli/internal/ports"
)

type adminAPI struct {
	client *Client
}

var _ ports.AdminAPI = (*adminAPI)(nil)

func NewAdminAPI(client *Client) ports.AdminAPI {
	return &adminAPI{client: client}
}

func (a *adminAPI) Users(ctx context.Context) ([]domain.UserRecord, error) {
	var payload []userPayload
	if err := a.client.get(ctx, "users", &payload); err != nil {
		return nil, err
	}

	users := make([]domain.UserRecord, 0, len(payload))
	for _, entry := range payload {
		users = append(users, entry.toDomain())
	}
	return users, nil
}

func (a *adminAPI) SetUserBlocked(ctx context.Context, id domain.UserID, blocked bool) error {
	body := map[string]bool{"is_blocked": blocked}
	return a.client.patch(ctx, fmt.Sprintf("users/%s", id), body, nil)
}

func (a *adminAPI) SaveProduct(ctx context.Context, product domain.ProductSummary) (domain.ProductSummary, error) {
	body := map[string]any{
		"name":   product.Name,
		"price":  product.Price,
		"image":  product.Image,
		"brand":  product.Brand,
		"active": product.Active,
	}

	method := http.MethodPost
	path := "products"
	if product.ID != "" {
		method = http.MethodPatch
		path = fmt.Sprintf("products/%s", product.ID)
	}

	var payload productPayload
	if err := a.client.Do(ctx, method, path, body, &payload); err != nil {
		return domain.ProductSummary{}, err
	}
	if payload.ID == "" {
		return domain.ProductSummary{}, domain.ErrBadResponse
	}
	return payload.toDomain(), nil
}

func (a *adminAPI) DeleteProduct(ctx context.Context, id domain.ProductID) error {
	return a.client.delete(ctx, fmt.Sprintf("products/%s", id), nil)
}

func (a *adminAPI) Orders(ctx context.Context) ([]domain.Order, error) {
	var payload []orderPayload
	if err := a.client.get(ctx, "orders?scope=all", &payload); err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(payload))
	for _, entry := range payload {
		orders = append(orders, entry.toDomain())
	}
	return orders, nil
}

func (a *adminAPI) SetOrderStatus(ctx context.Context, id domain.OrderID, status domain.OrderStatus) error {
	body := map[string]string{"status": string(status)}
	return a.client.patch(ctx, fmt.Sprintf("orders/%s", id), body, nil)
}
