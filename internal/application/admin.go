package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/maelys-dev/sweetshop-cli/internal/domain"
	"github.com/maelys-dev/sweetshop-cli/internal/ports"
)

var ErrUnknownOrderStatus = errors.New("unknown order status")

// AdminService wraps the management endpoints. The backend enforces the
// admin role; the client checks it up front so a plain user gets a clear
// refusal instead of a round trip.
type AdminService struct {
	api      ports.AdminAPI
	catalog  ports.CatalogAPI
	sessions SessionInfo
}

func NewAdminService(api ports.AdminAPI, catalog ports.CatalogAPI, sessions SessionInfo) *AdminService {
	return &AdminService{api: api, catalog: catalog, sessions: sessions}
}

func (s *AdminService) Users(ctx context.Context) ([]domain.UserRecord, error) {
	if err := s.requireAdmin(); err != nil {
		return nil, err
	}

	users, err := s.api.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *AdminService) SetUserBlocked(ctx context.Context, id domain.UserID, blocked bool) error {
	if err := s.requireAdmin(); err != nil {
		return err
	}

	if err := s.api.SetUserBlocked(ctx, id, blocked); err != nil {
		return fmt.Errorf("update user block flag: %w", err)
	}
	return nil
}

// SaveProduct creates the product when it has no id yet, updates otherwise.
func (s *AdminService) SaveProduct(ctx context.Context, product domain.ProductSummary) (domain.ProductSummary, error) {
	if err := s.requireAdmin(); err != nil {
		return domain.ProductSummary{}, err
	}
	if product.Name == "" {
		return domain.ProductSummary{}, errors.New("product name is required")
	}
	if product.Price <= 0 {
		return domain.ProductSummary{}, errors.New("product price must be positive")
	}

	saved, err := s.api.SaveProduct(ctx, product)
	if err != nil {
		return domain.ProductSummary{}, fmt.Errorf("save product: %w", err)
	}
	return saved, nil
}

func (s *AdminService) DeleteProduct(ctx context.Context, id domain.ProductID) error {
	if err := s.requireAdmin(); err != nil {
		return err
	}

	if err := s.api.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (s *AdminService) Orders(ctx context.Context) ([]domain.Order, error) {
	if err := s.requireAdmin(); err != nil {
		return nil, err
	}

	orders, err := s.api.Orders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all orders: %w", err)
	}
	return orders, nil
}

func (s *AdminService) SetOrderStatus(ctx context.Context, id domain.OrderID, status domain.OrderStatus) error {
	if err := s.requireAdmin(); err != nil {
		return err
	}

	switch status {
	case domain.OrderProcessing, domain.OrderShipped, domain.OrderDelivered, domain.OrderCancelled:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOrderStatus, status)
	}

	if err := s.api.SetOrderStatus(ctx, id, status); err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// Stats aggregates the dashboard counters from the user, catalog and order
// listings. Cancelled orders still count as orders but contribute no revenue.
func (s *AdminService) Stats(ctx context.Context) (domain.StoreStats, error) {
	if err := s.requireAdmin(); err != nil {
		return domain.StoreStats{}, err
	}

	users, err := s.api.Users(ctx)
	if err != nil {
		return domain.StoreStats{}, fmt.Errorf("count users: %w", err)
	}

	products, err := s.catalog.Products(ctx, 0)
	if err != nil {
		return domain.StoreStats{}, fmt.Errorf("count products: %w", err)
	}

	orders, err := s.api.Orders(ctx)
	if err != nil {
		return domain.StoreStats{}, fmt.Errorf("count orders: %w", err)
	}

	stats := domain.StoreStats{
		Users:    len(users),
		Products: len(products),
		Orders:   len(orders),
	}
	for _, user := range users {
		if user.Blocked {
			stats.Blocked++
		}
	}
	for _, order := range orders {
		if order.Status != domain.OrderCancelled {
			stats.Revenue += order.Total
		}
	}
	return stats, nil
}

func (s *AdminService) requireAdmin() error {
	user, ok := s.sessions.Current()
	if !ok {
		return domain.ErrNotLoggedIn
	}
	if !user.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}
