package application

import (
	"context"
	"fmt"

	"github.com/maelys-dev/sweetshop-cli/internal/domain"
	"github.com/maelys-dev/sweetshop-cli/internal/ports"
)

// CatalogService reads the product catalog. Browsing needs no session.
type CatalogService struct {
	api ports.CatalogAPI
}

func NewCatalogService(api ports.CatalogAPI) *CatalogService {
	return &CatalogService{api: api}
}

// Products lists catalog products. A limit of zero means no limit.
func (s *CatalogService) Products(ctx context.Context, limit int) ([]domain.ProductSummary, error) {
	if limit < 0 {
		limit = 0
	}

	products, err := s.api.Products(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *CatalogService) Product(ctx context.Context, id domain.ProductID) (domain.ProductSummary, error) {
	product, err := s.api.Product(ctx, id)
	if err != nil {
		return domain.ProductSummary{}, fmt.Errorf("get product %s: %w", id, err)
	}
	return product, nil
}

func (s *CatalogService) Categories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.api.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}
