package storefront

import (
	"testing"
	"time"

	"github.com/maelys-dev/sweetshop-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartLines() []domain.CartLine {
	return []domain.CartLine{
		{
			ID:       "line-1",
			Product:  domain.ProductSummary{ID: "p-1", Name: "Chocolate Fudge Cake", Price: 120, Active: true},
			Quantity: 2,
		},
		{
			ID:       "line-2",
			Product:  domain.ProductSummary{ID: "p-2", Name: "Lemon Tart", Price: 80.50, Active: true},
			Quantity: 1,
		},
	}
}

func TestRenderCart(t *testing.T) {
	t.Run("lists lines and subtotal", func(t *testing.T) {
		view, err := RenderCart(cartLines(), 320.50)
		require.NoError(t, err)

		assert.Contains(t, view, "Your Cart")
		assert.Contains(t, view, "Chocolate Fudge Cake")
		assert.Contains(t, view, "x2")
		assert.Contains(t, view, "₹320.50")
	})

	t.Run("empty cart", func(t *testing.T) {
		view, err := RenderCart(nil, 0)
		require.NoError(t, err)

		assert.Contains(t, view, "Your cart is empty.")
	})
}

func TestRenderWishlist(t *testing.T) {
	view := RenderWishlist([]domain.WishlistEntry{
		{ID: "w-1", Product: domain.ProductSummary{ID: "p-1", Name: "Lemon Tart", Price: 80, Active: true}},
	})

	assert.Contains(t, view, "Your Wishlist")
	assert.Contains(t, view, "Lemon Tart")
	assert.Contains(t, view, "₹80")

	assert.Contains(t, RenderWishlist(nil), "Nothing saved for later.")
}

func TestRenderProducts(t *testing.T) {
	view := RenderProducts([]domain.ProductSummary{
		{ID: "p-1", Name: "Brownie", Price: 45, Brand: "Sweetshop", Active: true},
		{ID: "p-2", Price: 30, Active: true},
	})

	assert.Contains(t, view, "Brownie")
	assert.Contains(t, view, "Sweetshop")
	assert.Contains(t, view, "p-2", "nameless product falls back to its id")
}

func TestRenderOrders(t *testing.T) {
	orders := []domain.Order{
		{
			ID:     "o-1",
			Total:  320,
			Status: domain.OrderShipped,
			Items: []domain.CartLine{
				{Product: domain.ProductSummary{ID: "p-1", Name: "Cake"}, Quantity: 2},
			},
			PlacedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		},
	}

	view := RenderOrders(orders)

	assert.Contains(t, view, "Order o-1")
	assert.Contains(t, view, "Shipped")
	assert.Contains(t, view, "Cake x2")
	assert.Contains(t, view, "2026-08-30")

	assert.Contains(t, RenderOrders(nil), "No orders yet.")
}

func TestRenderProfile(t *testing.T) {
	user := domain.UserRecord{Name: "Maya", Email: "maya@example.com", Role: domain.RoleAdmin}

	view := RenderProfile(user)
	assert.Contains(t, view, "Maya")
	assert.Contains(t, view, "role: admin")
	assert.NotContains(t, view, "blocked")

	user.Blocked = true
	assert.Contains(t, RenderProfile(user), "This account is blocked.")
}

func TestRenderStats(t *testing.T) {
	view := RenderStats(domain.StoreStats{Users: 3, Blocked: 1, Products: 2, Orders: 5, Revenue: 440})

	assert.Contains(t, view, "Store Dashboard")
	assert.Contains(t, view, "Users     3")
	assert.Contains(t, view, "(1 blocked)")
	assert.Contains(t, view, "Products  2")
	assert.Contains(t, view, "Orders    5")
	assert.Contains(t, view, "₹440")

	clean := RenderStats(domain.StoreStats{Users: 3})
	assert.NotContains(t, clean, "blocked")
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "₹120", money(120))
	assert.Equal(t, "₹80.50", money(80.5))
	assert.Equal(t, "₹0", money(0))
}
