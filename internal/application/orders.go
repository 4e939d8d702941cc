package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/maelys-dev/sweetshop-cli/internal/domain"
	"github.com/maelys-dev/sweetshop-cli/internal/ports"
)

var ErrIncompleteAddress = errors.New("required address fields are missing")

// OrderService turns the current cart into an order and tracks history.
type OrderService struct {
	api      ports.OrderAPI
	cart     *CartService
	sessions SessionInfo
	clock    ports.Clock

	// newReceipt generates the client-side order reference; a seam for
	// deterministic tests.
	newReceipt func() string
}

func NewOrderService(api ports.OrderAPI, cart *CartService, sessions SessionInfo, clock ports.Clock) *OrderService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &OrderService{
		api:        api,
		cart:       cart,
		sessions:   sessions,
		clock:      clock,
		newReceipt: uuid.NewString,
	}
}

// Checkout places an order for everything in the cart. After the backend
// confirms, the cart is cleared; a failed bulk clear is tolerated because
// the order has already consumed the items server-side.
func (s *OrderService) Checkout(ctx context.Context, address domain.ShippingAddress) (domain.Order, error) {
	if !s.sessions.LoggedIn() {
		return domain.Order{}, domain.ErrNotLoggedIn
	}
	if err := validateAddress(address); err != nil {
		return domain.Order{}, err
	}

	lines := s.cart.Lines()
	if len(lines) == 0 {
		return domain.Order{}, domain.ErrEmptyCart
	}

	draft := domain.OrderDraft{
		Items:    lines,
		Total:    s.cart.Subtotal(),
		Address:  address,
		Receipt:  s.newReceipt(),
		PlacedAt: s.clock.Now(),
	}

	order, err := s.api.Create(ctx, draft)
	if err != nil {
		return domain.Order{}, fmt.Errorf("place order: %w", err)
	}

	_ = s.cart.Clear(ctx)
	return order, nil
}

// VerifyPayment submits the gateway's proof for server-side signature
// verification.
func (s *OrderService) VerifyPayment(ctx context.Context, proof domain.PaymentProof) error {
	if !s.sessions.LoggedIn() {
		return domain.ErrNotLoggedIn
	}
	if proof.OrderID == "" || proof.PaymentID == "" || proof.Signature == "" {
		return errors.New("order id, payment id and signature are all required")
	}

	if err := s.api.VerifyPayment(ctx, proof); err != nil {
		return fmt.Errorf("verify payment: %w", err)
	}
	return nil
}

func (s *OrderService) History(ctx context.Context) ([]domain.Order, error) {
	if !s.sessions.LoggedIn() {
		return nil, domain.ErrNotLoggedIn
	}

	orders, err := s.api.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func validateAddress(a domain.ShippingAddress) error {
	required := []string{a.FullName, a.Phone, a.Line1, a.City, a.Pincode, a.State}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return ErrIncompleteAddress
		}
	}
	return nil
}
