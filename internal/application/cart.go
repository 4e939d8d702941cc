package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/maelys-dev/sweetshop-cli/internal/domain"
	"github.com/maelys-dev/sweetshop-cli/internal/ports"
)

// CartService keeps a local mirror of the authenticated user's cart. Every
// mutation confirms with the backend before the mirror changes
// (confirm-then-update), so the mirror never claims a success the server
// did not acknowledge.
//
// The mutex covers the local mirror only, not the remote round trip: two
// overlapping quantity updates on the same line both read the same starting
// quantity and the last response wins. That race is accepted, not fixed.
type CartService struct {
	api      ports.CartAPI
	sessions SessionInfo

	mu    sync.RWMutex
	lines []domain.CartLine

	unsubscribe func()
}

func NewCartService(api ports.CartAPI, sessions SessionInfo, bus *LogoutBus) *CartService {
	s := &CartService{api: api, sessions: sessions}
	s.unsubscribe = bus.Subscribe(s.reset)
	return s
}

// Close detaches the service from the logout broadcast.
func (s *CartService) Close() {
	s.unsubscribe()
}

// Fetch replaces the mirror wholesale with the server's cart. Without an
// active session it resets to empty without a network call. On a remote
// failure the previous mirror stays intact.
func (s *CartService) Fetch(ctx context.Context) error {
	if !s.sessions.LoggedIn() {
		s.reset()
		return nil
	}

	lines, err := s.api.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch cart: %w", err)
	}

	s.mu.Lock()
	s.lines = lines
	s.mu.Unlock()
	return nil
}

// Add puts one unit of the product in the cart. If a line for the product
// already exists this is an increment of that line, never a duplicate line.
func (s *CartService) Add(ctx context.Context, product domain.ProductSummary) (domain.CartLine, error) {
	if !s.sessions.LoggedIn() {
		return domain.CartLine{}, domain.ErrNotLoggedIn
	}

	if existing, ok := s.lineForProduct(product.ID); ok {
		return s.setQuantity(ctx, existing.ID, existing.Quantity+1)
	}

	line, err := s.api.Add(ctx, product.ID, 1)
	if err != nil {
		return domain.CartLine{}, fmt.Errorf("add to cart: %w", err)
	}
	// Some backends return the bare product id on create; keep the snapshot
	// the caller added so the mirror stays renderable.
	if line.Product.Name == "" {
		line.Product = product
	}

	s.mu.Lock()
	s.lines = append(s.lines, line)
	s.mu.Unlock()
	return line, nil
}

// Remove deletes the line remotely, then locally. A failed remote delete
// leaves the local line in place.
func (s *CartService) Remove(ctx context.Context, id domain.LineID) error {
	if _, ok := s.Line(id); !ok {
		return domain.ErrLineNotFound
	}

	if err := s.api.Remove(ctx, id); err != nil {
		return fmt.Errorf("remove cart line: %w", err)
	}

	s.mu.Lock()
	kept := s.lines[:0]
	for _, line := range s.lines {
		if line.ID != id {
			kept = append(kept, line)
		}
	}
	s.lines = kept
	s.mu.Unlock()
	return nil
}

func (s *CartService) IncreaseQty(ctx context.Context, id domain.LineID) (domain.CartLine, error) {
	line, ok := s.Line(id)
	if !ok {
		return domain.CartLine{}, domain.ErrLineNotFound
	}
	return s.setQuantity(ctx, id, line.Quantity+1)
}

// DecreaseQty lowers the quantity by one; at quantity one it removes the
// line instead, so a zero quantity is never persisted.
func (s *CartService) DecreaseQty(ctx context.Context, id domain.LineID) (domain.CartLine, error) {
	line, ok := s.Line(id)
	if !ok {
		return domain.CartLine{}, domain.ErrLineNotFound
	}
	if line.Quantity <= 1 {
		return domain.CartLine{}, s.Remove(ctx, id)
	}
	return s.setQuantity(ctx, id, line.Quantity-1)
}

// Clear empties the cart after a successful checkout. The bulk clear is
// optional backend support: when it fails the local mirror is cleared
// anyway, because the order has already consumed the items server-side.
func (s *CartService) Clear(ctx context.Context) error {
	if err := s.api.Clear(ctx); err != nil {
		s.reset()
		return nil
	}
	s.reset()
	return nil
}

// Lines returns a copy of the mirror.
func (s *CartService) Lines() []domain.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *CartService) Line(id domain.LineID) (domain.CartLine, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, line := range s.lines {
		if line.ID == id {
			return line, true
		}
	}
	return domain.CartLine{}, false
}

func (s *CartService) Subtotal() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, line := range s.lines {
		total += line.Subtotal()
	}
	return total
}

func (s *CartService) setQuantity(ctx context.Context, id domain.LineID, quantity int) (domain.CartLine, error) {
	if err := s.api.UpdateQuantity(ctx, id, quantity); err != nil {
		return domain.CartLine{}, fmt.Errorf("update cart quantity: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines[i].Quantity = quantity
			return s.lines[i], nil
		}
	}
	return domain.CartLine{}, domain.ErrLineNotFound
}

func (s *CartService) lineForProduct(productID domain.ProductID) (domain.CartLine, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, line := range s.lines {
		if line.Product.ID == productID {
			return line, true
		}
	}
	return domain.CartLine{}, false
}

func (s *CartService) reset() {
	s.mu.Lock()
	s.lines = nil
	s.mu.Unlock()
}
