package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/maelys-dev/sweetshop-cli/internal/domain"
	"github.com/maelys-dev/sweetshop-cli/internal/ports"
)

// WishlistService mirrors the saved-for-later set. Toggles apply
// optimistically for snappy feedback; when the backend disagrees the mirror
// is re-fetched so it converges on the server's view rather than keeping a
// phantom entry.
type WishlistService struct {
	api      ports.WishlistAPI
	sessions SessionInfo

	mu      sync.RWMutex
	entries []domain.WishlistEntry

	unsubscribe func()
}

func NewWishlistService(api ports.WishlistAPI, sessions SessionInfo, bus *LogoutBus) *WishlistService {
	s := &WishlistService{api: api, sessions: sessions}
	s.unsubscribe = bus.Subscribe(s.reset)
	return s
}

func (s *WishlistService) Close() {
	s.unsubscribe()
}

// Fetch replaces the mirror wholesale, or resets it when logged out.
func (s *WishlistService) Fetch(ctx context.Context) error {
	if !s.sessions.LoggedIn() {
		s.reset()
		return nil
	}

	entries, err := s.api.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch wishlist: %w", err)
	}

	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()
	return nil
}

// Toggle flips the product's membership: present removes, absent adds. It
// reports whether the product ended up in the wishlist.
func (s *WishlistService) Toggle(ctx context.Context, product domain.ProductSummary) (bool, error) {
	if !s.sessions.LoggedIn() {
		return false, domain.ErrNotLoggedIn
	}

	if s.IsInWishlist(product.ID) {
		if err := s.removeOptimistic(ctx, product.ID); err != nil {
			return false, err
		}
		return false, nil
	}

	s.mu.Lock()
	s.entries = append(s.entries, domain.WishlistEntry{Product: product})
	s.mu.Unlock()

	entry, err := s.api.Add(ctx, product.ID)
	if err != nil {
		s.resync(ctx)
		return false, fmt.Errorf("add to wishlist: %w", err)
	}

	// Swap the provisional entry for the server's, which carries the
	// assigned entry id.
	s.mu.Lock()
	for i := range s.entries {
		if s.entries[i].Product.ID == product.ID {
			if entry.Product.Name == "" {
				entry.Product = product
			}
			s.entries[i] = entry
			break
		}
	}
	s.mu.Unlock()
	return true, nil
}

// Remove drops the product regardless of how the entry was shaped on the
// wire; the REST adapter has already normalized entries by this point.
func (s *WishlistService) Remove(ctx context.Context, productID domain.ProductID) error {
	if !s.sessions.LoggedIn() {
		return domain.ErrNotLoggedIn
	}
	return s.removeOptimistic(ctx, productID)
}

// IsInWishlist is a pure membership test over the local mirror.
func (s *WishlistService) IsInWishlist(productID domain.ProductID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, entry := range s.entries {
		if entry.Product.ID == productID {
			return true
		}
	}
	return false
}

func (s *WishlistService) Entries() []domain.WishlistEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.WishlistEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *WishlistService) removeOptimistic(ctx context.Context, productID domain.ProductID) error {
	s.mu.Lock()
	kept := s.entries[:0]
	for _, entry := range s.entries {
		if entry.Product.ID != productID {
			kept = append(kept, entry)
		}
	}
	s.entries = kept
	s.mu.Unlock()

	if err := s.api.Remove(ctx, productID); err != nil {
		s.resync(ctx)
		return fmt.Errorf("remove from wishlist: %w", err)
	}
	return nil
}

// resync restores eventual consistency after a failed optimistic update.
// The fetch itself is best effort: if it also fails, the next fetch wins.
func (s *WishlistService) resync(ctx context.Context) {
	_ = s.Fetch(ctx)
}

func (s *WishlistService) reset() {
	s.mu.Lock()
	s.entries = nil
	s.mu.Unlock()
}
