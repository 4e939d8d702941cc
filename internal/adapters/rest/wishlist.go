package rest

import (
	"context"
	"encoding/json"

	"github.com/maelys-dev/sweetshop-cli/internal/domain"
	"github.com/maelys-dev/sweetshop-cli/internal/ports"
)

type wishlistAPI struct {
	client *Client
}

var _ ports.WishlistAPI = (*wishlistAPI)(nil)

func NewWishlistAPI(client *Client) ports.WishlistAPI {
	return &wishlistAPI{client: client}
}

type wishlistEntryPayload struct {
	ID             flexString      `json:"id"`
	Product        json.RawMessage `json:"product"`
	ProductDetails json.RawMessage `json:"product_details"`
}

func (p wishlistEntryPayload) toDomain() domain.WishlistEntry {
	product, ok := decodeEmbeddedProduct(p.ProductDetails)
	if !ok {
		product, _ = decodeEmbeddedProduct(p.Product)
	}

	return domain.WishlistEntry{
		ID:      domain.EntryID(p.ID),
		Product: product,
	}
}

func (w *wishlistAPI) Fetch(ctx context.Context) ([]domain.WishlistEntry, error) {
	var payload []wishlistEntryPayload
	if err := w.client.get(ctx, "wishlist", &payload); err != nil {
		return nil, err
	}

	entries := make([]domain.WishlistEntry, 0, len(payload))
	for _, entry := range payload {
		entries = append(entries, entry.toDomain())
	}
	return entries, nil
}

func (w *wishlistAPI) Add(ctx context.Context, productID domain.ProductID) (domain.WishlistEntry, error) {
	body := map[string]string{"product": string(productID)}

	var payload wishlistEntryPayload
	if err := w.client.post(ctx, "wishlist", body, &payload); err != nil {
		return domain.WishlistEntry{}, err
	}

	entry := payload.toDomain()
	if entry.Product.ID == "" {
		entry.Product.ID = productID
	}
	return entry, nil
}

func (w *wishlistAPI) Remove(ctx context.Context, productID domain.ProductID) error {
	body := map[string]string{"product": string(productID)}
	return w.client.delete(ctx, "wishlist", body)
}
