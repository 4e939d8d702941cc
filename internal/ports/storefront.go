package ports

import (
	"context"

	"github.com/maelys-dev/sweetshop-cli/internal/domain"
)

// AuthAPI covers the unauthenticated and profile endpoints of the backend.
type AuthAPI interface {
	// Login exchanges credentials for the user record and a bearer token.
	Login(ctx context.Context, email, password string) (domain.UserRecord, string, error)
	Register(ctx context.Context, reg domain.Registration) (domain.UserRecord, error)
	UpdateProfile(ctx context.Context, patch domain.ProfilePatch) (domain.UserRecord, error)
	ChangePassword(ctx context.Context, current, next string) error
}

type CartAPI interface {
	Fetch(ctx context.Context) ([]domain.CartLine, error)
	// Add creates a new line with the given quantity and returns it with
	// its server-assigned id.
	Add(ctx context.Context, productID domain.ProductID, quantity int) (domain.CartLine, error)
	UpdateQuantity(ctx context.Context, id domain.LineID, quantity int) error
	Remove(ctx context.Context, id domain.LineID) error
	// Clear is the bulk clear; backends may not support it and return
	// domain.ErrNotFound.
	Clear(ctx context.Context) error
}

type WishlistAPI interface {
	Fetch(ctx context.Context) ([]domain.WishlistEntry, error)
	Add(ctx context.Context, productID domain.ProductID) (domain.WishlistEntry, error)
	Remove(ctx context.Context, productID domain.ProductID) error
}

type CatalogAPI interface {
	Products(ctx context.Context, limit int) ([]domain.ProductSummary, error)
	Product(ctx context.Context, id domain.ProductID) (domain.ProductSummary, error)
	Categories(ctx context.Context) ([]domain.Category, error)
}

type OrderAPI interface {
	Create(ctx context.Context, draft domain.OrderDraft) (domain.Order, error)
	VerifyPayment(ctx context.Context, proof domain.PaymentProof) error
	List(ctx context.Context) ([]domain.Order, error)
}

// AdminAPI requires an admin session; the backend enforces the role, the
// client gates on it up front to avoid pointless round trips.
type AdminAPI interface {
	Users(ctx context.Context) ([]domain.UserRecord, error)
	SetUserBlocked(ctx context.Context, id domain.UserID, blocked bool) error
	SaveProduct(ctx context.Context, product domain.ProductSummary) (domain.ProductSummary, error)
	DeleteProduct(ctx context.Context, id domain.ProductID) error
	Orders(ctx context.Context) ([]domain.Order, error)
	SetOrderStatus(ctx context.Context, id domain.OrderID, status domain.OrderStatus) error
}
