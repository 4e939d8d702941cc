package application

import (
	"context"
	"sync"

	"github.com/maelys-dev/sweetshop-cli/internal/domain"
)

// Hand-rolled fakes with overridable function fields. Each fake returns the
// zero-value success path unless the test plugs in a behavior.

type fakeSessionRepo struct {
	mu   sync.Mutex
	user *domain.UserRecord

	loadFn  func(ctx context.Context) (domain.UserRecord, bool, error)
	saveErr error
}

func (f *fakeSessionRepo) Load(ctx context.Context) (domain.UserRecord, bool, error) {
	if f.loadFn != nil {
		return f.loadFn(ctx)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.user == nil {
		return domain.UserRecord{}, false, nil
	}
	return *f.user, true, nil
}

func (f *fakeSessionRepo) Save(_ context.Context, user domain.UserRecord) error {
	if f.saveErr != nil {
		return f.saveErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.user = &user
	return nil
}

func (f *fakeSessionRepo) Clear(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.user = nil
	return nil
}

func (f *fakeSessionRepo) stored() (domain.UserRecord, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.user == nil {
		return domain.UserRecord{}, false
	}
	return *f.user, true
}

type fakeCredStore struct {
	mu     sync.Mutex
	values map[string]string

	putErr error
}

func newFakeCredStore() *fakeCredStore {
	return &fakeCredStore{values: map[string]string{}}
}

func (f *fakeCredStore) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[key], nil
}

func (f *fakeCredStore) Put(_ context.Context, key, value string) error {
	if f.putErr != nil {
		return f.putErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	return nil
}

func (f *fakeCredStore) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.values, key)
	return nil
}

type fakeSessionInfo struct {
	user     domain.UserRecord
	loggedIn bool
}

func (f *fakeSessionInfo) LoggedIn() bool { return f.loggedIn }

func (f *fakeSessionInfo) Current() (domain.UserRecord, bool) {
	if !f.loggedIn {
		return domain.UserRecord{}, false
	}
	return f.user, true
}

func loggedInAs(role domain.Role) *fakeSessionInfo {
	return &fakeSessionInfo{
		user:     domain.UserRecord{ID: "u-1", Name: "Maya", Email: "maya@example.com", Role: role},
		loggedIn: true,
	}
}

type fakeAuthAPI struct {
	loginFn          func(ctx context.Context, email, password string) (domain.UserRecord, string, error)
	registerFn       func(ctx context.Context, reg domain.Registration) (domain.UserRecord, error)
	updateProfileFn  func(ctx context.Context, patch domain.ProfilePatch) (domain.UserRecord, error)
	changePasswordFn func(ctx context.Context, current, next string) error
}

func (f *fakeAuthAPI) Login(ctx context.Context, email, password string) (domain.UserRecord, string, error) {
	return f.loginFn(ctx, email, password)
}

func (f *fakeAuthAPI) Register(ctx context.Context, reg domain.Registration) (domain.UserRecord, error) {
	return f.registerFn(ctx, reg)
}

func (f *fakeAuthAPI) UpdateProfile(ctx context.Context, patch domain.ProfilePatch) (domain.UserRecord, error) {
	return f.updateProfileFn(ctx, patch)
}

func (f *fakeAuthAPI) ChangePassword(ctx context.Context, current, next string) error {
	return f.changePasswordFn(ctx, current, next)
}

type fakeCartAPI struct {
	fetchFn    func(ctx context.Context) ([]domain.CartLine, error)
	addFn      func(ctx context.Context, productID domain.ProductID, quantity int) (domain.CartLine, error)
	updateFn   func(ctx context.Context, id domain.LineID, quantity int) error
	removeFn   func(ctx context.Context, id domain.LineID) error
	clearErr   error
	clearCalls int
}

func (f *fakeCartAPI) Fetch(ctx context.Context) ([]domain.CartLine, error) {
	if f.fetchFn == nil {
		return nil, nil
	}
	return f.fetchFn(ctx)
}

func (f *fakeCartAPI) Add(ctx context.Context, productID domain.ProductID, quantity int) (domain.CartLine, error) {
	return f.addFn(ctx, productID, quantity)
}

func (f *fakeCartAPI) UpdateQuantity(ctx context.Context, id domain.LineID, quantity int) error {
	if f.updateFn == nil {
		return nil
	}
	return f.updateFn(ctx, id, quantity)
}

func (f *fakeCartAPI) Remove(ctx context.Context, id domain.LineID) error {
	if f.removeFn == nil {
		return nil
	}
	return f.removeFn(ctx, id)
}

func (f *fakeCartAPI) Clear(context.Context) error {
	f.clearCalls++
	return f.clearErr
}

type fakeWishlistAPI struct {
	fetchFn  func(ctx context.Context) ([]domain.WishlistEntry, error)
	addFn    func(ctx context.Context, productID domain.ProductID) (domain.WishlistEntry, error)
	removeFn func(ctx context.Context, productID domain.ProductID) error
}

func (f *fakeWishlistAPI) Fetch(ctx context.Context) ([]domain.WishlistEntry, error) {
	if f.fetchFn == nil {
		return nil, nil
	}
	return f.fetchFn(ctx)
}

func (f *fakeWishlistAPI) Add(ctx context.Context, productID domain.ProductID) (domain.WishlistEntry, error) {
	return f.addFn(ctx, productID)
}

func (f *fakeWishlistAPI) Remove(ctx context.Context, productID domain.ProductID) error {
	if f.removeFn == nil {
		return nil
	}
	return f.removeFn(ctx, productID)
}

type fakeOrderAPI struct {
	createFn func(ctx context.Context, draft domain.OrderDraft) (domain.Order, error)
	verifyFn func(ctx context.Context, proof domain.PaymentProof) error
	listFn   func(ctx context.Context) ([]domain.Order, error)
}

func (f *fakeOrderAPI) Create(ctx context.Context, draft domain.OrderDraft) (domain.Order, error) {
	return f.createFn(ctx, draft)
}

func (f *fakeOrderAPI) VerifyPayment(ctx context.Context, proof domain.PaymentProof) error {
	if f.verifyFn == nil {
		return nil
	}
	return f.verifyFn(ctx, proof)
}

func (f *fakeOrderAPI) List(ctx context.Context) ([]domain.Order, error) {
	if f.listFn == nil {
		return nil, nil
	}
	return f.listFn(ctx)
}

type fakeCatalogAPI struct {
	productsFn   func(ctx context.Context, limit int) ([]domain.ProductSummary, error)
	productFn    func(ctx context.Context, id domain.ProductID) (domain.ProductSummary, error)
	categoriesFn func(ctx context.Context) ([]domain.Category, error)
}

func (f *fakeCatalogAPI) Products(ctx context.Context, limit int) ([]domain.ProductSummary, error) {
	if f.productsFn == nil {
		return nil, nil
	}
	return f.productsFn(ctx, limit)
}

func (f *fakeCatalogAPI) Product(ctx context.Context, id domain.ProductID) (domain.ProductSummary, error) {
	if f.productFn == nil {
		return domain.ProductSummary{ID: id}, nil
	}
	return f.productFn(ctx, id)
}

func (f *fakeCatalogAPI) Categories(ctx context.Context) ([]domain.Category, error) {
	if f.categoriesFn == nil {
		return nil, nil
	}
	return f.categoriesFn(ctx)
}

type fakeAdminAPI struct {
	usersFn          func(ctx context.Context) ([]domain.UserRecord, error)
	setUserBlockedFn func(ctx context.Context, id domain.UserID, blocked bool) error
	saveProductFn    func(ctx context.Context, product domain.ProductSummary) (domain.ProductSummary, error)
	deleteProductFn  func(ctx context.Context, id domain.ProductID) error
	ordersFn         func(ctx context.Context) ([]domain.Order, error)
	setOrderStatusFn func(ctx context.Context, id domain.OrderID, status domain.OrderStatus) error
}

func (f *fakeAdminAPI) Users(ctx context.Context) ([]domain.UserRecord, error) {
	if f.usersFn == nil {
		return nil, nil
	}
	return f.usersFn(ctx)
}

func (f *fakeAdminAPI) SetUserBlocked(ctx context.Context, id domain.UserID, blocked bool) error {
	if f.setUserBlockedFn == nil {
		return nil
	}
	return f.setUserBlockedFn(ctx, id, blocked)
}

func (f *fakeAdminAPI) SaveProduct(ctx context.Context, product domain.ProductSummary) (domain.ProductSummary, error) {
	if f.saveProductFn == nil {
		return product, nil
	}
	return f.saveProductFn(ctx, product)
}

func (f *fakeAdminAPI) DeleteProduct(ctx context.Context, id domain.ProductID) error {
	if f.deleteProductFn == nil {
		return nil
	}
	return f.deleteProductFn(ctx, id)
}

func (f *fakeAdminAPI) Orders(ctx context.Context) ([]domain.Order, error) {
	if f.ordersFn == nil {
		return nil, nil
	}
	return f.ordersFn(ctx)
}

func (f *fakeAdminAPI) SetOrderStatus(ctx context.Context, id domain.OrderID, status domain.OrderStatus) error {
	if f.setOrderStatusFn == nil {
		return nil
	}
	return f.setOrderStatusFn(ctx, id, status)
}

func cakeProduct() domain.ProductSummary {
	return domain.ProductSummary{ID: "p-1", Name: "Chocolate Fudge Cake", Price: 120, Active: true}
}

func tartProduct() domain.ProductSummary {
	return domain.ProductSummary{ID: "p-2", Name: "Lemon Tart", Price: 80, Active: true}
}
