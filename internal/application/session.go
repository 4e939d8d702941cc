package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/maelys-dev/sweetshop-cli/internal/domain"
	"github.com/maelys-dev/sweetshop-cli/internal/ports"
)

// CredentialKey is the fixed key the bearer token is persisted under.
const CredentialKey = "session_token"

// SessionInfo is the read side of the session store, consumed by the
// synchronizers and the order/admin services.
type SessionInfo interface {
	LoggedIn() bool
	Current() (domain.UserRecord, bool)
}

// SessionStore owns the single source of truth for who is logged in and the
// credential attached to remote calls. Persistence writes happen before the
// in-memory mutation becomes visible, so readers never observe a session
// that is not also on disk.
type SessionStore struct {
	repo  ports.SessionRepository
	creds ports.CredentialStore
	bus   *LogoutBus

	mu      sync.RWMutex
	session domain.Session
}

var _ SessionInfo = (*SessionStore)(nil)

func NewSessionStore(repo ports.SessionRepository, creds ports.CredentialStore, bus *LogoutBus) *SessionStore {
	return &SessionStore{repo: repo, creds: creds, bus: bus}
}

// Restore reads the persisted user record and credential. Both must be
// present and well formed; anything else wipes the persisted state and
// leaves the store logged out. No network call is made here: the first real
// request is what confirms or invalidates the cached credential.
func (s *SessionStore) Restore(ctx context.Context) error {
	user, ok, err := s.repo.Load(ctx)
	if err != nil || !ok {
		s.discardPersisted(ctx)
		return nil
	}

	token, err := s.creds.Get(ctx, CredentialKey)
	if err != nil || token == "" {
		s.discardPersisted(ctx)
		return nil
	}

	s.mu.Lock()
	s.session = domain.Session{User: &user, Token: token}
	s.mu.Unlock()
	return nil
}

// Establish stores a freshly authenticated session, persisting before the
// in-memory swap. On a partial persistence failure nothing is kept.
func (s *SessionStore) Establish(ctx context.Context, user domain.UserRecord, token string) error {
	if token == "" {
		return fmt.Errorf("establish session: empty credential")
	}

	if err := s.repo.Save(ctx, user); err != nil {
		return fmt.Errorf("persist session user: %w", err)
	}
	if err := s.creds.Put(ctx, CredentialKey, token); err != nil {
		_ = s.repo.Clear(ctx)
		return fmt.Errorf("persist session credential: %w", err)
	}

	s.mu.Lock()
	s.session = domain.Session{User: &user, Token: token}
	s.mu.Unlock()
	return nil
}

// Logout clears persisted and in-memory state unconditionally and
// broadcasts so the cart and wishlist converge without a direct dependency.
func (s *SessionStore) Logout(ctx context.Context) error {
	s.discardPersisted(ctx)

	s.mu.Lock()
	s.session = domain.Session{}
	s.mu.Unlock()

	s.bus.Publish()
	return nil
}

// Invalidate is the authentication-failure path: the remote client calls it
// when any request bounces with an unauthorized status. It broadcasts at
// most once per established session, so concurrent failing calls do not
// fan out duplicate logout events.
func (s *SessionStore) Invalidate() {
	s.mu.Lock()
	if !s.session.LoggedIn() {
		s.mu.Unlock()
		return
	}
	s.session = domain.Session{}
	s.mu.Unlock()

	s.discardPersisted(context.Background())
	s.bus.Publish()
}

// UpdateProfile merges the patch into the current user record and
// re-persists it. The remote side is assumed already updated by the caller.
func (s *SessionStore) UpdateProfile(ctx context.Context, patch domain.ProfilePatch) (domain.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.session.LoggedIn() {
		return domain.UserRecord{}, domain.ErrNotLoggedIn
	}

	updated := patch.Apply(*s.session.User)
	if err := s.repo.Save(ctx, updated); err != nil {
		return domain.UserRecord{}, fmt.Errorf("persist updated profile: %w", err)
	}

	s.session.User = &updated
	return updated, nil
}

func (s *SessionStore) Current() (domain.UserRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.session.LoggedIn() {
		return domain.UserRecord{}, false
	}
	return *s.session.User, true
}

func (s *SessionStore) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.LoggedIn()
}

// Token returns the current bearer credential, or "" when logged out.
func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Token
}

func (s *SessionStore) discardPersisted(ctx context.Context) {
	_ = s.repo.Clear(ctx)
	_ = s.creds.Delete(ctx, CredentialKey)
}
