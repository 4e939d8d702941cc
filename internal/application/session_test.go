package application

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/maelys-dev/sweetshop-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionStore(repo *fakeSessionRepo, creds *fakeCredStore) (*SessionStore, *LogoutBus) {
	bus := NewLogoutBus()
	return NewSessionStore(repo, creds, bus), bus
}

func TestSessionStoreRestore(t *testing.T) {
	ctx := context.Background()
	user := domain.UserRecord{ID: "u-1", Name: "Maya", Email: "maya@example.com", Role: domain.RoleUser}

	t.Run("restores persisted user and credential", func(t *testing.T) {
		repo := &fakeSessionRepo{user: &user}
		creds := newFakeCredStore()
		creds.values[CredentialKey] = "tok-1"
		store, _ := newSessionStore(repo, creds)

		require.NoError(t, store.Restore(ctx))

		assert.True(t, store.LoggedIn())
		assert.Equal(t, "tok-1", store.Token())
		current, ok := store.Current()
		require.True(t, ok)
		assert.Equal(t, user, current)
	})

	t.Run("nothing persisted leaves store logged out", func(t *testing.T) {
		store, _ := newSessionStore(&fakeSessionRepo{}, newFakeCredStore())

		require.NoError(t, store.Restore(ctx))

		assert.False(t, store.LoggedIn())
		assert.Empty(t, store.Token())
	})

	t.Run("corrupt record is discarded, not surfaced", func(t *testing.T) {
		repo := &fakeSessionRepo{
			loadFn: func(context.Context) (domain.UserRecord, bool, error) {
				return domain.UserRecord{}, false, errors.New("unmarshal session file")
			},
		}
		creds := newFakeCredStore()
		creds.values[CredentialKey] = "tok-stale"
		store, _ := newSessionStore(repo, creds)

		require.NoError(t, store.Restore(ctx))

		assert.False(t, store.LoggedIn())
		assert.Empty(t, creds.values[CredentialKey], "stale credential must be wiped")
	})

	t.Run("user without credential is discarded", func(t *testing.T) {
		repo := &fakeSessionRepo{user: &user}
		store, _ := newSessionStore(repo, newFakeCredStore())

		require.NoError(t, store.Restore(ctx))

		assert.False(t, store.LoggedIn())
		_, stored := repo.stored()
		assert.False(t, stored, "orphaned user record must be wiped")
	})
}

func TestSessionStoreEstablish(t *testing.T) {
	ctx := context.Background()
	user := domain.UserRecord{ID: "u-1", Name: "Maya", Role: domain.RoleUser}

	t.Run("persists before the in-memory swap", func(t *testing.T) {
		repo := &fakeSessionRepo{}
		creds := newFakeCredStore()
		store, _ := newSessionStore(repo, creds)

		require.NoError(t, store.Establish(ctx, user, "tok-1"))

		stored, ok := repo.stored()
		require.True(t, ok)
		assert.Equal(t, user, stored)
		assert.Equal(t, "tok-1", creds.values[CredentialKey])
		assert.True(t, store.LoggedIn())
	})

	t.Run("rejects an empty credential", func(t *testing.T) {
		store, _ := newSessionStore(&fakeSessionRepo{}, newFakeCredStore())

		require.Error(t, store.Establish(ctx, user, ""))
		assert.False(t, store.LoggedIn())
	})

	t.Run("credential write failure rolls back the user record", func(t *testing.T) {
		repo := &fakeSessionRepo{}
		creds := newFakeCredStore()
		creds.putErr = errors.New("keyring locked")
		store, _ := newSessionStore(repo, creds)

		require.Error(t, store.Establish(ctx, user, "tok-1"))

		assert.False(t, store.LoggedIn())
		_, ok := repo.stored()
		assert.False(t, ok, "partial persistence must not survive")
	})
}

func TestSessionStoreLogout(t *testing.T) {
	ctx := context.Background()
	repo := &fakeSessionRepo{}
	creds := newFakeCredStore()
	store, bus := newSessionStore(repo, creds)

	var broadcasts int
	bus.Subscribe(func() { broadcasts++ })

	require.NoError(t, store.Establish(ctx, domain.UserRecord{ID: "u-1", Role: domain.RoleUser}, "tok-1"))
	require.NoError(t, store.Logout(ctx))

	assert.False(t, store.LoggedIn())
	assert.Empty(t, store.Token())
	assert.Empty(t, creds.values[CredentialKey])
	_, ok := repo.stored()
	assert.False(t, ok)
	assert.Equal(t, 1, broadcasts)
}

func TestSessionStoreInvalidate(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes at most once per session", func(t *testing.T) {
		store, bus := newSessionStore(&fakeSessionRepo{}, newFakeCredStore())

		var mu sync.Mutex
		broadcasts := 0
		bus.Subscribe(func() {
			mu.Lock()
			broadcasts++
			mu.Unlock()
		})

		require.NoError(t, store.Establish(ctx, domain.UserRecord{ID: "u-1", Role: domain.RoleUser}, "tok-1"))

		// Several overlapping requests can all bounce with the same expired
		// credential; only one of them may fan out the logout event.
		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				store.Invalidate()
			}()
		}
		wg.Wait()

		assert.False(t, store.LoggedIn())
		assert.Equal(t, 1, broadcasts)
	})

	t.Run("no-op when logged out", func(t *testing.T) {
		store, bus := newSessionStore(&fakeSessionRepo{}, newFakeCredStore())

		broadcasts := 0
		bus.Subscribe(func() { broadcasts++ })

		store.Invalidate()

		assert.Zero(t, broadcasts)
	})
}

func TestSessionStoreUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("merges patch and re-persists", func(t *testing.T) {
		repo := &fakeSessionRepo{}
		store, _ := newSessionStore(repo, newFakeCredStore())
		require.NoError(t, store.Establish(ctx, domain.UserRecord{ID: "u-1", Name: "Maya", Email: "maya@example.com", Role: domain.RoleUser}, "tok-1"))

		updated, err := store.UpdateProfile(ctx, domain.ProfilePatch{Name: "Maya L."})
		require.NoError(t, err)

		assert.Equal(t, "Maya L.", updated.Name)
		assert.Equal(t, "maya@example.com", updated.Email, "untouched fields survive the merge")

		stored, ok := repo.stored()
		require.True(t, ok)
		assert.Equal(t, updated, stored)
	})

	t.Run("requires a session", func(t *testing.T) {
		store, _ := newSessionStore(&fakeSessionRepo{}, newFakeCredStore())

		_, err := store.UpdateProfile(ctx, domain.ProfilePatch{Name: "x"})
		assert.ErrorIs(t, err, domain.ErrNotLoggedIn)
	})
}
