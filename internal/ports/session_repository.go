package ports

import (
	"context"

	"github.com/maelys-dev/sweetshop-cli/internal/domain"
)

// SessionRepository persists the logged-in user record across process runs.
// The bearer credential itself lives in a CredentialStore, not here.
type SessionRepository interface {
	// Load returns the persisted user record and whether one was present.
	// A corrupt or unreadable record is an error; callers decide whether
	// to discard it.
	Load(ctx context.Context) (domain.UserRecord, bool, error)
	Save(ctx context.Context, user domain.UserRecord) error
	Clear(ctx context.Context) error
}

// CredentialStore holds opaque credential values under string keys.
type CredentialStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
