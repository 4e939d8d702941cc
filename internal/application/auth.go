package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/maelys-dev/sweetshop-cli/internal/domain"
	"github.com/maelys-dev/sweetshop-cli/internal/ports"
)

var (
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrNameRequired     = errors.New("name is required")
	ErrEmailMalformed   = errors.New("email address is malformed")
)

// AuthService drives the session lifecycle operations that need the remote
// authentication endpoints. Validation failures never reach the network.
type AuthService struct {
	api      ports.AuthAPI
	sessions *SessionStore
}

func NewAuthService(api ports.AuthAPI, sessions *SessionStore) *AuthService {
	return &AuthService{api: api, sessions: sessions}
}

// Login authenticates against the backend and establishes the session. A
// blocked account authenticates but is refused before any state is written.
func (a *AuthService) Login(ctx context.Context, email, password string) (domain.UserRecord, error) {
	if err := validateEmail(email); err != nil {
		return domain.UserRecord{}, err
	}
	if strings.TrimSpace(password) == "" {
		return domain.UserRecord{}, ErrPasswordRequired
	}

	user, token, err := a.api.Login(ctx, email, password)
	if err != nil {
		return domain.UserRecord{}, err
	}
	if user.Blocked {
		return domain.UserRecord{}, domain.ErrAccountBlocked
	}

	if err := a.sessions.Establish(ctx, user, token); err != nil {
		return domain.UserRecord{}, err
	}
	return user, nil
}

// Register creates a new account. No credential is issued on success; the
// caller logs in separately.
func (a *AuthService) Register(ctx context.Context, reg domain.Registration) (domain.UserRecord, error) {
	if strings.TrimSpace(reg.Name) == "" {
		return domain.UserRecord{}, ErrNameRequired
	}
	if err := validateEmail(reg.Email); err != nil {
		return domain.UserRecord{}, err
	}
	if strings.TrimSpace(reg.Password) == "" {
		return domain.UserRecord{}, ErrPasswordRequired
	}

	user, err := a.api.Register(ctx, reg)
	if err != nil {
		return domain.UserRecord{}, err
	}
	return user, nil
}

// UpdateProfile pushes the patch to the backend, then merges it into the
// locally persisted record.
func (a *AuthService) UpdateProfile(ctx context.Context, patch domain.ProfilePatch) (domain.UserRecord, error) {
	if !a.sessions.LoggedIn() {
		return domain.UserRecord{}, domain.ErrNotLoggedIn
	}
	if patch.Email != "" {
		if err := validateEmail(patch.Email); err != nil {
			return domain.UserRecord{}, err
		}
	}

	if _, err := a.api.UpdateProfile(ctx, patch); err != nil {
		return domain.UserRecord{}, err
	}
	return a.sessions.UpdateProfile(ctx, patch)
}

func (a *AuthService) ChangePassword(ctx context.Context, current, next string) error {
	if !a.sessions.LoggedIn() {
		return domain.ErrNotLoggedIn
	}
	if strings.TrimSpace(current) == "" || strings.TrimSpace(next) == "" {
		return ErrPasswordRequired
	}

	if err := a.api.ChangePassword(ctx, current, next); err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailRequired
	}

	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || !strings.Contains(email[at:], ".") {
		return ErrEmailMalformed
	}
	return nil
}
