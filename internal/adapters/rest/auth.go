package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/maelys-dev/sweetshop-cli/internal/domain"
	"github.com/maelys-dev/sweetshop-cli/internal/ports"
)

type authAPI struct {
	client *Client
}

var _ ports.AuthAPI = (*authAPI)(nil)

func NewAuthAPI(client *Client) ports.AuthAPI {
	return &authAPI{client: client}
}

func (a *authAPI) Login(ctx context.Context, email, password string) (domain.UserRecord, string, error) {
	body := map[string]string{"email": email, "password": password}

	var payload struct {
		Token string      `json:"token"`
		User  userPayload `json:"user"`
	}
	if err := a.client.post(ctx, "auth/login", body, &payload); err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return domain.UserRecord{}, "", domain.ErrInvalidCredentials
		}
		return domain.UserRecord{}, "", err
	}
	if payload.Token == "" || payload.User.ID == "" {
		return domain.UserRecord{}, "", domain.ErrBadResponse
	}

	return payload.User.toDomain(), payload.Token, nil
}

func (a *authAPI) Register(ctx context.Context, reg domain.Registration) (domain.UserRecord, error) {
	body := map[string]string{
		"name":     reg.Name,
		"email":    reg.Email,
		"password": reg.Password,
	}

	var payload userPayload
	if err := a.client.post(ctx, "users", body, &payload); err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.Code == http.StatusConflict {
			return domain.UserRecord{}, domain.ErrEmailTaken
		}
		return domain.UserRecord{}, err
	}

	return payload.toDomain(), nil
}

func (a *authAPI) UpdateProfile(ctx context.Context, patch domain.ProfilePatch) (domain.UserRecord, error) {
	body := map[string]string{}
	if patch.Name != "" {
		body["name"] = patch.Name
	}
	if patch.Email != "" {
		body["email"] = patch.Email
	}

	var payload userPayload
	if err := a.client.patch(ctx, "users/me", body, &payload); err != nil {
		return domain.UserRecord{}, err
	}
	return payload.toDomain(), nil
}

func (a *authAPI) ChangePassword(ctx context.Context, current, next string) error {
	body := map[string]string{
		"current_password": current,
		"new_password":     next,
	}
	return a.client.post(ctx, "users/me/password", body, nil)
}
