package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/maelys-dev/sweetshop-cli/internal/domain"
)

const maxErrorBody = 4 << 10

// Config locates the storefront backend.
type Config struct {
	BaseURL string
}

// Client is the single choke point for talking to the backend. It attaches
// the current bearer credential to every request and is the only component
// allowed to interpret transport status codes as session-lifecycle events:
// an unauthorized response on an authenticated request triggers the
// invalidate callback, which feeds the same logout broadcast as an explicit
// logout. No retry, no silent continue.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      func() string
	invalidate func()
}

func NewClient(cfg Config, httpClient *http.Client, token func() string, invalidate func()) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: httpClient,
		token:      token,
		invalidate: invalidate,
	}
}

// StatusError is a remote failure that is none of the session-lifecycle
// statuses. Callers treat it as opaque and report it to the user.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.Code)
	}
	return fmt.Sprintf("server returned status %d: %s", e.Code, e.Message)
}

// Do issues one request. A non-nil body is JSON-encoded; a non-nil out has
// the response decoded into it. A body that fails to decode is a remote
// failure (domain.ErrBadResponse), never a panic.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+strings.TrimPrefix(path, "/"), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	bearer := c.token()
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		// Only a request that actually presented a credential can
		// invalidate the session; a bare 401 (e.g. bad login) stays local
		// to the caller.
		if bearer != "" {
			if c.invalidate != nil {
				c.invalidate()
			}
			return domain.ErrSessionExpired
		}
		return domain.ErrUnauthorized
	case resp.StatusCode == http.StatusForbidden:
		return domain.ErrForbidden
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", method, path, domain.ErrNotFound)
	case resp.StatusCode >= 400:
		return &StatusError{Code: resp.StatusCode, Message: remoteMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBadResponse, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string, body any) error {
	return c.Do(ctx, http.MethodDelete, path, body, nil)
}

// remoteMessage pulls a displayable message out of an error body, trying
// the field names seen across backends.
func remoteMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil {
		return ""
	}

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}

	for _, msg := range []string{payload.Error, payload.Message, payload.Detail} {
		if msg != "" {
			return msg
		}
	}
	return ""
}
