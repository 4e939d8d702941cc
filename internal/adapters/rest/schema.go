package rest

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/maelys-dev/sweetshop-cli/internal/domain"
)

// The wire shapes here absorb the variability different backend revisions
// produce: ids arrive as strings or numbers, prices as numbers or quoted
// strings, and embedded products either nested, under product_details, or
// as a bare id. Everything is normalized into one canonical domain shape
// before it leaves this package.

// flexString decodes a JSON string or number into a string.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*f = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// flexFloat decodes a JSON number or numeric string into a float64.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == `""` {
		*f = 0
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexFloat(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return err
	}
	*f = flexFloat(parsed)
	return nil
}

type productPayload struct {
	ID     flexString `json:"id"`
	Name   string     `json:"name"`
	Price  flexFloat  `json:"price"`
	Image  string     `json:"image"`
	Brand  string     `json:"brand"`
	Active *bool      `json:"active"`
}

func (p productPayload) toDomain() domain.ProductSummary {
	active := true
	if p.Active != nil {
		active = *p.Active
	}

	return domain.ProductSummary{
		ID:     domain.ProductID(p.ID),
		Name:   p.Name,
		Price:  float64(p.Price),
		Image:  p.Image,
		Brand:  p.Brand,
		Active: active,
	}
}

// decodeEmbeddedProduct handles the three shapes an embedded product takes:
// absent, a bare id, or a full object.
func decodeEmbeddedProduct(raw json.RawMessage) (domain.ProductSummary, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return domain.ProductSummary{}, false
	}

	var obj productPayload
	if err := json.Unmarshal(raw, &obj); err == nil && obj.ID != "" {
		return obj.toDomain(), true
	}

	var id flexString
	if err := json.Unmarshal(raw, &id); err == nil && id != "" {
		return domain.ProductSummary{ID: domain.ProductID(id), Active: true}, true
	}
	return domain.ProductSummary{}, false
}

type userPayload struct {
	ID      flexString `json:"id"`
	Name    string     `json:"name"`
	Email   string     `json:"email"`
	Role    string     `json:"role"`
	Blocked bool       `json:"is_blocked"`
}

func (u userPayload) toDomain() domain.UserRecord {
	role := domain.Role(u.Role)
	if role == "" {
		role = domain.RoleUser
	}

	return domain.UserRecord{
		ID:      domain.UserID(u.ID),
		Name:    u.Name,
		Email:   u.Email,
		Role:    role,
		Blocked: u.Blocked,
	}
}
