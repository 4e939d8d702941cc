package domain

type UserID string

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type UserRecord struct {
	ID      UserID
	Name    string
	Email   string
	Role    Role
	Blocked bool
}

func (u UserRecord) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Registration carries the fields required to create a new account.
// Registering does not authenticate: the caller must log in afterwards.
type Registration struct {
	Name     string
	Email    string
	Password string
}

// ProfilePatch holds profile fields to merge into the current user record.
// Empty fields are left untouched.
type ProfilePatch struct {
	Name  string
	Email string
}

func (p ProfilePatch) Apply(user UserRecord) UserRecord {
	if p.Name != "" {
		user.Name = p.Name
	}
	if p.Email != "" {
		user.Email = p.Email
	}
	return user
}
