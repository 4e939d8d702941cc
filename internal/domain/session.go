package domain

// Session is the authenticated identity plus the bearer credential used on
// remote calls. Invariant: Token is non-empty if and only if User is non-nil.
type Session struct {
	User  *UserRecord
	Token string
}

func (s Session) LoggedIn() bool {
	return s.User != nil && s.Token != ""
}
