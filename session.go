package finbook

import "errors"

var (
	// ErrBadCredentials reports a failed username/password check. It stays
	// deliberately vague to avoid confirming which half was wrong.
	ErrBadCredentials = errors.New("invalid username or password")
	// ErrAccountUnavailable reports a login attempt on a frozen or closed
	// account.
	ErrAccountUnavailable = errors.New("account is not available")
)

// Session carries the identity of the current user through calls that need
// one. It is an explicit value, not process-wide state: set on a successful
// login, cleared on logout, read-only everywhere else.
//
// The core never authenticates beyond the password comparison in Login; it
// trusts the caller-supplied session from then on.
type Session struct {
	username string
	admin    bool
}

// Login verifies the credentials against the store and returns a session for
// the account. A frozen or closed account cannot log in.
func Login(store *AccountStore, username, password string) (Session, error) {
	account, found, err := store.FindByUsername(username)
	if err != nil {
		return Session{}, err
	}
	if !found || account.Password != password {
		return Session{}, ErrBadCredentials
	}
	if account.Status == StatusFrozen || account.Status == StatusClosed {
		return Session{}, ErrAccountUnavailable
	}
	return Session{username: account.Username, admin: account.IsAdmin()}, nil
}

// Username returns the identity bound to the session, or "" when logged out.
func (s Session) Username() string { return s.username }

// IsAdmin reports whether the session belongs to an admin account.
func (s Session) IsAdmin() bool { return s.admin }

// Active reports whether the session carries an identity.
func (s Session) Active() bool { return s.username != "" }

// Logout returns the cleared session.
func (s Session) Logout() Session { return Session{} }
