package finbook

import (
	"errors"
	"path/filepath"
	"testing"
)

func sessionStore(t *testing.T) *AccountStore {
	t.Helper()
	store := NewAccountStore(filepath.Join(t.TempDir(), "accounts.csv"))
	alice := testAccount("alice")
	root := testAccount("root")
	root.Type = TypeAdmin
	frozen := testAccount("carol")
	frozen.Status = StatusFrozen
	if err := store.SaveAll([]Account{alice, root, frozen}, false); err != nil {
		t.Fatal(err)
	}
	return store
}

func TestLogin(t *testing.T) {
	store := sessionStore(t)

	s, err := Login(store, "alice", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !s.Active() || s.Username() != "alice" || s.IsAdmin() {
		t.Errorf("unexpected session %+v", s)
	}

	s, err = Login(store, "root", "secret")
	if err != nil {
		t.Fatalf("admin login: %v", err)
	}
	if !s.IsAdmin() {
		t.Error("root must get an admin session")
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	store := sessionStore(t)

	for _, tt := range []struct{ user, pass string }{
		{"alice", "wrong"},
		{"nobody", "secret"},
	} {
		if _, err := Login(store, tt.user, tt.pass); !errors.Is(err, ErrBadCredentials) {
			t.Errorf("Login(%s, %s): want ErrBadCredentials, got %v", tt.user, tt.pass, err)
		}
	}
}

func TestLogin_FrozenAccount(t *testing.T) {
	store := sessionStore(t)
	if _, err := Login(store, "carol", "secret"); !errors.Is(err, ErrAccountUnavailable) {
		t.Fatalf("want ErrAccountUnavailable, got %v", err)
	}
}

func TestSession_Logout(t *testing.T) {
	store := sessionStore(t)
	s, err := Login(store, "alice", "secret")
	if err != nil {
		t.Fatal(err)
	}
	s = s.Logout()
	if s.Active() || s.Username() != "" {
		t.Errorf("logout must clear the session, got %+v", s)
	}
}
