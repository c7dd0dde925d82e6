package finbook

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"sync"
)

// ErrAccountNotFound reports a lookup miss. A miss is a normal outcome, the
// store never invents an error for it; this sentinel exists for callers that
// need a hard failure (e.g. Update on an unknown username).
var ErrAccountNotFound = errors.New("account not found")

// AccountStore persists accounts in a single CSV file it exclusively owns.
//
// All writes rewrite the whole file. To make read-modify-write sequences safe
// against each other, every mutation runs under one process-wide mutex per
// store; use Update for any change derived from the current file content.
type AccountStore struct {
	path string
	mu   sync.Mutex
}

// NewAccountStore creates a store backed by the given file. The file is not
// created until the first save.
func NewAccountStore(path string) *AccountStore {
	return &AccountStore{path: path}
}

// LoadAll reads every account from the backing file, in file order.
//
// A missing file is an empty store, not an error. The header line is verified
// against AccountHeader; data rows with the wrong field count or unparsable
// fields are skipped with a warning.
func (s *AccountStore) LoadAll() ([]Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadAll()
}

// loadAll is LoadAll without locking, for use inside Update.
func (s *AccountStore) loadAll() ([]Account, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open account file %q: %w", s.path, err)
	}
	defer f.Close()

	var accounts []Account
	scanner := bufio.NewScanner(f)
	first := true
	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Text()
		if first {
			first = false
			if line != AccountHeader {
				return nil, fmt.Errorf("account file %q has unexpected header %q", s.path, line)
			}
			continue
		}
		if len(line) == 0 {
			continue
		}
		a, err := decodeAccount(line)
		if err != nil {
			log.Printf("skipping account row %s:%d: %v", s.path, i, err)
			continue
		}
		accounts = append(accounts, a)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read account file %q: %w", s.path, err)
	}
	return accounts, nil
}

// FindByUsername scans the store for the account with that exact username.
// The boolean reports whether it was found; absence is not an error.
func (s *AccountStore) FindByUsername(username string) (Account, bool, error) {
	accounts, err := s.LoadAll()
	if err != nil {
		return Account{}, false, err
	}
	for _, a := range accounts {
		if a.Username == username {
			return a, true, nil
		}
	}
	return Account{}, false, nil
}

// SaveAll writes the accounts to the backing file.
//
// With append false the file is truncated and rewritten, header first, one
// row per account in input order. With append true rows are appended, and the
// header is written first only when the file is currently empty or missing.
func (s *AccountStore) SaveAll(accounts []Account, append bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveAll(accounts, append)
}

// saveAll is SaveAll without locking, for use inside Update.
func (s *AccountStore) saveAll(accounts []Account, appendMode bool) error {
	flags := os.O_CREATE | os.O_WRONLY
	if appendMode {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(s.path, flags, 0644)
	if err != nil {
		return fmt.Errorf("cannot open account file %q for writing: %w", s.path, err)
	}
	defer f.Close()

	writeHeader := !appendMode
	if appendMode {
		info, err := f.Stat()
		if err != nil {
			return fmt.Errorf("cannot stat account file %q: %w", s.path, err)
		}
		writeHeader = info.Size() == 0
	}

	w := bufio.NewWriter(f)
	if writeHeader {
		fmt.Fprintln(w, AccountHeader)
	}
	for _, a := range accounts {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("refusing to save invalid account: %w", err)
		}
		fmt.Fprintln(w, encodeAccount(a))
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("cannot write account file %q: %w", s.path, err)
	}
	return nil
}

// Update applies mutate to the account with the given username and rewrites
// the whole file, all under the store lock, so concurrent updates can never
// lose each other's writes. The lock is released on every exit path.
//
// Returns ErrAccountNotFound when the username does not exist.
func (s *AccountStore) Update(username string, mutate func(*Account) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.loadAll()
	if err != nil {
		return err
	}
	for i := range accounts {
		if accounts[i].Username != username {
			continue
		}
		if err := mutate(&accounts[i]); err != nil {
			return err
		}
		// Username is the key and must survive the mutation.
		accounts[i].Username = username
		return s.saveAll(accounts, false)
	}
	return fmt.Errorf("cannot update %q: %w", username, ErrAccountNotFound)
}

// UpdateAll applies mutate to the full in-memory account list and rewrites
// the file, all under the store lock. It exists for mutations that must land
// atomically on more than one account, such as a transfer.
func (s *AccountStore) UpdateAll(mutate func(accounts []Account) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.loadAll()
	if err != nil {
		return err
	}
	if err := mutate(accounts); err != nil {
		return err
	}
	return s.saveAll(accounts, false)
}

// Register appends a new account after checking username uniqueness, under
// the store lock.
func (s *AccountStore) Register(a Account) error {
	if err := a.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.loadAll()
	if err != nil {
		return err
	}
	for _, existing := range accounts {
		if existing.Username == a.Username {
			return fmt.Errorf("username %q is already registered", a.Username)
		}
	}
	return s.saveAll([]Account{a}, true)
}
