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

// TransactionStore persists transactions in a single CSV file it exclusively
// owns, in append-only fashion.
//
// Appends are serialized by a per-store mutex and issue one write call per
// row, so interleaved appenders cannot corrupt each other. Reads stream the
// file without taking the append lock; a reader may or may not observe a row
// appended mid-read, which is acceptable (no snapshot isolation).
type TransactionStore struct {
	path   string
	schema Schema
	mu     sync.Mutex
}

// NewTransactionStore creates a store backed by the given file, configured
// for exactly one row schema.
func NewTransactionStore(path string, schema Schema) *TransactionStore {
	return &TransactionStore{path: path, schema: schema}
}

// Schema returns the row schema the store is configured for.
func (s *TransactionStore) Schema() Schema { return s.schema }

// Append writes one transaction row. On a new or empty file the header is
// written first, in the same write call as the row.
func (s *TransactionStore) Append(t Transaction) error {
	if err := t.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("cannot open transaction file %q: %w", s.path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("cannot stat transaction file %q: %w", s.path, err)
	}

	row := encodeTransaction(t, s.schema) + "\n"
	if info.Size() == 0 {
		row = s.schema.Header() + "\n" + row
	}
	if _, err := f.WriteString(row); err != nil {
		return fmt.Errorf("cannot append to transaction file %q: %w", s.path, err)
	}
	return nil
}

// ReadAll returns every transaction in file order.
//
// A missing file is an empty ledger. Rows with the wrong field count, or an
// amount or timestamp that fails to parse, are skipped with a warning; a
// single bad row never aborts the read.
func (s *TransactionStore) ReadAll() ([]Transaction, error) {
	return s.read(func(Transaction) bool { return true })
}

// ReadByOwner returns the transactions belonging to username, in their
// original file order.
func (s *TransactionStore) ReadByOwner(username string) ([]Transaction, error) {
	return s.read(func(t Transaction) bool { return t.Owner == username })
}

func (s *TransactionStore) read(keep func(Transaction) bool) ([]Transaction, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open transaction file %q: %w", s.path, err)
	}
	defer f.Close()

	var transactions []Transaction
	scanner := bufio.NewScanner(f)
	first := true
	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Text()
		if first {
			first = false
			continue // header
		}
		if len(line) == 0 {
			continue
		}
		t, err := decodeTransaction(line, s.schema)
		if err != nil {
			log.Printf("skipping transaction row %s:%d: %v", s.path, i, err)
			continue
		}
		if keep(t) {
			transactions = append(transactions, t)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read transaction file %q: %w", s.path, err)
	}
	return transactions, nil
}
