// Package session owns the only durable client-side state: one stored
// credential pair, and the resolver that turns it into a user id by
// re-authenticating against the API.
package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

// credentialKey is the single storage key; its value is "<email>,<password>".
const credentialKey = "user_token"

var (
	ErrNoCredential        = errors.New("no stored credential")
	ErrMalformedCredential = errors.New("malformed stored credential")
)

// Store persists the credential pair in a Badger database.
type Store struct {
	db *badger.DB
}

// NewStore opens the credential store at path. An empty path opens an
// in-memory database, used by tests.
func NewStore(path string) (*Store, error) {
	var opts badger.Options
	if path == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(path)
	}
	opts = opts.
		WithLogger(nil).
		WithSyncWrites(false).
		WithNumVersionsToKeep(1).
		WithNumGoroutines(1)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open credential store: %v", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores the credential pair, replacing any previous one.
func (s *Store) Save(email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return errors.New("email and password are required")
	}
	value := email + "," + password
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(credentialKey), []byte(value))
	})
}

// Load returns the stored pair. A value that does not split into exactly
// email and password is removed and reported as malformed, so a corrupt
// credential can never be replayed twice.
func (s *Store) Load() (email, password string, err error) {
	var value string
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(credentialKey))
		if err == badger.ErrKeyNotFound {
			return ErrNoCredential
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			value = string(val)
			return nil
		})
	})
	if err != nil {
		return "", "", err
	}

	email, password, ok := strings.Cut(value, ",")
	if !ok || email == "" || password == "" {
		if clearErr := s.Clear(); clearErr != nil {
			return "", "", clearErr
		}
		return "", "", ErrMalformedCredential
	}
	return email, password, nil
}

// Clear removes the stored pair. Clearing an empty store is not an error.
func (s *Store) Clear() error {
	return s.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete([]byte(credentialKey))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		return err
	})
}
