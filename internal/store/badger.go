package store

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v3"
)

// BadgerKV implements KV on an embedded badger database.
type BadgerKV struct {
	db *badger.DB
}

// OpenBadger opens (creating if needed) a badger database at path.
func OpenBadger(path string) (*BadgerKV, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open store at %s: %w", path, err)
	}

	return &BadgerKV{db: db}, nil
}

// NewBadgerKV wraps an already-open badger database.
func NewBadgerKV(db *badger.DB) *BadgerKV {
	return &BadgerKV{db: db}
}

// Get implements KV.
func (s *BadgerKV) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read key %s: %w", key, err)
	}

	return value, true, nil
}

// Set implements KV.
func (s *BadgerKV) Set(key string, value []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

// Delete implements KV. Deleting an absent key is a no-op.
func (s *BadgerKV) Delete(key string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying database.
func (s *BadgerKV) Close() error {
	return s.db.Close()
}
