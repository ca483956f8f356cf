package storage

import (
	"crewcast/domain"
	"crewcast/errors"
	"encoding/json"
	goerrors "errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

const identityPrefix = "identity:"

// IdentityStore keeps resolved identities on disk so names survive restarts.
// Identities never change once resolved, so entries are written once and never expire.
type IdentityStore struct {
	db  *badger.DB
	log *slog.Logger
}

func NewIdentityStore(db *badger.DB, log *slog.Logger) *IdentityStore {
	return &IdentityStore{db: db, log: log}
}

// OpenIdentityStore opens a badger database at path.
func OpenIdentityStore(path string, log *slog.Logger, debug bool) (*IdentityStore, error) {
	options := badger.DefaultOptions(path)
	if debug {
		options = options.WithLoggingLevel(badger.DEBUG)
	} else {
		options = options.WithLoggingLevel(badger.WARNING)
	}
	db, err := badger.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open identity store at %s: %w", path, err)
	}
	return NewIdentityStore(db, log), nil
}

func identityKey(nodeID string) []byte {
	return []byte(identityPrefix + nodeID)
}

// Get returns errors.ErrNotFound when nodeID was never stored.
func (s *IdentityStore) Get(nodeID string) (domain.NodeIdentity, error) {
	var identity domain.NodeIdentity
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(identityKey(nodeID))
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			return json.Unmarshal(v, &identity)
		})
	})
	if goerrors.Is(err, badger.ErrKeyNotFound) {
		return domain.NodeIdentity{}, fmt.Errorf("%w: identity %s", errors.ErrNotFound, nodeID)
	}
	if err != nil {
		return domain.NodeIdentity{}, fmt.Errorf("read identity %s: %w", nodeID, err)
	}
	return identity, nil
}

func (s *IdentityStore) Put(identity domain.NodeIdentity) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(identityKey(identity.NodeID), data)
	})
}

// Count returns the number of stored identities.
func (s *IdentityStore) Count() (int, error) {
	count := 0
	prefix := []byte(identityPrefix)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

// List returns every stored identity in key order. Undecodable entries are skipped.
func (s *IdentityStore) List() ([]domain.NodeIdentity, error) {
	var identities []domain.NodeIdentity
	prefix := []byte(identityPrefix)
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(v []byte) error {
				var identity domain.NodeIdentity
				if err := json.Unmarshal(v, &identity); err != nil {
					s.log.Warn("Skipping undecodable identity", "key", string(item.Key()), "err", err)
					return nil
				}
				identities = append(identities, identity)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return identities, err
}

func (s *IdentityStore) Close() error {
	s.log.Debug("Closing identity store")
	return s.db.Close()
}
