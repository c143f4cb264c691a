// Package store persists board snapshots in BadgerDB, keyed by game
// ID. It is a thin durability layer: the engine itself never touches
// disk.
package store

import (
	"encoding/json"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"

	"fortress_chess/game"
)

const keyPrefix = "game/"

// ErrNotFound is returned when no snapshot exists under the given ID.
var ErrNotFound = errors.New("store: game not found")

// Store wraps BadgerDB for snapshot persistence.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the database under dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "opening store at %s", dir)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSnapshot writes snap under id, replacing any previous snapshot.
func (s *Store) SaveSnapshot(id string, snap game.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return errors.Wrapf(err, "encoding snapshot %s", id)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+id), data)
	})
}

// LoadSnapshot reads the snapshot stored under id.
func (s *Store) LoadSnapshot(id string) (game.Snapshot, error) {
	var snap game.Snapshot
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &snap)
		})
	})
	if err != nil {
		return game.Snapshot{}, errors.Wrapf(err, "loading snapshot %s", id)
	}
	return snap, nil
}

// LoadBoard restores a live board from the snapshot stored under id.
func (s *Store) LoadBoard(id string) (*game.Board, error) {
	snap, err := s.LoadSnapshot(id)
	if err != nil {
		return nil, err
	}
	b, err := game.FromSnapshot(snap)
	if err != nil {
		return nil, errors.Wrapf(err, "restoring board %s", id)
	}
	return b, nil
}

// Delete removes the snapshot under id. Deleting a missing ID is not
// an error.
func (s *Store) Delete(id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(keyPrefix + id))
	})
}

// ListIDs returns every stored game ID.
func (s *Store) ListIDs() ([]string, error) {
	var ids []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(keyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().Key()
			ids = append(ids, string(key[len(prefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "listing games")
	}
	return ids, nil
}
