package history

import (
	"encoding/json"
	"fmt"
	"log"

	bolt "go.etcd.io/bbolt"
)

var (
	runsBucket = []byte("runs")
	metaBucket = []byte("meta")
	versionKey = []byte("version")
)

// BboltStore implements Store on a bbolt file.
type BboltStore struct {
	db *bolt.DB
}

// OpenBbolt opens (or creates) the ledger at path. A ledger written by an
// incompatible version fails with ErrIncompatibleVersion.
func OpenBbolt(path string) (*BboltStore, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bbolt database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(runsBucket); err != nil {
			return err
		}
		meta, err := tx.CreateBucketIfNotExists(metaBucket)
		if err != nil {
			return err
		}

		stored := meta.Get(versionKey)
		if stored == nil {
			return meta.Put(versionKey, []byte(Version))
		}
		ok, err := IsCompatibleVersion(string(stored), Version)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: ledger %s, procgen %s", ErrIncompatibleVersion, stored, Version)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	log.Printf("[HISTORY] Bbolt ledger opened at %s", path)

	return &BboltStore{db: db}, nil
}

// SaveRun persists a run, replacing any run with the same ID
func (s *BboltStore) SaveRun(run *Run) error {
	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to encode run: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(runsBucket).Put([]byte(run.ID), data)
	})
}

// GetRun loads a single run
func (s *BboltStore) GetRun(id string) (*Run, error) {
	var run *Run
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(runsBucket).Get([]byte(id))
		if v == nil {
			return ErrRunNotFound
		}
		run = &Run{}
		if err := json.Unmarshal(v, run); err != nil {
			return fmt.Errorf("failed to decode run %s: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return run, nil
}

// ListRuns loads all runs, oldest first. Undecodable entries are skipped.
func (s *BboltStore) ListRuns() ([]*Run, error) {
	var runs []*Run
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(runsBucket).ForEach(func(k, v []byte) error {
			var run Run
			if err := json.Unmarshal(v, &run); err != nil {
				log.Printf("[HISTORY] Warning: Failed to decode run %s: %v", k, err)
				return nil
			}
			runs = append(runs, &run)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sortRuns(runs)
	return runs, nil
}

// Close closes the database
func (s *BboltStore) Close() error {
	return s.db.Close()
}
