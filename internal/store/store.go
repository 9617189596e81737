// Package store implements flat-file persistence for named collections of
// JSON records. Every write is a full read-modify-write of the collection;
// a per-collection mutex makes each cycle single-flight within the process.
package store

import (
	"encoding/json"
	"sync"
	"time"

	"amica/internal/observability"

	"github.com/google/uuid"
)

// Collection names. One JSON array file per name under the data directory.
const (
	Users          = "users"
	LostItems      = "lost-items"
	FoundItems     = "found-items"
	BorrowRequests = "borrow-items"
	LendItems      = "lend-items"
	Activities     = "activities"
	Posts          = "posts"
)

// AllCollections lists every known collection, ensured at process start.
func AllCollections() []string {
	return []string{Users, LostItems, FoundItems, BorrowRequests, LendItems, Activities, Posts}
}

// Entity is implemented by every persisted record type (via models.Record).
// The store uses it to stamp identity and timestamps.
type Entity interface {
	RecordID() string
	SetRecordID(id string)
	Created() time.Time
	SetCreated(t time.Time)
	Touch(t time.Time)
}

// record constrains a pointer-to-record type for the generic operations.
type record[T any] interface {
	*T
	Entity
}

// Store provides collection-level operations over an injectable Backend.
type Store struct {
	backend Backend

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New returns a Store over the given backend.
func New(backend Backend) *Store {
	return &Store{
		backend: backend,
		locks:   make(map[string]*sync.Mutex),
	}
}

// NewFileStore returns a Store persisting to JSON files under dir.
func NewFileStore(dir string) *Store {
	return New(NewFileBackend(dir))
}

// EnsureCollection idempotently creates the backing document for name.
func (s *Store) EnsureCollection(name string) error {
	lock := s.collectionLock(name)
	lock.Lock()
	defer lock.Unlock()
	return s.backend.Ensure(name)
}

// Ready reports whether the backing medium is readable. Used by the
// readiness probe.
func (s *Store) Ready() error {
	_, err := s.backend.Read(Users)
	return err
}

// collectionLock returns the mutex guarding read-modify-write cycles for name.
func (s *Store) collectionLock(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[name]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[name] = lock
	}
	return lock
}

func (s *Store) read(name string, out any) error {
	data, err := s.backend.Read(name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		observability.StoreErrors.WithLabelValues(name, "decode").Inc()
		return err
	}
	return nil
}

func (s *Store) write(name string, records any) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	if err := s.backend.Write(name, data); err != nil {
		observability.StoreErrors.WithLabelValues(name, "write").Inc()
		return err
	}
	return nil
}

// ReadAll returns the full ordered sequence persisted for name.
func ReadAll[T any](s *Store, name string) ([]T, error) {
	defer observability.TrackStoreOp(name, "read_all")()
	lock := s.collectionLock(name)
	lock.Lock()
	defer lock.Unlock()

	var records []T
	if err := s.read(name, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// WriteAll atomically replaces the stored sequence for name.
func WriteAll[T any](s *Store, name string, records []T) error {
	defer observability.TrackStoreOp(name, "write_all")()
	lock := s.collectionLock(name)
	lock.Lock()
	defer lock.Unlock()

	if records == nil {
		records = []T{}
	}
	return s.write(name, records)
}

// Replace runs fn on the decoded collection under its lock and persists the
// returned sequence when fn reports a change. It is the primitive every
// mutating operation builds on.
func Replace[T any](s *Store, name string, fn func(records []T) ([]T, bool, error)) error {
	lock := s.collectionLock(name)
	lock.Lock()
	defer lock.Unlock()

	var records []T
	if err := s.read(name, &records); err != nil {
		return err
	}

	updated, changed, err := fn(records)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	if updated == nil {
		updated = []T{}
	}
	return s.write(name, updated)
}

// Append adds rec to the end of the collection, assigning a fresh id and
// createdAt when the caller did not supply them.
func Append[T any, P record[T]](s *Store, name string, rec T) (T, error) {
	defer observability.TrackStoreOp(name, "append")()

	p := P(&rec)
	if p.RecordID() == "" {
		p.SetRecordID(uuid.NewString())
	}
	if p.Created().IsZero() {
		p.SetCreated(time.Now().UTC())
	}

	err := Replace(s, name, func(records []T) ([]T, bool, error) {
		return append(records, rec), true, nil
	})
	return rec, err
}

// FindOne returns a copy of the first record matching pred, or nil when no
// record matches.
func FindOne[T any](s *Store, name string, pred func(*T) bool) (*T, error) {
	defer observability.TrackStoreOp(name, "find_one")()

	records, err := ReadAll[T](s, name)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if pred(&records[i]) {
			match := records[i]
			return &match, nil
		}
	}
	return nil, nil
}

// UpdateWhere applies patch to the first record matching pred, stamps its
// updatedAt, persists the collection, and returns the updated record. It
// returns nil without writing when no record matches.
func UpdateWhere[T any, P record[T]](s *Store, name string, pred func(*T) bool, patch func(*T)) (*T, error) {
	defer observability.TrackStoreOp(name, "update_where")()

	var updated *T
	err := Replace(s, name, func(records []T) ([]T, bool, error) {
		for i := range records {
			if !pred(&records[i]) {
				continue
			}
			patch(&records[i])
			P(&records[i]).Touch(time.Now().UTC())
			match := records[i]
			updated = &match
			return records, true, nil
		}
		return records, false, nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteWhere removes every record matching pred and reports whether any
// record was removed. The collection is rewritten only when its length changed.
func DeleteWhere[T any](s *Store, name string, pred func(*T) bool) (bool, error) {
	defer observability.TrackStoreOp(name, "delete_where")()

	removed := false
	err := Replace(s, name, func(records []T) ([]T, bool, error) {
		kept := records[:0:0]
		for i := range records {
			if pred(&records[i]) {
				continue
			}
			kept = append(kept, records[i])
		}
		if len(kept) == len(records) {
			return records, false, nil
		}
		removed = true
		return kept, true, nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}
