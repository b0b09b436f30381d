// Package record implements the CRUD and query layer over one key-value key
// per record kind. Every mutation reads the full sequence, changes it in
// memory and writes it back whole; ordering is insertion order and is never
// changed by this layer.
package record

import (
	"errors"
	"math/rand"
	"sync/atomic"
	"time"

	"finance-planner/internal/kvstore"
)

// ErrNotFound is returned when an id does not match any stored record.
// Callers can tell a no-op apart from a storage failure with errors.Is.
var ErrNotFound = errors.New("record not found")

// Record constrains a repository element: a pointer type carrying a numeric
// identity that the repository assigns on Add.
type Record[T any] interface {
	*T
	RecordID() int64
	Stamp(id int64, createdAt string)
}

var lastID int64

// NewID generates a record identifier from the current time in milliseconds
// plus a sub-millisecond random offset. A monotonic guard keeps ids unique
// within one process even when several records are added in the same
// millisecond.
func NewID() int64 {
	id := time.Now().UnixMilli()*1000 + rand.Int63n(1000)
	for {
		last := atomic.LoadInt64(&lastID)
		if id <= last {
			id = last + 1
		}
		if atomic.CompareAndSwapInt64(&lastID, last, id) {
			return id
		}
	}
}

// Repository is the generic read-modify-write store for one record kind.
type Repository[T any, P Record[T]] struct {
	store kvstore.Store
	key   string
	now   func() time.Time
}

// NewRepository builds a repository persisting under the given key.
func NewRepository[T any, P Record[T]](store kvstore.Store, key string) *Repository[T, P] {
	return &Repository[T, P]{store: store, key: key, now: time.Now}
}

// GetAll returns every record in insertion order.
func (r *Repository[T, P]) GetAll() ([]T, error) {
	return kvstore.ReadSeq[T](r.store, r.key)
}

// Filter returns the records for which keep is true, preserving order.
func (r *Repository[T, P]) Filter(keep func(*T) bool) ([]T, error) {
	seq, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(seq))
	for i := range seq {
		if keep(&seq[i]) {
			out = append(out, seq[i])
		}
	}
	return out, nil
}

// Add stamps rec with a generated id and creation timestamp, appends it and
// persists. Caller-supplied id/created_at are always overwritten. Returns the
// stored record.
func (r *Repository[T, P]) Add(rec *T) (*T, error) {
	seq, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	P(rec).Stamp(NewID(), r.now().Format(time.RFC3339))
	seq = append(seq, *rec)
	if err := kvstore.WriteSeq(r.store, r.key, seq); err != nil {
		return nil, err
	}
	return rec, nil
}

// Update locates the record by id, applies the mutation and persists.
// Returns ErrNotFound if no record matches.
func (r *Repository[T, P]) Update(id int64, apply func(*T)) (*T, error) {
	seq, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range seq {
		if P(&seq[i]).RecordID() != id {
			continue
		}
		apply(&seq[i])
		if err := kvstore.WriteSeq(r.store, r.key, seq); err != nil {
			return nil, err
		}
		out := seq[i]
		return &out, nil
	}
	return nil, ErrNotFound
}

// Delete removes the record with the given id. Deletion is permanent.
// Returns ErrNotFound if no record matches; the sequence is only written
// back when something was actually removed.
func (r *Repository[T, P]) Delete(id int64) error {
	seq, err := r.GetAll()
	if err != nil {
		return err
	}
	kept := make([]T, 0, len(seq))
	for i := range seq {
		if P(&seq[i]).RecordID() != id {
			kept = append(kept, seq[i])
		}
	}
	if len(kept) == len(seq) {
		return ErrNotFound
	}
	return kvstore.WriteSeq(r.store, r.key, kept)
}

// ClearAll replaces the sequence with an empty one.
func (r *Repository[T, P]) ClearAll() error {
	return kvstore.WriteSeq(r.store, r.key, []T{})
}
