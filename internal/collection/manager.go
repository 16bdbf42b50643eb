package collection

import (
	"context"
	"fmt"
	"sync"

	"github.com/studydesk/studydesk/internal/codec"
	"github.com/studydesk/studydesk/internal/model"
	"github.com/studydesk/studydesk/internal/storage"
	"github.com/studydesk/studydesk/pkg/logger"
	"github.com/studydesk/studydesk/pkg/metrics"
)

// Manager owns the in-memory ordered collection for one entity type and
// keeps it mirrored to its storage key. Insertion order is preserved; no
// sorting or deduplication happens here.
//
// Mutating operations persist synchronously under the manager's lock, so
// writes reach the store in operation order and an older snapshot can never
// overwrite a newer one. A persist failure is returned to the caller but the
// in-memory state is kept, so the visible list does not lose the edit.
type Manager[T model.Record[T]] struct {
	mu    sync.Mutex
	key   string
	store storage.Store
	items []T
}

func NewManager[T model.Record[T]](store storage.Store, key string) *Manager[T] {
	return &Manager[T]{key: key, store: store, items: []T{}}
}

// Key returns the storage key this manager persists under.
func (m *Manager[T]) Key() string { return m.key }

// Hydrate replaces the in-memory collection wholesale from storage. Called
// once at startup. An absent key yields an empty collection. On decode
// failure the collection falls back to empty and the error is returned so a
// supervising layer can report it; corrupted data is never shown as truth.
func (m *Manager[T]) Hydrate(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok, err := m.store.Load(ctx, m.key)
	if err != nil {
		logger.Errorf("hydrate %s: load failed: %v", m.key, err)
		return fmt.Errorf("load %s: %w", m.key, err)
	}
	if !ok {
		m.items = []T{}
		return nil
	}
	items, err := codec.Decode[T](raw)
	if err != nil {
		metrics.DecodeFailures.WithLabelValues(m.key).Inc()
		logger.Errorf("hydrate %s: decode failed, falling back to empty collection: %v", m.key, err)
		m.items = []T{}
		return fmt.Errorf("decode %s: %w", m.key, err)
	}
	m.items = items
	return nil
}

// Records returns a copy of the ordered collection for list rendering.
func (m *Manager[T]) Records() []T {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]T, len(m.items))
	copy(out, m.items)
	return out
}

// Get returns the record with the given id, if present.
func (m *Manager[T]) Get(id string) (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, it := range m.items {
		if it.RecordID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Len returns the number of records currently held.
func (m *Manager[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// Upsert inserts or replaces a record and persists the collection. A record
// with no id gets a fresh one and is appended; a record with an id replaces
// the match in place, keeping its position. An id with no match is appended
// rather than dropped (the record may have been deleted under an open form).
// The committed record is returned with its id set.
func (m *Manager[T]) Upsert(ctx context.Context, rec T) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rec.RecordID() == "" {
		rec = rec.WithID(model.NewID())
		m.items = append(m.items, rec)
		return rec, m.persistLocked(ctx)
	}
	for i := range m.items {
		if m.items[i].RecordID() == rec.RecordID() {
			m.items[i] = rec
			return rec, m.persistLocked(ctx)
		}
	}
	m.items = append(m.items, rec)
	return rec, m.persistLocked(ctx)
}

// Remove deletes the record with the given id and persists. Removing an
// absent id is a no-op, not an error, but still rewrites the store.
func (m *Manager[T]) Remove(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.items[:0]
	for _, it := range m.items {
		if it.RecordID() != id {
			kept = append(kept, it)
		}
	}
	m.items = kept
	return m.persistLocked(ctx)
}

// Persist rewrites the full collection under this manager's key.
func (m *Manager[T]) Persist(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.persistLocked(ctx)
}

func (m *Manager[T]) persistLocked(ctx context.Context) error {
	metrics.PersistTotal.WithLabelValues(m.key).Inc()
	encoded, err := codec.Encode(m.items)
	if err != nil {
		metrics.PersistFailures.WithLabelValues(m.key).Inc()
		logger.Errorf("persist %s: encode failed: %v", m.key, err)
		return err
	}
	if err := m.store.Save(ctx, m.key, encoded); err != nil {
		metrics.PersistFailures.WithLabelValues(m.key).Inc()
		logger.Errorf("persist %s: save failed (in-memory state kept): %v", m.key, err)
		return fmt.Errorf("save %s: %w", m.key, err)
	}
	return nil
}

// AssignmentManager adds the toggle path that only the assignment
// collection has.
type AssignmentManager struct {
	*Manager[model.Assignment]
}

func NewAssignmentManager(store storage.Store) *AssignmentManager {
	return &AssignmentManager{Manager: NewManager[model.Assignment](store, storage.AssignmentsKey)}
}

func NewCourseManager(store storage.Store) *Manager[model.Course] {
	return NewManager[model.Course](store, storage.CoursesKey)
}

// ToggleCompleted flips the completed flag on the matching assignment,
// touching no other field, and persists. No-op if the id is absent.
func (m *AssignmentManager) ToggleCompleted(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Completed = !m.items[i].Completed
			return m.persistLocked(ctx)
		}
	}
	return nil
}
