package storage

import (
	"sync"

	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/models"
)

// MemoryStore is an in-process Backend for tests and dry runs.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string][]byte
	history []models.NotificationRecord
	// FailWrites makes PutRecord return this error when set.
	FailWrites error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]byte)}
}

// NewMemory returns a ready Store over a fresh MemoryStore.
func NewMemory() *Store {
	return New(NewMemoryStore())
}

func (m *MemoryStore) Init() error  { return nil }
func (m *MemoryStore) Load() error  { return nil }
func (m *MemoryStore) Close() error { return nil }

func (m *MemoryStore) GetRecord(name string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.records[name]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), data...), true, nil
}

func (m *MemoryStore) PutRecord(name string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	m.records[name] = append([]byte(nil), value...)
	return nil
}

// SetRaw stores bytes verbatim, bypassing encoding.
func (m *MemoryStore) SetRaw(name string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[name] = value
}

func (m *MemoryStore) LogNotification(rec models.NotificationRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history = append(m.history, rec)
	return nil
}

func (m *MemoryStore) RecentNotifications(limit int) ([]models.NotificationRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.NotificationRecord, 0, len(m.history))
	for i := len(m.history) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, m.history[i])
	}
	return out, nil
}

func (m *MemoryStore) GetConfigPath() string {
	return ":memory:"
}
