package session

import (
	"sync"
	"time"
)

// memoryStore keeps sessions in process memory. It is the fallback when
// Redis is not configured; entries expire lazily on access.
type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	data      map[string]interface{}
	expiresAt time.Time
}

func newMemoryStore() *memoryStore {
	return &memoryStore{entries: make(map[string]memoryEntry)}
}

func (m *memoryStore) Load(id string) (map[string]interface{}, bool) {
	m.mu.RLock()
	e, ok := m.entries[id]
	m.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		m.Delete(id)
		return nil, false
	}
	return e.data, true
}

func (m *memoryStore) Save(id string, data map[string]interface{}, ttl time.Duration) error {
	m.mu.Lock()
	m.entries[id] = memoryEntry{data: data, expiresAt: time.Now().Add(ttl)}
	m.mu.Unlock()
	return nil
}

func (m *memoryStore) Delete(id string) {
	m.mu.Lock()
	delete(m.entries, id)
	m.mu.Unlock()
}
