package progress

import "sync"

// Store is the persistence slot a tracker saves into. Implementations hold
// one opaque document per profile key.
type Store interface {
	// Read returns the stored document for key, or ok=false when no
	// document exists. Corrupt contents are the caller's problem: the
	// tracker treats anything it cannot decode as "no snapshot".
	Read(key string) (data []byte, ok bool, err error)
	// Write replaces the document for key.
	Write(key string, data []byte) error
	// Delete removes the document for key. Deleting a missing key is not
	// an error.
	Delete(key string) error
}

// MemoryStore keeps documents in a map. Used by tests and ephemeral play.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: map[string][]byte{}}
}

func (m *MemoryStore) Read(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.docs[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, true, nil
}

func (m *MemoryStore) Write(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b := make([]byte, len(data))
	copy(b, data)
	m.docs[key] = b
	return nil
}

func (m *MemoryStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.docs, key)
	return nil
}
