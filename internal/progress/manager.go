package progress

import (
	"log"
	"strings"
	"sync"
)

// Manager hands out one Tracker per profile, constructing each lazily on
// first use so every request for the same profile shares the same
// in-memory state.
type Manager struct {
	mu       sync.Mutex
	store    Store
	logger   *log.Logger
	trackers map[string]*Tracker
}

func NewManager(store Store, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{
		store:    store,
		logger:   logger,
		trackers: map[string]*Tracker{},
	}
}

// ForProfile returns the tracker for a profile id. Blank ids map to the
// "default" profile, matching a single-save installation.
func (m *Manager) ForProfile(id string) *Tracker {
	id = strings.TrimSpace(id)
	if id == "" {
		id = "default"
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.trackers[id]; ok {
		return t
	}
	t := NewTracker(m.store, id, m.logger)
	m.trackers[id] = t
	return t
}
