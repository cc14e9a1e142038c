package draft

import (
	"sync"

	"go.uber.org/zap"

	"github.com/ikaro-souza/warlike-spiders/internal/storage"
)

const storageKeyPrefix = "orderCreationData:"

// Manager hands out one Store per client session key, constructing it
// lazily from persisted state on first use.
type Manager struct {
	storage storage.Store
	logger  *zap.Logger

	mu     sync.Mutex
	stores map[string]*Store
}

func NewManager(stor storage.Store, logger *zap.Logger) *Manager {
	return &Manager{
		storage: stor,
		logger:  logger,
		stores:  make(map[string]*Store),
	}
}

func (m *Manager) ForSession(sessionKey string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	store, ok := m.stores[sessionKey]
	if !ok {
		store = NewStore(storageKeyPrefix+sessionKey, m.storage, m.logger)
		m.stores[sessionKey] = store
	}
	return store
}
