package catalog

import "sync"

// CacheRepository is a minimal string cache. Get's second return
// reports presence; Set overwrites silently.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// MemoryCache is an in-process CacheRepository, safe for concurrent use.
type MemoryCache struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryCache creates an empty in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{data: make(map[string]string)}
}

func (m *MemoryCache) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.data[key]
	return val, ok
}

func (m *MemoryCache) Set(key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}
