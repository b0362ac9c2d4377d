package storage

import "sync"

type memoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory returns a Storage that lives for the duration of the process.
func NewMemory() Storage {
	return &memoryStorage{values: map[string]string{}}
}

func (m *memoryStorage) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	return value, ok
}

func (m *memoryStorage) Put(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *memoryStorage) Delete(keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.values, key)
	}
	return nil
}

func (m *memoryStorage) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = map[string]string{}
	return nil
}
