package ui

import (
	"sync"

	"github.com/structaware/structaware-go/storage"
)

// Loading owns the one-time first-login animation marker, persisted under
// the fixed "hasSeenLoading" key. Independent of auth state.
type Loading struct {
	mu      sync.Mutex
	backing storage.Storage
}

// NewLoading creates the first-login loading controller.
func NewLoading(backing storage.Storage) *Loading {
	return &Loading{backing: backing}
}

// TriggerFirstLogin reports whether the first-login animation should play,
// true exactly once per installation.
func (l *Loading) TriggerFirstLogin() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, seen := l.backing.Get(storage.KeyHasSeenLoading); seen {
		return false
	}
	_ = l.backing.Put(storage.KeyHasSeenLoading, "true")
	return true
}
