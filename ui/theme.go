package ui

import (
	"sync"

	"github.com/structaware/structaware-go/storage"
)

// Theme tracks the dark/light mode choice, persisted under the fixed
// "theme" key. With no saved choice the system preference supplied at
// construction wins.
type Theme struct {
	mu      sync.Mutex
	backing storage.Storage
	dark    bool
}

// NewTheme initializes the theme from storage, falling back to the system
// preference.
func NewTheme(backing storage.Storage, systemPrefersDark bool) *Theme {
	saved, ok := backing.Get(storage.KeyTheme)
	dark := saved == "dark" || (!ok && systemPrefersDark)
	return &Theme{backing: backing, dark: dark}
}

// Dark reports whether dark mode is active.
func (t *Theme) Dark() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dark
}

// Toggle flips the mode, persists the choice and returns the new mode.
func (t *Theme) Toggle() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.dark = !t.dark
	value := "light"
	if t.dark {
		value = "dark"
	}
	_ = t.backing.Put(storage.KeyTheme, value)
	return t.dark
}
