package store

import (
	"strings"
	"sync"

	"github.com/arthur-debert/gestured/pkg/types"
)

// WildcardApplication matches every application. A config entry with an
// empty name attribute is treated the same way.
const WildcardApplication = "all"

type bindingKey struct {
	application string
	gestureType string
	fingers     string
	direction   string
}

// Memory is an in-memory gesture binding store. The configuration loader
// writes to it (SaveGestureConfig, Clear) from both the main goroutine and
// the watcher goroutine while gesture consumers read, so every access takes
// the lock.
type Memory struct {
	mu       sync.RWMutex
	bindings map[bindingKey]types.GestureBinding
}

// NewMemory creates an empty store
func NewMemory() *Memory {
	return &Memory{
		bindings: make(map[bindingKey]types.GestureBinding),
	}
}

var _ types.Store = (*Memory)(nil)

// SaveGestureConfig registers one gesture binding. A later registration for
// the same (application, gesture, fingers, direction) replaces the earlier
// one, matching document order semantics.
func (m *Memory) SaveGestureConfig(application, gestureType, fingers, direction, actionType string, settings map[string]string) {
	copied := make(map[string]string, len(settings))
	for k, v := range settings {
		copied[k] = v
	}

	key := bindingKey{
		application: normalizeApplication(application),
		gestureType: gestureType,
		fingers:     fingers,
		direction:   direction,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.bindings[key] = types.GestureBinding{
		Application:    application,
		GestureType:    gestureType,
		Fingers:        fingers,
		Direction:      direction,
		ActionType:     actionType,
		ActionSettings: copied,
	}
}

// Clear removes every binding
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bindings = make(map[bindingKey]types.GestureBinding)
}

// Get returns the binding for the given application and gesture. When no
// application-specific binding exists the wildcard entry is consulted.
func (m *Memory) Get(application, gestureType, fingers, direction string) (types.GestureBinding, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	key := bindingKey{
		application: normalizeApplication(application),
		gestureType: gestureType,
		fingers:     fingers,
		direction:   direction,
	}
	if b, ok := m.bindings[key]; ok {
		return b, true
	}

	key.application = WildcardApplication
	b, ok := m.bindings[key]
	return b, ok
}

// Len returns the number of registered bindings
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.bindings)
}

func normalizeApplication(application string) string {
	app := strings.ToLower(strings.TrimSpace(application))
	if app == "" {
		return WildcardApplication
	}
	return app
}
