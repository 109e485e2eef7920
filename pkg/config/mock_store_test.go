package config_test

import (
	"sync"

	"github.com/arthur-debert/gestured/pkg/types"
)

// mockStore records every store call in order. The watcher goroutine writes
// concurrently with test assertions, so access is locked.
type mockStore struct {
	mu       sync.Mutex
	ops      []string
	bindings []types.GestureBinding
}

func newMockStore() *mockStore {
	return &mockStore{}
}

var _ types.Store = (*mockStore)(nil)

func (m *mockStore) SaveGestureConfig(application, gestureType, fingers, direction, actionType string, settings map[string]string) {
	copied := make(map[string]string, len(settings))
	for k, v := range settings {
		copied[k] = v
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.ops = append(m.ops, "save")
	m.bindings = append(m.bindings, types.GestureBinding{
		Application:    application,
		GestureType:    gestureType,
		Fingers:        fingers,
		Direction:      direction,
		ActionType:     actionType,
		ActionSettings: copied,
	})
}

func (m *mockStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ops = append(m.ops, "clear")
	m.bindings = nil
}

func (m *mockStore) Ops() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.ops...)
}

func (m *mockStore) Bindings() []types.GestureBinding {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]types.GestureBinding(nil), m.bindings...)
}
