package manager

import (
	"fmt"
	"sort"

	"github.com/go-zoox/core-utils/safe"
)

// Manager is a goroutine-safe registry of T keyed by id.
type Manager[T any] struct {
	cache *safe.Map
}

func New[T any]() *Manager[T] {
	return &Manager[T]{
		cache: safe.NewMap(),
	}
}

func (m *Manager[T]) Get(id string) (T, error) {
	if instance, ok := m.cache.Get(id).(T); ok {
		return instance, nil
	}

	var t T
	return t, fmt.Errorf("id %s not found", id)
}

func (m *Manager[T]) Set(id string, instance T) error {
	if id == "" {
		return fmt.Errorf("id is required")
	}

	m.cache.Set(id, instance)
	return nil
}

func (m *Manager[T]) Has(id string) bool {
	_, err := m.Get(id)
	return err == nil
}

func (m *Manager[T]) Remove(id string) error {
	if !m.Has(id) {
		return fmt.Errorf("id %s not found", id)
	}

	m.cache.Del(id)
	return nil
}

// Keys returns the registered ids in lexical order.
func (m *Manager[T]) Keys() []string {
	keys := m.cache.Keys()
	sort.Strings(keys)
	return keys
}
