package store

import (
	"fmt"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

// Get returns the typed value of p.
// Returns ErrPropertyNotFound if p is not declared by the store's host.
func Get[T any](s *Store, p *types.Property[T]) (T, error) {
	var zero T
	v, err := s.Value(p)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s holds %T", types.ErrTypeMismatch, p.Name(), v)
	}
	return t, nil
}

// Set replaces the value of p and persists the whole store.
// Returns ErrPropertyNotFound if p is not declared by the store's host.
func Set[T any](s *Store, p *types.Property[T], v T) error {
	return s.SetValue(p, v)
}
