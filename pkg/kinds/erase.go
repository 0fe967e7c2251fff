package kinds

import "github.com/mesh-intelligence/satchel/pkg/types"

// Erase adapts a typed kind to Kind[any] so kinds can be assembled at run
// time, for example from a schema file. Values of the wrong dynamic type
// serialize as the kind's zero.
func Erase[T any](k types.Kind[T]) types.Kind[any] {
	if e, ok := any(k).(types.Kind[any]); ok {
		return e
	}
	return erased[T]{kind: k}
}

type erased[T any] struct {
	kind types.Kind[T]
}

func (e erased[T]) Signature() string { return e.kind.Signature() }

func (e erased[T]) Zero() any { return e.kind.Zero() }

func (e erased[T]) Serialize(v any) string {
	t, ok := v.(T)
	if !ok {
		t = e.kind.Zero()
	}
	return e.kind.Serialize(t)
}

func (e erased[T]) Deserialize(s string, fallback any) any {
	fb, ok := fallback.(T)
	if !ok {
		fb = e.kind.Zero()
	}
	return e.kind.Deserialize(s, fb)
}
