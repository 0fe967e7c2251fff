package kinds

import (
	"github.com/mesh-intelligence/satchel/internal/codec"
	"github.com/mesh-intelligence/satchel/pkg/types"
)

// ListKind stores an ordered sequence. Duplicates are kept.
type ListKind[T any] struct {
	elem types.Kind[T]
}

// List returns a list kind over elem.
func List[T any](elem types.Kind[T]) *ListKind[T] {
	return &ListKind[T]{elem: elem}
}

// Elem returns the element kind.
func (k *ListKind[T]) Elem() types.Kind[T] { return k.elem }

// Signature returns "list<elem>".
func (k *ListKind[T]) Signature() string { return "list<" + k.elem.Signature() + ">" }

// Zero returns an empty, non-nil slice.
func (k *ListKind[T]) Zero() []T { return []T{} }

// Serialize encodes each element and joins them with the item separator.
func (k *ListKind[T]) Serialize(v []T) string {
	return codec.Items.Join(serializeAll(k.elem, v)...)
}

// Deserialize decodes each fragment independently; fragments that do not
// parse become the element kind's zero. Empty input is an empty list.
func (k *ListKind[T]) Deserialize(s string, _ []T) []T {
	if s == "" {
		return []T{}
	}
	parts := codec.Items.Split(s)
	out := make([]T, 0, len(parts))
	for _, p := range parts {
		out = append(out, k.elem.Deserialize(p, k.elem.Zero()))
	}
	return out
}

func serializeAll[T any](elem types.Kind[T], v []T) []string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = elem.Serialize(x)
	}
	return parts
}
