package kinds

import (
	"maps"
	"slices"

	"github.com/mesh-intelligence/satchel/internal/codec"
	"github.com/mesh-intelligence/satchel/pkg/types"
)

// SetKind stores unique members as map[T]struct{}. Members are written in
// order of their encoded text so the encoding is deterministic.
type SetKind[T comparable] struct {
	elem types.Kind[T]
}

// Set returns a set kind over elem.
func Set[T comparable](elem types.Kind[T]) *SetKind[T] {
	return &SetKind[T]{elem: elem}
}

// SetOf builds a set value from members.
func SetOf[T comparable](members ...T) map[T]struct{} {
	s := make(map[T]struct{}, len(members))
	for _, m := range members {
		s[m] = struct{}{}
	}
	return s
}

// Elem returns the member kind.
func (k *SetKind[T]) Elem() types.Kind[T] { return k.elem }

// Signature returns "set<elem>".
func (k *SetKind[T]) Signature() string { return "set<" + k.elem.Signature() + ">" }

// Zero returns an empty, non-nil set.
func (k *SetKind[T]) Zero() map[T]struct{} { return map[T]struct{}{} }

// Serialize encodes each member and joins them in sorted order.
func (k *SetKind[T]) Serialize(v map[T]struct{}) string {
	parts := serializeAll(k.elem, slices.Collect(maps.Keys(v)))
	slices.Sort(parts)
	return codec.Items.Join(slices.Compact(parts)...)
}

// Deserialize decodes each fragment and unions the results.
func (k *SetKind[T]) Deserialize(s string, _ map[T]struct{}) map[T]struct{} {
	out := map[T]struct{}{}
	if s == "" {
		return out
	}
	for _, p := range codec.Items.Split(s) {
		out[k.elem.Deserialize(p, k.elem.Zero())] = struct{}{}
	}
	return out
}
