package kinds

import (
	"cmp"
	"slices"

	"github.com/mesh-intelligence/satchel/internal/codec"
	"github.com/mesh-intelligence/satchel/pkg/types"
)

// MapKind stores map[K]V. Each entry is written as key, pair separator,
// value; entries are sorted by encoded key and joined with the item
// separator.
type MapKind[K comparable, V any] struct {
	key   types.Kind[K]
	value types.Kind[V]
}

// Map returns a map kind over key and value kinds.
func Map[K comparable, V any](key types.Kind[K], value types.Kind[V]) *MapKind[K, V] {
	return &MapKind[K, V]{key: key, value: value}
}

// Key returns the key kind.
func (k *MapKind[K, V]) Key() types.Kind[K] { return k.key }

// Value returns the value kind.
func (k *MapKind[K, V]) Value() types.Kind[V] { return k.value }

// Signature returns "map<key,value>".
func (k *MapKind[K, V]) Signature() string {
	return "map<" + k.key.Signature() + "," + k.value.Signature() + ">"
}

// Zero returns an empty, non-nil map.
func (k *MapKind[K, V]) Zero() map[K]V { return map[K]V{} }

// Serialize encodes every entry.
func (k *MapKind[K, V]) Serialize(v map[K]V) string {
	type entry struct{ key, text string }
	entries := make([]entry, 0, len(v))
	for mk, mv := range v {
		ks := k.key.Serialize(mk)
		entries = append(entries, entry{key: ks, text: codec.Pairs.Join(ks, k.value.Serialize(mv))})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		if c := cmp.Compare(a.key, b.key); c != 0 {
			return c
		}
		return cmp.Compare(a.text, b.text)
	})
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = e.text
	}
	return codec.Items.Join(parts...)
}

// Deserialize decodes every well-formed entry. An entry that does not split
// into exactly a key and a value is skipped; the rest still decode. When two
// entries decode to the same key the later one wins.
func (k *MapKind[K, V]) Deserialize(s string, _ map[K]V) map[K]V {
	out := map[K]V{}
	if s == "" {
		return out
	}
	for _, entry := range codec.Items.Split(s) {
		kv := codec.Pairs.Split(entry)
		if len(kv) != 2 {
			continue
		}
		out[k.key.Deserialize(kv[0], k.key.Zero())] = k.value.Deserialize(kv[1], k.value.Zero())
	}
	return out
}
