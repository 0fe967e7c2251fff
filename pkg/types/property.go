package types

// Descriptor is the type-erased view of a property definition that a store
// iterates over. Property[T] is the only implementation most callers need.
type Descriptor interface {
	// Name is the key written into the persisted string.
	Name() string

	// Signature is the kind signature; see Kind.Signature.
	Signature() string

	// DefaultValue returns the default as an untyped value.
	DefaultValue() any

	// Encode serializes v. A value of the wrong type encodes the default.
	Encode(v any) string

	// Decode deserializes s, falling back to the default.
	Decode(s string) any

	// Accepts reports whether v has the descriptor's value type.
	Accepts(v any) bool
}

// Property defines one named, typed slot. It is immutable after construction
// and can be shared by any number of stores.
type Property[T any] struct {
	name string
	kind Kind[T]
	def  T
}

var _ Descriptor = (*Property[string])(nil)

// NewProperty pairs a name with a kind and a default value of that kind.
func NewProperty[T any](name string, kind Kind[T], def T) *Property[T] {
	return &Property[T]{name: name, kind: kind, def: def}
}

// Define is NewProperty with the kind's own zero value as the default.
func Define[T any](name string, kind Kind[T]) *Property[T] {
	return NewProperty(name, kind, kind.Zero())
}

// Name returns the property name.
func (p *Property[T]) Name() string { return p.name }

// Kind returns the property's kind.
func (p *Property[T]) Kind() Kind[T] { return p.kind }

// Signature returns the kind signature.
func (p *Property[T]) Signature() string { return p.kind.Signature() }

// Default returns the typed default value.
func (p *Property[T]) Default() T { return p.def }

// DefaultValue returns the default value as any.
func (p *Property[T]) DefaultValue() any { return p.def }

// Encode serializes v, or the default when v is not a T.
func (p *Property[T]) Encode(v any) string {
	t, ok := v.(T)
	if !ok {
		t = p.def
	}
	return p.kind.Serialize(t)
}

// Decode deserializes s with the default as fallback.
func (p *Property[T]) Decode(s string) any {
	return p.kind.Deserialize(s, p.def)
}

// Accepts reports whether v is a T.
func (p *Property[T]) Accepts(v any) bool {
	_, ok := v.(T)
	return ok
}

// Normalize runs v through its kind once, applying trims and clamps the
// same way a write followed by a read would.
func (p *Property[T]) Normalize(v T) T {
	return p.kind.Deserialize(p.kind.Serialize(v), p.def)
}

// SameDescriptor reports whether a and b describe the same property: equal
// names and equal kind signatures.
func SameDescriptor(a, b Descriptor) bool {
	return a.Name() == b.Name() && a.Signature() == b.Signature()
}
