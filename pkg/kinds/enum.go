package kinds

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

// EnumKind stores one value from a finite declared set, written as the
// variant's bare name.
type EnumKind[E comparable] struct {
	values []E
	name   func(E) string
}

// Enum returns a kind over values, named by name.
func Enum[E comparable](name func(E) string, values ...E) *EnumKind[E] {
	return &EnumKind[E]{values: values, name: name}
}

// Stringers returns a kind over values named by their String method.
func Stringers[E interface {
	comparable
	fmt.Stringer
}](values ...E) *EnumKind[E] {
	return Enum(func(e E) string { return e.String() }, values...)
}

// Choice returns a kind over plain string variants.
func Choice(values ...string) *EnumKind[string] {
	return Enum(func(s string) string { return s }, values...)
}

// Values returns the declared variants in order.
func (k *EnumKind[E]) Values() []E {
	return append([]E(nil), k.values...)
}

// Signature returns "enum<a,b,...>" over the variant names.
func (k *EnumKind[E]) Signature() string {
	names := make([]string, len(k.values))
	for i, v := range k.values {
		names[i] = k.name(v)
	}
	return "enum<" + strings.Join(names, ",") + ">"
}

// Zero returns the first declared variant, or E's zero value when none are
// declared.
func (k *EnumKind[E]) Zero() E {
	if len(k.values) == 0 {
		var zero E
		return zero
	}
	return k.values[0]
}

// Serialize writes the variant name.
func (k *EnumKind[E]) Serialize(v E) string { return k.name(v) }

// Deserialize returns the first declared variant whose name equals s exactly,
// or fallback.
func (k *EnumKind[E]) Deserialize(s string, fallback E) E {
	for _, v := range k.values {
		if k.name(v) == s {
			return v
		}
	}
	return fallback
}

var _ types.Kind[string] = (*EnumKind[string])(nil)
