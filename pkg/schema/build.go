package schema

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

// Build turns fields into descriptors, in order, using the built-in registry.
func Build(fields []Field) ([]types.Descriptor, error) {
	return NewRegistry().Build(fields)
}

// Build turns fields into descriptors, in order.
// Returns ErrInvalidName for an empty name, ErrDuplicateName when two fields
// share a name, and ErrInvalidKind when a kind does not parse.
func (r *Registry) Build(fields []Field) ([]types.Descriptor, error) {
	descs := make([]types.Descriptor, 0, len(fields))
	seen := make(map[string]bool, len(fields))
	for i, field := range fields {
		if strings.TrimSpace(field.Name) == "" {
			return nil, fmt.Errorf("property %d: %w: empty name", i, types.ErrInvalidName)
		}
		if seen[field.Name] {
			return nil, fmt.Errorf("property %s: %w", field.Name, types.ErrDuplicateName)
		}
		seen[field.Name] = true

		d, err := r.Descriptor(field)
		if err != nil {
			return nil, fmt.Errorf("property %s: %w", field.Name, err)
		}
		descs = append(descs, d)
	}
	return descs, nil
}

// Descriptor builds one descriptor. The default is decoded from
// field.Default, or is the kind's zero when field.Default is empty.
func (r *Registry) Descriptor(field Field) (*types.Property[any], error) {
	k, err := r.Kind(field)
	if err != nil {
		return nil, err
	}
	def := k.Zero()
	if field.Default != "" {
		def = k.Deserialize(field.Default, def)
	}
	return types.NewProperty(field.Name, k, def), nil
}

// Lookup returns the descriptor named name.
// Returns ErrPropertyNotFound if no descriptor has that name.
func Lookup(descs []types.Descriptor, name string) (types.Descriptor, error) {
	for _, d := range descs {
		if d.Name() == name {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", types.ErrPropertyNotFound, name)
}
