package store

import (
	"fmt"
	"log/slog"
	"maps"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

// phase tracks whether the store has pulled its values from the host yet.
type phase uint8

const (
	phaseDeclared phase = iota
	phaseLoaded
)

func (p phase) String() string {
	if p == phaseLoaded {
		return "loaded"
	}
	return "declared"
}

// Store is the live mapping from a host's descriptors to current values.
type Store struct {
	host   types.Host
	logger *slog.Logger

	phase    phase
	declared []types.Descriptor
	values   map[string]any
}

// New creates a store for host in the declared phase. Nothing is read from
// the host until the first access.
func New(host types.Host, opts ...OptionFunc) *Store {
	s := &Store{host: host}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Loaded reports whether the store has been materialized.
func (s *Store) Loaded() bool { return s.phase == phaseLoaded }

// Reload discards the live values. The next access materializes again from
// the host's current descriptors and persisted string.
func (s *Store) Reload() {
	s.phase = phaseDeclared
	s.declared = nil
	s.values = nil
}

// Value returns the current value of d.
// Returns ErrPropertyNotFound if d is not declared by the host.
func (s *Store) Value(d types.Descriptor) (any, error) {
	if err := s.materialize(); err != nil {
		return nil, err
	}
	decl, err := s.lookup(d)
	if err != nil {
		return nil, err
	}
	return s.values[decl.Name()], nil
}

// SetValue replaces the value of d and persists the whole store. The value
// is normalized through d's kind first, so clamps and trims are visible to
// the next Value call. If the host rejects the write the previous value is
// kept.
// Returns ErrPropertyNotFound if d is not declared by the host and
// ErrTypeMismatch if v does not have d's value type.
func (s *Store) SetValue(d types.Descriptor, v any) error {
	if err := s.materialize(); err != nil {
		return err
	}
	decl, err := s.lookup(d)
	if err != nil {
		return err
	}
	if !decl.Accepts(v) {
		return fmt.Errorf("%w: %s is %s, got %T", types.ErrTypeMismatch, decl.Name(), decl.Signature(), v)
	}
	return s.replace(decl, decl.Decode(decl.Encode(v)))
}

// Clear resets d to its default and persists the whole store.
// Returns ErrPropertyNotFound if d is not declared by the host.
func (s *Store) Clear(d types.Descriptor) error {
	if err := s.materialize(); err != nil {
		return err
	}
	decl, err := s.lookup(d)
	if err != nil {
		return err
	}
	return s.replace(decl, decl.DefaultValue())
}

// Values returns a copy of every value keyed by property name.
func (s *Store) Values() (map[string]any, error) {
	if err := s.materialize(); err != nil {
		return nil, err
	}
	return maps.Clone(s.values), nil
}

// Descriptors returns the declared descriptors in declared order.
func (s *Store) Descriptors() ([]types.Descriptor, error) {
	if err := s.materialize(); err != nil {
		return nil, err
	}
	return append([]types.Descriptor(nil), s.declared...), nil
}

// Encode returns the persisted form of the current values.
func (s *Store) Encode() (string, error) {
	if err := s.materialize(); err != nil {
		return "", err
	}
	return Encode(s.declared, s.values), nil
}

func (s *Store) replace(d types.Descriptor, v any) error {
	prev := s.values[d.Name()]
	s.values[d.Name()] = v
	data := Encode(s.declared, s.values)
	if err := s.host.SetPersistedData(data); err != nil {
		s.values[d.Name()] = prev
		return fmt.Errorf("persisting %s: %w", d.Name(), err)
	}
	s.logger.Debug("property set", "property", d.Name(), "size", len(data))
	return nil
}

// lookup finds the declared descriptor equal to d by name and signature.
func (s *Store) lookup(d types.Descriptor) (types.Descriptor, error) {
	for _, decl := range s.declared {
		if types.SameDescriptor(decl, d) {
			return decl, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", types.ErrPropertyNotFound, d.Name())
}

// materialize moves the store from declared to loaded: defaults first, then
// the host's persisted string decoded over them.
func (s *Store) materialize() error {
	if s.phase == phaseLoaded {
		return nil
	}
	data, err := s.host.PersistedData()
	if err != nil {
		return fmt.Errorf("reading persisted data: %w", err)
	}

	declared := dedupe(s.host.Properties(), s.logger)
	values, unknown := Decode(declared, data)
	if len(unknown) > 0 {
		s.logger.Debug("dropped unknown properties", "names", unknown)
	}

	s.declared = declared
	s.values = values
	s.phase = phaseLoaded
	s.logger.Debug("store materialized", "properties", len(declared), "size", len(data))
	return nil
}

// dedupe keeps the first descriptor for each name so every name has exactly
// one slot.
func dedupe(descs []types.Descriptor, logger *slog.Logger) []types.Descriptor {
	seen := make(map[string]bool, len(descs))
	out := make([]types.Descriptor, 0, len(descs))
	for _, d := range descs {
		if seen[d.Name()] {
			logger.Warn("duplicate property name ignored", "property", d.Name())
			continue
		}
		seen[d.Name()] = true
		out = append(out, d)
	}
	return out
}
