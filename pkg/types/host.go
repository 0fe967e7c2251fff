package types

// Host owns the declared property set and the persisted string for one
// object. The store calls Properties once per materialization, reads the
// persisted string on first access, and writes the full encoding after
// every mutation.
type Host interface {
	Properties() []Descriptor
	PersistedData() (string, error)
	SetPersistedData(data string) error
}
