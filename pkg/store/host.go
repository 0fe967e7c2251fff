package store

import (
	"errors"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

// MemoryHost keeps the persisted string in memory.
type MemoryHost struct {
	Descriptors []types.Descriptor
	Data        string
}

var _ types.Host = (*MemoryHost)(nil)

// NewMemoryHost returns a host over descs with persisted string data.
func NewMemoryHost(data string, descs ...types.Descriptor) *MemoryHost {
	return &MemoryHost{Descriptors: descs, Data: data}
}

// Properties returns the declared descriptors.
func (h *MemoryHost) Properties() []types.Descriptor { return h.Descriptors }

// PersistedData returns the stored string.
func (h *MemoryHost) PersistedData() (string, error) { return h.Data, nil }

// SetPersistedData replaces the stored string.
func (h *MemoryHost) SetPersistedData(data string) error {
	h.Data = data
	return nil
}

// RecordHost persists into one row of a RecordTable. A RecordHost with an
// empty ID creates a new record on its first write and keeps the generated
// ID.
type RecordHost struct {
	table types.RecordTable
	id    string
	descs []types.Descriptor
}

var _ types.Host = (*RecordHost)(nil)

// NewRecordHost returns a host for record id in table.
func NewRecordHost(table types.RecordTable, id string, descs ...types.Descriptor) *RecordHost {
	return &RecordHost{table: table, id: id, descs: descs}
}

// ID returns the record ID, empty until a new record is first written.
func (h *RecordHost) ID() string { return h.id }

// Properties returns the declared descriptors.
func (h *RecordHost) Properties() []types.Descriptor { return h.descs }

// PersistedData returns the record's data. A record that does not exist yet
// reads as the empty string so the store starts from defaults.
func (h *RecordHost) PersistedData() (string, error) {
	if h.id == "" {
		return "", nil
	}
	rec, err := h.table.Get(h.id)
	if errors.Is(err, types.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return rec.Data, nil
}

// SetPersistedData writes data to the record, creating it if needed.
func (h *RecordHost) SetPersistedData(data string) error {
	id, err := h.table.Set(h.id, data)
	if err != nil {
		return err
	}
	h.id = id
	return nil
}
