package types

import "time"

// Record is one persisted property blob, owned by a single host object.
type Record struct {
	RecordID  string    `json:"record_id" yaml:"record_id"`
	Data      string    `json:"data" yaml:"data"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// Filter narrows a Fetch. Recognized keys are "contains" (string, substring
// of Data), "limit" (int), and "offset" (int).
type Filter map[string]any

// RecordTable provides CRUD operations over records.
type RecordTable interface {
	// Get retrieves the record with the given ID.
	// Returns ErrNotFound if no record exists with that ID.
	Get(id string) (*Record, error)

	// Set creates or replaces a record's data. When id is empty a new UUID v7
	// is generated. Returns the ID used.
	Set(id string, data string) (string, error)

	// Delete removes the record with the given ID.
	// Returns ErrNotFound if no record exists with that ID.
	Delete(id string) error

	// Fetch returns records matching the filter ordered by ID. A nil filter
	// returns every record.
	Fetch(filter Filter) ([]*Record, error)
}
