package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

// recordTable implements types.RecordTable over the backend's database.
type recordTable struct {
	backend *Backend
}

var _ types.RecordTable = (*recordTable)(nil)

// Get retrieves a record by ID.
// Returns ErrInvalidID if id is empty and ErrNotFound if it does not exist.
func (t *recordTable) Get(id string) (*types.Record, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()
	if !t.backend.attached {
		return nil, types.ErrVaultDetached
	}

	var rec recordJSON
	err := t.backend.db.QueryRow(selectRecords+" WHERE record_id = ?", id).
		Scan(&rec.RecordID, &rec.Data, &rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting record %s: %w", id, err)
	}
	return rec.hydrate(), nil
}

// Set creates or replaces a record. An empty id creates a new record with a
// UUID v7.
func (t *recordTable) Set(id, data string) (string, error) {
	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()
	if !t.backend.attached {
		return "", types.ErrVaultDetached
	}

	if id == "" {
		id = newRecordID()
	}
	now := formatTime(time.Now())
	_, err := t.backend.db.Exec(`INSERT INTO records (record_id, data, created_at, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(record_id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		id, data, now, now)
	if err != nil {
		return "", fmt.Errorf("setting record %s: %w", id, err)
	}
	if err := t.backend.written(); err != nil {
		return "", err
	}
	return id, nil
}

// Delete removes a record.
// Returns ErrInvalidID if id is empty and ErrNotFound if it does not exist.
func (t *recordTable) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()
	if !t.backend.attached {
		return types.ErrVaultDetached
	}

	res, err := t.backend.db.Exec("DELETE FROM records WHERE record_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting record %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return types.ErrNotFound
	}
	return t.backend.written()
}

// Fetch returns records matching filter ordered by ID.
// Returns ErrInvalidFilter when a filter value has the wrong type.
func (t *recordTable) Fetch(filter types.Filter) ([]*types.Record, error) {
	query := selectRecords
	var args []any

	if contains, ok := filter["contains"]; ok {
		s, ok := contains.(string)
		if !ok {
			return nil, types.ErrInvalidFilter
		}
		if s != "" {
			query += " WHERE instr(data, ?) > 0"
			args = append(args, s)
		}
	}
	query += " ORDER BY record_id"

	limit, offset := -1, 0
	if v, ok := filter["limit"]; ok {
		l, ok := toInt(v)
		if !ok {
			return nil, types.ErrInvalidFilter
		}
		if l > 0 {
			limit = l
		}
	}
	if v, ok := filter["offset"]; ok {
		o, ok := toInt(v)
		if !ok {
			return nil, types.ErrInvalidFilter
		}
		if o > 0 {
			offset = o
		}
	}
	if limit > 0 || offset > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", limit, offset)
	}

	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()
	if !t.backend.attached {
		return nil, types.ErrVaultDetached
	}

	rows, err := t.backend.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching records: %w", err)
	}
	defer rows.Close()

	results := []*types.Record{}
	for rows.Next() {
		var rec recordJSON
		if err := rows.Scan(&rec.RecordID, &rec.Data, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		results = append(results, rec.hydrate())
	}
	return results, rows.Err()
}

// toInt accepts the integer shapes a filter value arrives in.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
