package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
)

// loadRecordsJSONL inserts every usable line of path into the records table
// in one transaction and returns how many rows were loaded. Lines that do
// not decode, lack a record_id, or repeat an earlier record_id are skipped.
// Unknown fields are ignored.
func loadRecordsJSONL(db *sql.DB, path string) (int, error) {
	lines, err := readJSONL(path)
	if err != nil {
		return 0, err
	}
	if len(lines) == 0 {
		return 0, nil
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(recordColumns)), ", ")
	stmt, err := tx.Prepare(fmt.Sprintf(
		"INSERT OR IGNORE INTO records (%s) VALUES (%s)",
		strings.Join(recordColumns, ", "),
		placeholders,
	))
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	loaded := 0
	for _, line := range lines {
		var rec recordJSON
		if err := json.Unmarshal(line, &rec); err != nil || rec.RecordID == "" {
			continue
		}
		res, err := stmt.Exec(rec.RecordID, rec.Data, rec.CreatedAt, rec.UpdatedAt)
		if err != nil {
			continue
		}
		if n, _ := res.RowsAffected(); n > 0 {
			loaded++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing load transaction: %w", err)
	}
	return loaded, nil
}
