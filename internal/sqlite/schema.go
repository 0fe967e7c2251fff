package sqlite

const (
	createRecords = `CREATE TABLE records (
    record_id TEXT PRIMARY KEY,
    data TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	idxRecordsUpdated = `CREATE INDEX idx_records_updated ON records(updated_at);`
)

// schemaDDL lists every statement run on a fresh database, in order.
var schemaDDL = []string{
	createRecords,
	idxRecordsUpdated,
}

// recordColumns is the column order shared by inserts, selects, and
// records.jsonl loading.
var recordColumns = []string{"record_id", "data", "created_at", "updated_at"}

const selectRecords = "SELECT record_id, data, created_at, updated_at FROM records"
