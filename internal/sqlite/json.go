package sqlite

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

// recordJSON is one line of records.jsonl. Timestamps are RFC 3339 text,
// matching the database columns.
type recordJSON struct {
	RecordID  string `json:"record_id"`
	Data      string `json:"data"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (r recordJSON) marshal() ([]byte, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshaling record %s: %w", r.RecordID, err)
	}
	return b, nil
}

// hydrate converts the row form to a types.Record. Unparsable timestamps
// become the zero time.
func (r recordJSON) hydrate() *types.Record {
	created, _ := time.Parse(time.RFC3339Nano, r.CreatedAt)
	updated, _ := time.Parse(time.RFC3339Nano, r.UpdatedAt)
	return &types.Record{
		RecordID:  r.RecordID,
		Data:      r.Data,
		CreatedAt: created,
		UpdatedAt: updated,
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
