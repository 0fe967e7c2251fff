package store_test

import (
	"sort"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/satchel/pkg/store"
	"github.com/mesh-intelligence/satchel/pkg/types"
)

// memoryTable is a RecordTable over a map, numbering new records.
type memoryTable struct {
	rows map[string]*types.Record
	next int
}

func newMemoryTable() *memoryTable {
	return &memoryTable{rows: map[string]*types.Record{}}
}

func (m *memoryTable) Get(id string) (*types.Record, error) {
	r, ok := m.rows[id]
	if !ok {
		return nil, types.ErrNotFound
	}
	return r, nil
}

func (m *memoryTable) Set(id, data string) (string, error) {
	if id == "" {
		m.next++
		id = "r" + strconv.Itoa(m.next)
	}
	m.rows[id] = &types.Record{RecordID: id, Data: data}
	return id, nil
}

func (m *memoryTable) Delete(id string) error {
	if _, ok := m.rows[id]; !ok {
		return types.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memoryTable) Fetch(types.Filter) ([]*types.Record, error) {
	var out []*types.Record
	for _, r := range m.rows {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RecordID < out[j].RecordID })
	return out, nil
}

func TestRecordHostCreatesOnFirstWrite(t *testing.T) {
	table := newMemoryTable()
	host := store.NewRecordHost(table, "", count, title)
	s := store.New(host)

	v, err := store.Get(s, count)
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)
	assert.Empty(t, host.ID())

	require.NoError(t, store.Set(s, title, "hello"))
	require.Equal(t, "r1", host.ID())

	require.NoError(t, store.Set(s, count, 2))
	assert.Len(t, table.rows, 1, "later writes reuse the generated ID")
	assert.Equal(t, "count=>2|>title=>hello|>", table.rows["r1"].Data)
}

func TestRecordHostMissingRecordReadsEmpty(t *testing.T) {
	host := store.NewRecordHost(newMemoryTable(), "gone", count)
	data, err := host.PersistedData()
	require.NoError(t, err)
	assert.Equal(t, "", data)
}

func TestRecordHostReadsExisting(t *testing.T) {
	table := newMemoryTable()
	id, err := table.Set("", "count=>7|>")
	require.NoError(t, err)

	s := store.New(store.NewRecordHost(table, id, count))
	v, err := store.Get(s, count)
	require.NoError(t, err)
	assert.Equal(t, int64(7), v)
}
