package store_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/satchel/pkg/kinds"
	"github.com/mesh-intelligence/satchel/pkg/store"
	"github.com/mesh-intelligence/satchel/pkg/types"
)

var (
	count = types.NewProperty("count", kinds.Integer().Between(0, 10), 0)
	title = types.Define("title", kinds.Text())
	tags  = types.Define("tags", kinds.List(kinds.Text()))
	ratio = types.NewProperty("ratio", kinds.Float().Between(0, 1), 0.5)
	ready = types.Define("ready", kinds.Boolean())
)

// countingHost records how often the store reads and writes.
type countingHost struct {
	store.MemoryHost
	reads   int
	writes  int
	failing bool
}

func (h *countingHost) PersistedData() (string, error) {
	h.reads++
	return h.MemoryHost.PersistedData()
}

func (h *countingHost) SetPersistedData(data string) error {
	h.writes++
	if h.failing {
		return errors.New("disk full")
	}
	return h.MemoryHost.SetPersistedData(data)
}

func newCountingHost(data string, descs ...types.Descriptor) *countingHost {
	return &countingHost{MemoryHost: store.MemoryHost{Descriptors: descs, Data: data}}
}

func TestEncodeCountAndEscapedTitle(t *testing.T) {
	host := store.NewMemoryHost("", count, title)
	s := store.New(host)

	require.NoError(t, store.Set(s, title, "a|>b"))
	require.NoError(t, store.Set(s, count, 99))

	assert.Equal(t, "count=>10|>title=>a|->b|>", host.Data)

	fresh := store.New(host)
	gotTitle, err := store.Get(fresh, title)
	require.NoError(t, err)
	assert.Equal(t, "a|>b", gotTitle)
	gotCount, err := store.Get(fresh, count)
	require.NoError(t, err)
	assert.Equal(t, int64(10), gotCount)
}

func TestDefaultsBeforeAnyWrite(t *testing.T) {
	s := store.New(store.NewMemoryHost("", count, title, ratio, ready))

	v, err := store.Get(s, ratio)
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)

	b, err := store.Get(s, ready)
	require.NoError(t, err)
	assert.False(t, b)

	blob, err := s.Encode()
	require.NoError(t, err)
	assert.Equal(t, "count=>0|>title=>|>ratio=>0.5|>ready=>f|>", blob)
}

func TestSetClampsImmediately(t *testing.T) {
	s := store.New(store.NewMemoryHost("", count))
	require.NoError(t, store.Set(s, count, -4))

	v, err := store.Get(s, count)
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)
}

func TestRoundTripReservedTokens(t *testing.T) {
	host := store.NewMemoryHost("", title, tags)
	s := store.New(host)

	values := []string{"a<|b", "c|>d=>e", "|=", "||=", "==>", ""}
	require.NoError(t, store.Set(s, title, "=>|><||=x|"))
	require.NoError(t, store.Set(s, tags, values))

	fresh := store.New(host)
	gotTitle, err := store.Get(fresh, title)
	require.NoError(t, err)
	assert.Equal(t, "=>|><||=x|", gotTitle)
	gotTags, err := store.Get(fresh, tags)
	require.NoError(t, err)
	assert.Equal(t, values, gotTags)
}

func TestEncodeIdempotent(t *testing.T) {
	host := store.NewMemoryHost("", count, title, tags)
	s := store.New(host)
	require.NoError(t, store.Set(s, title, "x|>y"))
	require.NoError(t, store.Set(s, tags, []string{"1", "2"}))

	first, err := s.Encode()
	require.NoError(t, err)
	second, err := store.New(store.NewMemoryHost(first, count, title, tags)).Encode()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestUnknownAndMalformedFragments(t *testing.T) {
	host := store.NewMemoryHost("ghost=>1|>nonsense|>count=>4|>a=>b=>c|>", count, title)
	s := store.New(host)

	v, err := store.Get(s, count)
	require.NoError(t, err)
	assert.Equal(t, int64(4), v)

	require.NoError(t, store.Set(s, title, "kept"))
	assert.Equal(t, "count=>4|>title=>kept|>", host.Data, "unknown names are dropped on the next write")
}

func TestPropertyNotFound(t *testing.T) {
	s := store.New(store.NewMemoryHost("", count))

	_, err := store.Get(s, title)
	assert.ErrorIs(t, err, types.ErrPropertyNotFound)

	err = store.Set(s, title, "x")
	assert.ErrorIs(t, err, types.ErrPropertyNotFound)

	assert.ErrorIs(t, s.Clear(title), types.ErrPropertyNotFound)
}

func TestSameNameDifferentKindIsNotFound(t *testing.T) {
	s := store.New(store.NewMemoryHost("", count))
	other := types.Define("count", kinds.Text())

	_, err := store.Get(s, other)
	assert.ErrorIs(t, err, types.ErrPropertyNotFound)
}

func TestEqualDescriptorsShareSlot(t *testing.T) {
	s := store.New(store.NewMemoryHost("", count))
	twin := types.NewProperty("count", kinds.Integer(), 3)

	require.NoError(t, store.Set(s, twin, 7))
	v, err := store.Get(s, count)
	require.NoError(t, err)
	assert.Equal(t, int64(7), v)
}

func TestSetValueTypeMismatch(t *testing.T) {
	host := newCountingHost("", count)
	s := store.New(host)

	err := s.SetValue(count, "ten")
	assert.ErrorIs(t, err, types.ErrTypeMismatch)
	assert.Equal(t, 0, host.writes)
}

func TestFailedWriteKeepsPreviousValue(t *testing.T) {
	host := newCountingHost("count=>3|>", count)
	s := store.New(host)
	host.failing = true

	err := store.Set(s, count, 8)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	v, err := store.Get(s, count)
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)
	assert.Equal(t, "count=>3|>", host.Data)
}

func TestLazyMaterialization(t *testing.T) {
	host := newCountingHost("count=>2|>", count)
	s := store.New(host)
	assert.False(t, s.Loaded())
	assert.Equal(t, 0, host.reads)

	_, err := store.Get(s, count)
	require.NoError(t, err)
	_, err = store.Get(s, count)
	require.NoError(t, err)
	assert.True(t, s.Loaded())
	assert.Equal(t, 1, host.reads)

	host.Data = "count=>9|>"
	s.Reload()
	assert.False(t, s.Loaded())
	v, err := store.Get(s, count)
	require.NoError(t, err)
	assert.Equal(t, int64(9), v)
	assert.Equal(t, 2, host.reads)
}

func TestClear(t *testing.T) {
	host := store.NewMemoryHost("count=>6|>title=>x|>", count, title)
	s := store.New(host)

	require.NoError(t, s.Clear(count))
	assert.Equal(t, "count=>0|>title=>x|>", host.Data)
}

func TestValuesIsACopy(t *testing.T) {
	s := store.New(store.NewMemoryHost("count=>5|>", count, title))

	values, err := s.Values()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"count": int64(5), "title": ""}, values)

	values["count"] = int64(1)
	v, err := store.Get(s, count)
	require.NoError(t, err)
	assert.Equal(t, int64(5), v)
}

func TestDuplicateDeclarationsFirstWins(t *testing.T) {
	shadow := types.NewProperty("count", kinds.Integer(), 42)
	host := store.NewMemoryHost("", count, shadow, title)
	s := store.New(host)

	descs, err := s.Descriptors()
	require.NoError(t, err)
	assert.Len(t, descs, 2)

	require.NoError(t, store.Set(s, title, "t"))
	assert.Equal(t, "count=>0|>title=>t|>", host.Data)
}

func TestDecodeFirstDescriptorWins(t *testing.T) {
	shadow := types.NewProperty("count", kinds.Text(), "shadow")
	values, unknown := store.Decode([]types.Descriptor{count, shadow}, "count=>12|>other=>1|>")
	assert.Equal(t, map[string]any{"count": int64(10)}, values)
	assert.Equal(t, []string{"other"}, unknown)
}

func TestEncodeMissingValuesUseDefaults(t *testing.T) {
	got := store.Encode([]types.Descriptor{count, ratio}, map[string]any{"count": int64(4)})
	assert.Equal(t, "count=>4|>ratio=>0.5|>", got)
}
