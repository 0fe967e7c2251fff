package store

import (
	"strings"

	"github.com/mesh-intelligence/satchel/internal/codec"
	"github.com/mesh-intelligence/satchel/pkg/types"
)

// Encode writes every descriptor, in declared order, as name, mapper token,
// serialized value, separator token. Descriptors missing from values are
// written with their default.
func Encode(descs []types.Descriptor, values map[string]any) string {
	var b strings.Builder
	for _, d := range descs {
		v, ok := values[d.Name()]
		if !ok {
			v = d.DefaultValue()
		}
		b.WriteString(codec.Entries.Terminate(codec.Mapper.Join(d.Name(), d.Encode(v))))
	}
	return b.String()
}

// Decode seeds every descriptor with its default and decodes data over the
// defaults. Fragments that do not split into a name and a value are
// ignored; names that match no descriptor are returned in unknown. When
// several descriptors share a name the first one wins.
func Decode(descs []types.Descriptor, data string) (values map[string]any, unknown []string) {
	values = make(map[string]any, len(descs))
	byName := make(map[string]types.Descriptor, len(descs))
	for _, d := range descs {
		if _, dup := byName[d.Name()]; dup {
			continue
		}
		byName[d.Name()] = d
		values[d.Name()] = d.DefaultValue()
	}
	for _, fragment := range codec.Entries.Split(data) {
		if fragment == "" {
			continue
		}
		nv := codec.Mapper.Split(fragment)
		if len(nv) != 2 {
			continue
		}
		d, ok := byName[nv[0]]
		if !ok {
			unknown = append(unknown, nv[0])
			continue
		}
		values[d.Name()] = d.Decode(nv[1])
	}
	return values, unknown
}
