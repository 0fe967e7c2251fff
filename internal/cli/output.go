package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

// Output formats selected by --format.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func validFormat(f string) bool {
	return f == formatText || f == formatJSON || f == formatYAML
}

// propertyView is one property as printed by get, show, and decode.
type propertyView struct {
	Name    string `json:"name" yaml:"name"`
	Kind    string `json:"kind" yaml:"kind"`
	Value   any    `json:"value" yaml:"value"`
	Encoded string `json:"encoded" yaml:"encoded"`
}

func viewOf(d types.Descriptor, v any) propertyView {
	return propertyView{
		Name:    d.Name(),
		Kind:    d.Signature(),
		Value:   plain(v),
		Encoded: d.Encode(v),
	}
}

// emit writes v as JSON or YAML, or calls text for the text format.
func (a *app) emit(w io.Writer, v any, text func(io.Writer) error) error {
	switch a.flags.format {
	case formatJSON:
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return sysError(fmt.Errorf("marshal JSON: %w", err))
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case formatYAML:
		out, err := yaml.Marshal(v)
		if err != nil {
			return sysError(fmt.Errorf("marshal YAML: %w", err))
		}
		_, err = w.Write(out)
		return err
	default:
		return text(w)
	}
}

// writeViews prints one "name<TAB>encoded" line per property.
func writeViews(w io.Writer, views []propertyView) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, v := range views {
		fmt.Fprintf(tw, "%s\t%s\n", v.Name, v.Encoded)
	}
	return tw.Flush()
}

// plain converts decoded values into shapes encoding/json and yaml.v3 can
// write: sets become sorted lists and map keys become strings.
func plain(v any) any {
	switch x := v.(type) {
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = plain(e)
		}
		return out
	case map[any]struct{}:
		out := make([]any, 0, len(x))
		for e := range x {
			out = append(out, plain(e))
		}
		sort.Slice(out, func(i, j int) bool {
			return fmt.Sprint(out[i]) < fmt.Sprint(out[j])
		})
		return out
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[fmt.Sprint(k)] = plain(e)
		}
		return out
	default:
		return v
	}
}
