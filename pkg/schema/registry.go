package schema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mesh-intelligence/satchel/pkg/kinds"
	"github.com/mesh-intelligence/satchel/pkg/types"
)

// Factory builds a scalar kind from the options in field.
type Factory func(field Field) (types.Kind[any], error)

// Registry maps scalar kind names to factories.
type Registry struct {
	scalars map[string]Factory
}

// composite names are reserved by the expression grammar.
var composite = map[string]bool{"list": true, "set": true, "map": true}

// NewRegistry returns a registry holding the built-in scalar kinds.
func NewRegistry() *Registry {
	r := &Registry{scalars: map[string]Factory{}}
	builtins := map[string]Factory{
		"text":    textKind,
		"int":     intKind,
		"integer": intKind,
		"float":   floatKind,
		"bool":    boolKind,
		"boolean": boolKind,
		"enum":    enumKind,
	}
	for name, f := range builtins {
		r.scalars[name] = f
	}
	return r
}

// Register adds a scalar kind.
// Returns ErrInvalidName if name is empty or reserved and ErrDuplicateName
// if name is already registered.
func (r *Registry) Register(name string, f Factory) error {
	if !validIdent(name) || composite[name] {
		return fmt.Errorf("%w: kind %q", types.ErrInvalidName, name)
	}
	if _, ok := r.scalars[name]; ok {
		return fmt.Errorf("%w: kind %q", types.ErrDuplicateName, name)
	}
	r.scalars[name] = f
	return nil
}

// Names lists the registered scalar kinds, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.scalars))
	for name := range r.scalars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Kind parses field.Kind. Scalar options in field apply to every scalar in the
// expression.
// Returns ErrInvalidKind for an unknown name or a malformed expression.
func (r *Registry) Kind(field Field) (types.Kind[any], error) {
	p := &parser{reg: r, field: field, src: strings.ReplaceAll(field.Kind, " ", "")}
	k, _, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.src) {
		return nil, p.fail("trailing input")
	}
	return k, nil
}

func validIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_') {
			return false
		}
	}
	return true
}

func textKind(field Field) (types.Kind[any], error) {
	k := kinds.Text()
	if field.Trim {
		k = k.Trimmed()
	}
	if field.MaxLength > 0 {
		k = k.Truncated(field.MaxLength)
	}
	return kinds.Erase(k), nil
}

func intKind(field Field) (types.Kind[any], error) {
	k := kinds.Integer()
	if field.Min != nil {
		k = k.AtLeast(int64(*field.Min))
	}
	if field.Max != nil {
		k = k.AtMost(int64(*field.Max))
	}
	return kinds.Erase(k), nil
}

func floatKind(field Field) (types.Kind[any], error) {
	k := kinds.Float()
	if field.Min != nil {
		k = k.AtLeast(*field.Min)
	}
	if field.Max != nil {
		k = k.AtMost(*field.Max)
	}
	return kinds.Erase(k), nil
}

func boolKind(Field) (types.Kind[any], error) {
	return kinds.Erase(kinds.Boolean()), nil
}

func enumKind(field Field) (types.Kind[any], error) {
	if len(field.Values) == 0 {
		return nil, fmt.Errorf("%w: enum needs values", types.ErrInvalidKind)
	}
	return kinds.Erase(kinds.Choice(field.Values...)), nil
}
