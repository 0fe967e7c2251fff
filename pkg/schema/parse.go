package schema

import (
	"fmt"

	"github.com/mesh-intelligence/satchel/pkg/kinds"
	"github.com/mesh-intelligence/satchel/pkg/types"
)

type parser struct {
	reg  *Registry
	field Field
	src  string
	pos  int
}

// expr parses one kind expression and reports whether it is scalar.
func (p *parser) expr() (types.Kind[any], bool, error) {
	name := p.ident()
	if name == "" {
		return nil, false, p.fail("expected kind name")
	}
	if !composite[name] {
		f, ok := p.reg.scalars[name]
		if !ok {
			return nil, false, fmt.Errorf("%w: unknown kind %q", types.ErrInvalidKind, name)
		}
		k, err := f(p.field)
		return k, true, err
	}

	if err := p.expect('<'); err != nil {
		return nil, false, err
	}
	first, scalar, err := p.expr()
	if err != nil {
		return nil, false, err
	}

	var k types.Kind[any]
	switch name {
	case "list":
		k = kinds.Erase(kinds.List(first))
	case "set":
		if !scalar {
			return nil, false, p.fail("set elements must be scalar")
		}
		k = kinds.Erase(kinds.Set(first))
	case "map":
		if !scalar {
			return nil, false, p.fail("map keys must be scalar")
		}
		if err := p.expect(','); err != nil {
			return nil, false, err
		}
		second, _, err := p.expr()
		if err != nil {
			return nil, false, err
		}
		k = kinds.Erase(kinds.Map(first, second))
	}
	if err := p.expect('>'); err != nil {
		return nil, false, err
	}
	return k, false, nil
}

func (p *parser) ident() string {
	start := p.pos
	for p.pos < len(p.src) && validIdent(p.src[p.pos:p.pos+1]) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *parser) expect(c byte) error {
	if p.pos >= len(p.src) || p.src[p.pos] != c {
		return p.fail(fmt.Sprintf("expected %q", c))
	}
	p.pos++
	return nil
}

func (p *parser) fail(msg string) error {
	return fmt.Errorf("%w: %s at offset %d in %q", types.ErrInvalidKind, msg, p.pos, p.field.Kind)
}
