package kinds

import "github.com/mesh-intelligence/satchel/pkg/types"

// Canonical boolean tokens. Only these two are ever written.
const (
	TrueToken  = "t"
	FalseToken = "f"
)

// truthy is the case-sensitive set of tokens that decode to true.
var truthy = map[string]bool{
	"t":       true,
	"true":    true,
	"1":       true,
	"yes":     true,
	"y":       true,
	"on":      true,
	"enabled": true,
	"enable":  true,
}

// BooleanKind stores a bool. Many truthy spellings are accepted on read;
// anything else reads as false.
type BooleanKind struct{}

var _ types.Kind[bool] = BooleanKind{}

// Boolean returns the boolean kind.
func Boolean() BooleanKind { return BooleanKind{} }

// Signature returns "bool".
func (BooleanKind) Signature() string { return "bool" }

// Zero returns false.
func (BooleanKind) Zero() bool { return false }

// Serialize returns TrueToken or FalseToken.
func (BooleanKind) Serialize(v bool) string {
	if v {
		return TrueToken
	}
	return FalseToken
}

// Deserialize reports whether s is a truthy token. The fallback is unused:
// unrecognized text is false.
func (BooleanKind) Deserialize(s string, _ bool) bool {
	return truthy[s]
}
