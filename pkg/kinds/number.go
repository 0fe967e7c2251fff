package kinds

import (
	"cmp"
	"strconv"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

// Number is the set of value types a NumberKind can hold.
type Number interface {
	~int64 | ~float64
}

// NumberKind stores an integer or float with an optional inclusive range.
// Values outside the range are clamped on both serialize and deserialize.
type NumberKind[N Number] struct {
	signature string
	parse     func(string) (N, bool)
	format    func(N) string
	min, max  N
	hasMin    bool
	hasMax    bool
}

var (
	_ types.Kind[int64]   = (*NumberKind[int64])(nil)
	_ types.Kind[float64] = (*NumberKind[float64])(nil)
)

// Integer returns an unbounded int64 kind.
func Integer() *NumberKind[int64] {
	return &NumberKind[int64]{
		signature: "int",
		parse: func(s string) (int64, bool) {
			n, err := strconv.ParseInt(s, 10, 64)
			return n, err == nil
		},
		format: func(n int64) string { return strconv.FormatInt(n, 10) },
	}
}

// Float returns an unbounded float64 kind.
func Float() *NumberKind[float64] {
	return &NumberKind[float64]{
		signature: "float",
		parse: func(s string) (float64, bool) {
			f, err := strconv.ParseFloat(s, 64)
			return f, err == nil
		},
		format: func(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) },
	}
}

// AtLeast returns a copy with an inclusive lower bound.
func (k *NumberKind[N]) AtLeast(lo N) *NumberKind[N] {
	c := *k
	c.min, c.hasMin = lo, true
	return &c
}

// AtMost returns a copy with an inclusive upper bound.
func (k *NumberKind[N]) AtMost(hi N) *NumberKind[N] {
	c := *k
	c.max, c.hasMax = hi, true
	return &c
}

// Between returns a copy bounded to [lo, hi].
func (k *NumberKind[N]) Between(lo, hi N) *NumberKind[N] {
	return k.AtLeast(lo).AtMost(hi)
}

// Signature returns "int" or "float". Bounds do not change the signature.
func (k *NumberKind[N]) Signature() string { return k.signature }

// Zero returns 0 clamped into range.
func (k *NumberKind[N]) Zero() N { return k.clamp(0) }

// Serialize clamps v and formats it.
func (k *NumberKind[N]) Serialize(v N) string { return k.format(k.clamp(v)) }

// Deserialize parses s, substituting fallback when s is not a number, and
// clamps the result.
func (k *NumberKind[N]) Deserialize(s string, fallback N) N {
	n, ok := k.parse(s)
	if !ok {
		n = fallback
	}
	return k.clamp(n)
}

func (k *NumberKind[N]) clamp(v N) N {
	if k.hasMin && cmp.Less(v, k.min) {
		v = k.min
	}
	if k.hasMax && cmp.Less(k.max, v) {
		v = k.max
	}
	return v
}
