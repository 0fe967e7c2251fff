package kinds

import (
	"strings"
	"unicode/utf8"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

// TextKind stores strings, optionally trimmed and length-capped.
type TextKind struct {
	trim   bool
	maxLen int
}

var _ types.Kind[string] = (*TextKind)(nil)

// Text returns an unbounded text kind that keeps whitespace.
func Text() *TextKind { return &TextKind{} }

// Trimmed returns a copy that strips surrounding whitespace.
func (k *TextKind) Trimmed() *TextKind {
	c := *k
	c.trim = true
	return &c
}

// Truncated returns a copy that keeps at most n runes. n <= 0 removes the cap.
func (k *TextKind) Truncated(n int) *TextKind {
	c := *k
	c.maxLen = max(n, 0)
	return &c
}

// Signature returns "text".
func (k *TextKind) Signature() string { return "text" }

// Zero returns the empty string.
func (k *TextKind) Zero() string { return "" }

// Serialize returns the normalized text.
func (k *TextKind) Serialize(v string) string { return k.normalize(v) }

// Deserialize returns the normalized text. The fallback is never needed.
func (k *TextKind) Deserialize(s string, _ string) string { return k.normalize(s) }

// normalize trims, truncates, then trims again so that the result is a fixed
// point: normalize(normalize(s)) == normalize(s).
func (k *TextKind) normalize(s string) string {
	if k.trim {
		s = strings.TrimSpace(s)
	}
	if k.maxLen > 0 && utf8.RuneCountInString(s) > k.maxLen {
		s = truncateRunes(s, k.maxLen)
		if k.trim {
			s = strings.TrimSpace(s)
		}
	}
	return s
}

func truncateRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
