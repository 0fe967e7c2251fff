// Package codec implements the escaping grammar that multiplexes many values
// into one persisted string.
//
// The grammar has four layers. Each layer owns a two-character separator
// token and a three-character escape token that stands in for the separator
// whenever it occurs inside content:
//
//	Entries  |>  |->   store entries (separator-terminated)
//	Mapper   =>  ==>   property name and value inside one entry
//	Items    <|  <-|   list, set, and map elements
//	Pairs    |=  ||=   map key and value inside one element
//
// Every layer is bijective: Unescape(Escape(s)) == s for any s, and Split
// recovers exactly the parts given to Join or Terminate.
package codec

import (
	"fmt"
	"strings"
)

// Layers of the persisted grammar, outermost first.
var (
	Entries = newLayer("|>", "|->")
	Mapper  = newLayer("=>", "==>")
	Items   = newLayer("<|", "<-|")
	Pairs   = newLayer("|=", "||=")
)

// Layer is one level of the grammar. A separator is lead+tail; the escape
// token inserts one fill character between them.
//
// When fill differs from lead, any content run lead fill^n tail is written
// as lead fill^(n+1) tail, so a bare separator is the only lead-tail pair
// with no fill. When fill equals lead, runs of k lead characters that are
// followed by tail or end the content are written as 2k characters, so a
// separator is always the tail end of an odd run.
type Layer struct {
	token  string
	escape string
	lead   byte
	fill   byte
	tail   byte
}

func newLayer(token, escape string) *Layer {
	if len(token) != 2 || len(escape) != 3 || escape[0] != token[0] || escape[2] != token[1] {
		panic(fmt.Sprintf("codec: malformed layer %q/%q", token, escape))
	}
	return &Layer{
		token:  token,
		escape: escape,
		lead:   token[0],
		fill:   escape[1],
		tail:   token[1],
	}
}

// Token returns the separator token.
func (l *Layer) Token() string { return l.token }

// EscapeToken returns the token that replaces a literal separator in content.
func (l *Layer) EscapeToken() string { return l.escape }

func (l *Layer) doubled() bool { return l.fill == l.lead }

// Escape rewrites s so it contains no bare separator.
func (l *Layer) Escape(s string) string {
	if strings.IndexByte(s, l.lead) < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	if l.doubled() {
		for i := 0; i < len(s); {
			if s[i] != l.lead {
				b.WriteByte(s[i])
				i++
				continue
			}
			j := l.runEnd(s, i)
			n := j - i
			if j == len(s) || s[j] == l.tail {
				n *= 2
			}
			b.WriteString(strings.Repeat(string(l.lead), n))
			i = j
		}
		return b.String()
	}
	for i := 0; i < len(s); {
		if s[i] != l.lead {
			b.WriteByte(s[i])
			i++
			continue
		}
		j := l.fillEnd(s, i)
		if j < len(s) && s[j] == l.tail {
			b.WriteString(s[i:j])
			b.WriteByte(l.fill)
			b.WriteByte(l.tail)
			i = j + 1
			continue
		}
		b.WriteString(s[i:j])
		i = j
	}
	return b.String()
}

// Unescape reverses Escape. Input that Escape could not have produced is
// passed through as unchanged as the grammar allows.
func (l *Layer) Unescape(s string) string {
	if strings.IndexByte(s, l.lead) < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	if l.doubled() {
		for i := 0; i < len(s); {
			if s[i] != l.lead {
				b.WriteByte(s[i])
				i++
				continue
			}
			j := l.runEnd(s, i)
			n := j - i
			if j == len(s) || s[j] == l.tail {
				n = (n + 1) / 2
			}
			b.WriteString(strings.Repeat(string(l.lead), n))
			i = j
		}
		return b.String()
	}
	for i := 0; i < len(s); {
		if s[i] != l.lead {
			b.WriteByte(s[i])
			i++
			continue
		}
		j := l.fillEnd(s, i)
		if j < len(s) && s[j] == l.tail {
			if j > i+1 {
				b.WriteString(s[i : j-1])
			} else {
				b.WriteByte(l.lead)
			}
			b.WriteByte(l.tail)
			i = j + 1
			continue
		}
		b.WriteString(s[i:j])
		i = j
	}
	return b.String()
}

// Join escapes each part and separates them with the separator token.
func (l *Layer) Join(parts ...string) string {
	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			b.WriteString(l.token)
		}
		b.WriteString(l.Escape(p))
	}
	return b.String()
}

// Terminate escapes each part and follows every part with the separator
// token. Splitting the result yields the parts plus one trailing empty part.
func (l *Layer) Terminate(parts ...string) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(l.Escape(p))
		b.WriteString(l.token)
	}
	return b.String()
}

// Split cuts s at every bare separator and unescapes each part. Like
// strings.Split it returns one part for input without separators, including
// the empty string.
func (l *Layer) Split(s string) []string {
	raw := l.cut(s)
	for i, p := range raw {
		raw[i] = l.Unescape(p)
	}
	return raw
}

// cut locates bare separators without unescaping.
func (l *Layer) cut(s string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(s); {
		if s[i] != l.lead {
			i++
			continue
		}
		if l.doubled() {
			j := l.runEnd(s, i)
			if j < len(s) && s[j] == l.tail && (j-i)%2 == 1 {
				parts = append(parts, s[start:j-1])
				start = j + 1
				i = j + 1
				continue
			}
			i = j
			continue
		}
		j := l.fillEnd(s, i)
		if j < len(s) && s[j] == l.tail {
			if j == i+1 {
				parts = append(parts, s[start:i])
				start = j + 1
			}
			i = j + 1
			continue
		}
		i = j
	}
	return append(parts, s[start:])
}

// runEnd returns the index just past the run of lead characters at i.
func (l *Layer) runEnd(s string, i int) int {
	j := i
	for j < len(s) && s[j] == l.lead {
		j++
	}
	return j
}

// fillEnd returns the index just past the lead at i and the fill run after it.
func (l *Layer) fillEnd(s string, i int) int {
	j := i + 1
	for j < len(s) && s[j] == l.fill {
		j++
	}
	return j
}
