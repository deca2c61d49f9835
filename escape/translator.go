// Package escape implements composable escaping and unescaping of text.
//
// The central abstraction is the Translator: a stateless rewriter that
// recognizes content at a position in its input and produces replacement
// text for it. Translators compose with Chain and are driven over a whole
// string by Translate or AppendTranslate. The package also provides
// ready-made translator chains for common formats (Java and JSON string
// literals, HTML and XML entities, CSV fields) behind plain string
// functions such as Java, HTML4 and UnescapeXML.
//
// All translators are immutable after construction and safe for
// concurrent use.
package escape

import (
	"fmt"
	"unicode/utf8"
)

// A Translator attempts to rewrite the content of src beginning at the
// byte offset index. If it recognizes the content there, it appends the
// replacement text to dst and returns the extended slice along with the
// number of bytes of src it consumed. A consumed count of zero means
// "no match": the translator must not have appended anything, and the
// caller is responsible for copying one codepoint verbatim and advancing
// past it.
//
// The returned error is reserved for malformed input that cannot be
// recovered from locally (see UnicodeUnescaper); an ordinary failure to
// match is not an error.
type Translator interface {
	Translate(dst []byte, src string, index int) (out []byte, consumed int, err error)
}

// Translate applies t over all of s and returns the rewritten string.
// At each position the translator is offered the input; whenever it
// declines, one codepoint is copied through verbatim. Bytes that do not
// form valid UTF-8 are copied through byte by byte.
//
// If s needs no rewriting at all, s itself is returned without copying.
func Translate(t Translator, s string) (string, error) {
	var buf []byte
	for i := 0; i < len(s); {
		out, n, err := t.Translate(buf, s, i)
		if err != nil {
			return "", err
		}
		if n == 0 {
			_, size := utf8.DecodeRuneInString(s[i:])
			if buf != nil {
				buf = append(buf, s[i:i+size]...)
			}
			i += size
			continue
		}
		if buf == nil {
			// First replacement: collect the untouched prefix
			// before the translator's output.
			nb := make([]byte, 0, len(s)+16)
			nb = append(nb, s[:i]...)
			buf = append(nb, out...)
		} else {
			buf = out
		}
		i += n
	}
	if buf == nil {
		return s, nil
	}
	return string(buf), nil
}

// AppendTranslate appends the translation of s under t to dst and
// returns the extended slice. On error the returned slice may hold a
// partial translation.
func AppendTranslate(dst []byte, t Translator, s string) ([]byte, error) {
	for i := 0; i < len(s); {
		out, n, err := t.Translate(dst, s, i)
		if err != nil {
			return dst, err
		}
		if n == 0 {
			_, size := utf8.DecodeRuneInString(s[i:])
			dst = append(dst, s[i:i+size]...)
			i += size
			continue
		}
		dst = out
		i += n
	}
	return dst, nil
}

// Chain combines translators into one. At each position the children are
// consulted in order and the first to consume input wins; the rest are
// not invoked. This is a first-match-wins policy: an earlier child that
// matches one byte beats a later child that would have matched more.
func Chain(ts ...Translator) Translator {
	return chain(append([]Translator(nil), ts...))
}

type chain []Translator

func (c chain) Translate(dst []byte, src string, index int) ([]byte, int, error) {
	for _, t := range c {
		out, n, err := t.Translate(dst, src, index)
		if err != nil {
			return dst, 0, err
		}
		if n > 0 {
			return out, n, nil
		}
	}
	return dst, 0, nil
}

// Range is an inclusive codepoint interval. It is the unit of
// configuration for the range-based escapers: a codepoint is eligible
// for escaping according to whether it lies inside or outside the range.
type Range struct {
	Low, High rune
}

// Between returns the inclusive range [lo, hi].
// It panics if lo > hi.
func Between(lo, hi rune) Range {
	if lo > hi {
		panic(fmt.Errorf("escape: invalid range [%U, %U]", lo, hi))
	}
	return Range{Low: lo, High: hi}
}

// Above returns the range of all codepoints greater than or equal to lo.
func Above(lo rune) Range {
	return Range{Low: lo, High: utf8.MaxRune}
}

// Below returns the range of all codepoints less than or equal to hi.
func Below(hi rune) Range {
	return Range{Low: 0, High: hi}
}

// Contains reports whether c lies within r.
func (r Range) Contains(c rune) bool {
	return r.Low <= c && c <= r.High
}
