package escape

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// ErrMissingSemicolon is reported by EntityUnescaper in SemicolonError
// mode when a numeric entity reference is not terminated by ';'.
var ErrMissingSemicolon = errors.New("numeric entity is missing the terminating semicolon")

// EntityEscaper returns a Translator that rewrites every codepoint
// inside r as a decimal numeric entity reference of the form &#NNN;.
func EntityEscaper(r Range) Translator {
	return &entityEscaper{r: r}
}

// EntityEscaperOutside is like EntityEscaper but rewrites the codepoints
// outside r, leaving the ones inside untouched.
func EntityEscaperOutside(r Range) Translator {
	return &entityEscaper{r: r, outside: true}
}

type entityEscaper struct {
	r       Range
	outside bool
}

func (e *entityEscaper) Translate(dst []byte, src string, index int) ([]byte, int, error) {
	c, size := utf8.DecodeRuneInString(src[index:])
	if c == utf8.RuneError && size == 1 {
		// Not a codepoint at all; leave the byte for the caller.
		return dst, 0, nil
	}
	if e.r.Contains(c) == e.outside {
		return dst, 0, nil
	}
	dst = append(dst, "&#"...)
	dst = strconv.AppendInt(dst, int64(c), 10)
	dst = append(dst, ';')
	return dst, size, nil
}

// SemicolonMode controls how EntityUnescaper treats a numeric entity
// reference whose terminating ';' is absent.
type SemicolonMode int

const (
	// SemicolonRequired treats an unterminated reference as a non-match
	// and leaves it verbatim. This is the conventional behavior.
	SemicolonRequired SemicolonMode = iota

	// SemicolonOptional converts an unterminated reference anyway.
	SemicolonOptional

	// SemicolonError fails the whole translation on an unterminated
	// reference.
	SemicolonError
)

// EntityUnescaper returns a Translator that converts numeric entity
// references, decimal &#NNN; or hexadecimal &#xHH;, back into the
// codepoints they name. A reference with no digits, or one naming a
// value that is not a valid codepoint (beyond U+10FFFF or in the
// surrogate block), is not a match and is left verbatim.
func EntityUnescaper(mode SemicolonMode) Translator {
	return &entityUnescaper{mode: mode}
}

type entityUnescaper struct {
	mode SemicolonMode
}

func (u *entityUnescaper) Translate(dst []byte, src string, index int) ([]byte, int, error) {
	s := src[index:]
	if len(s) < 2 || s[0] != '&' || s[1] != '#' {
		return dst, 0, nil
	}
	i := 2
	hex := false
	if i < len(s) && (s[i] == 'x' || s[i] == 'X') {
		hex = true
		i++
	}
	start := i
	for i < len(s) && isEntityDigit(s[i], hex) {
		i++
	}
	if i == start {
		// No digits at all, e.g. "&#;" or "&#x".
		return dst, 0, nil
	}
	terminated := i < len(s) && s[i] == ';'
	if !terminated {
		switch u.mode {
		case SemicolonRequired:
			return dst, 0, nil
		case SemicolonError:
			return dst, 0, fmt.Errorf("%w in %q at offset %d", ErrMissingSemicolon, s[:i], index)
		}
	}
	base := 10
	if hex {
		base = 16
	}
	v, err := strconv.ParseInt(s[start:i], base, 32)
	if err != nil || !utf8.ValidRune(rune(v)) {
		// Out of codepoint range; not representable, so not a match.
		return dst, 0, nil
	}
	dst = utf8.AppendRune(dst, rune(v))
	if terminated {
		i++
	}
	return dst, i, nil
}

func isEntityDigit(c byte, hex bool) bool {
	if '0' <= c && c <= '9' {
		return true
	}
	return hex && ('a' <= c && c <= 'f' || 'A' <= c && c <= 'F')
}
