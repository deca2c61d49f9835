package escape

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
)

// ErrInvalidUnicodeEscape is reported when a \uXXXX escape sequence is
// truncated or holds non-hex digits. Unlike every other malformed input
// handled by this package, this one fails the whole translation: the
// sequence unambiguously announces itself as a unicode escape, so
// leaving it verbatim would silently corrupt the output.
var ErrInvalidUnicodeEscape = errors.New("invalid unicode escape sequence")

// UnicodeEscaper returns a Translator that rewrites every codepoint
// inside r as a \uXXXX escape with four uppercase hex digits.
// Codepoints beyond the Basic Multilingual Plane are written as a
// surrogate pair, \uXXXX\uXXXX, so that the output is valid in UTF-16
// based notations such as Java string literals.
func UnicodeEscaper(r Range) Translator {
	return &unicodeEscaper{r: r}
}

// UnicodeEscaperOutside is like UnicodeEscaper but rewrites the
// codepoints outside r. The typical use passes the "safe" printable
// range so that everything else gets escaped.
func UnicodeEscaperOutside(r Range) Translator {
	return &unicodeEscaper{r: r, outside: true}
}

type unicodeEscaper struct {
	r       Range
	outside bool
}

func (e *unicodeEscaper) Translate(dst []byte, src string, index int) ([]byte, int, error) {
	c, size := utf8.DecodeRuneInString(src[index:])
	if c == utf8.RuneError && size == 1 {
		return dst, 0, nil
	}
	if e.r.Contains(c) == e.outside {
		return dst, 0, nil
	}
	if c > 0xFFFF {
		hi, lo := utf16.EncodeRune(c)
		dst = appendUnicodeEscape(dst, hi)
		dst = appendUnicodeEscape(dst, lo)
	} else {
		dst = appendUnicodeEscape(dst, c)
	}
	return dst, size, nil
}

const upperhex = "0123456789ABCDEF"

func appendUnicodeEscape(dst []byte, c rune) []byte {
	return append(dst, '\\', 'u',
		upperhex[c>>12&0xF], upperhex[c>>8&0xF], upperhex[c>>4&0xF], upperhex[c&0xF])
}

// UnicodeUnescaper returns a Translator that converts \uXXXX escapes
// back into codepoints. Repeated u characters are tolerated (\uu0041),
// as is a + sign before the digits; both forms occur in the wild.
//
// A high-surrogate escape immediately followed by a low-surrogate
// escape is combined into the single codepoint the pair encodes. An
// unpaired surrogate escape becomes U+FFFD.
//
// A sequence that starts \u but is truncated or has non-hex digits
// fails the translation with an error wrapping ErrInvalidUnicodeEscape.
func UnicodeUnescaper() Translator {
	return unicodeUnescaper{}
}

type unicodeUnescaper struct{}

func (unicodeUnescaper) Translate(dst []byte, src string, index int) ([]byte, int, error) {
	n, c, err := parseUnicodeEscape(src, index)
	if n == 0 || err != nil {
		return dst, 0, err
	}
	if !utf16.IsSurrogate(c) {
		return utf8.AppendRune(dst, c), n, nil
	}
	if c < 0xDC00 {
		// High surrogate: pair it with an immediately following
		// low-surrogate escape.
		n2, c2, err := parseUnicodeEscape(src, index+n)
		if err != nil {
			return dst, 0, err
		}
		if n2 > 0 && 0xDC00 <= c2 && c2 < 0xE000 {
			return utf8.AppendRune(dst, utf16.DecodeRune(c, c2)), n + n2, nil
		}
	}
	return utf8.AppendRune(dst, utf8.RuneError), n, nil
}

// parseUnicodeEscape reads one \uXXXX sequence at index. It returns the
// bytes consumed and the 16-bit value, consumed == 0 when the text there
// is not a unicode escape at all, and an error when it is one but is
// malformed.
func parseUnicodeEscape(src string, index int) (consumed int, c rune, err error) {
	s := src[index:]
	if len(s) < 2 || s[0] != '\\' || s[1] != 'u' {
		return 0, 0, nil
	}
	i := 2
	for i < len(s) && s[i] == 'u' {
		i++
	}
	// A '+' may follow the u's; the JDK's native2ascii emits this form.
	if i < len(s) && s[i] == '+' {
		i++
	}
	if i+4 > len(s) {
		return 0, 0, fmt.Errorf("%w: %q ends before 4 hex digits (offset %d)", ErrInvalidUnicodeEscape, s, index)
	}
	for _, d := range []byte(s[i : i+4]) {
		v := unhex(d)
		if v < 0 {
			return 0, 0, fmt.Errorf("%w: cannot parse %q (offset %d)", ErrInvalidUnicodeEscape, s[:i+4], index)
		}
		c = c<<4 | rune(v)
	}
	return i + 4, c, nil
}

// OctalUnescaper returns a Translator that converts backslash octal
// escapes, \NNN, back into characters. One to three octal digits are
// taken; a third digit is only taken when the first is 0-3, keeping the
// value within \377. A backslash not followed by an octal digit is not
// a match.
func OctalUnescaper() Translator {
	return octalUnescaper{}
}

type octalUnescaper struct{}

func (octalUnescaper) Translate(dst []byte, src string, index int) ([]byte, int, error) {
	s := src[index:]
	if len(s) < 2 || s[0] != '\\' || !isOctal(s[1]) {
		return dst, 0, nil
	}
	i := 2
	if i < len(s) && isOctal(s[i]) {
		i++
		if i < len(s) && s[1] <= '3' && isOctal(s[i]) {
			i++
		}
	}
	var v rune
	for _, c := range []byte(s[1:i]) {
		v = v<<3 | rune(c-'0')
	}
	return utf8.AppendRune(dst, v), i, nil
}

func isOctal(c byte) bool {
	return '0' <= c && c <= '7'
}

func unhex(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}
