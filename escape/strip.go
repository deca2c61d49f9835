package escape

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"
)

// xml10Chars matches the Char production of XML 1.0 §2.2. Anything
// outside it may not appear in a 1.0 document, escaped or not.
var xml10Chars = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x09, Hi: 0x0A, Stride: 1},
		{Lo: 0x0D, Hi: 0x0D, Stride: 1},
		{Lo: 0x20, Hi: 0xD7FF, Stride: 1},
		{Lo: 0xE000, Hi: 0xFFFD, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x10000, Hi: 0x10FFFF, Stride: 1},
	},
	LatinOffset: 2,
}

// xml11Chars matches the Char production of XML 1.1 §2.2, which widens
// the 1.0 set to every C0 control except NUL.
var xml11Chars = rangetable.Merge(xml10Chars, &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x01, Hi: 0x08, Stride: 1},
		{Lo: 0x0B, Hi: 0x0C, Stride: 1},
		{Lo: 0x0E, Hi: 0x1F, Stride: 1},
	},
	LatinOffset: 3,
})

// stripOutside returns a Translator that silently drops every codepoint
// not in keep, along with bytes that are not valid UTF-8. Codepoints in
// keep are left for later elements of a Chain or for verbatim copying.
func stripOutside(keep *unicode.RangeTable) Translator {
	return &stripper{keep: keep}
}

type stripper struct {
	keep *unicode.RangeTable
}

func (st *stripper) Translate(dst []byte, src string, index int) ([]byte, int, error) {
	c, size := utf8.DecodeRuneInString(src[index:])
	if c == utf8.RuneError && size == 1 {
		return dst, size, nil
	}
	if unicode.Is(st.keep, c) {
		return dst, 0, nil
	}
	return dst, size, nil
}
