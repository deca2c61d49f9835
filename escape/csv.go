package escape

import "fmt"

// csvSpecial holds the bytes that force a CSV column to be quoted.
var csvSpecial = newByteSet(",\"\r\n")

// CSVEscaper returns a Translator that renders a string as a single
// CSV column. A value containing a comma, a double quote, CR or LF is
// wrapped in double quotes with embedded quotes doubled; any other
// value is copied unchanged.
//
// The translator consumes the whole input in one call and panics if
// invoked at a nonzero index, so it cannot take part in a Chain. Use it
// through Translate or AppendTranslate, or through CSV.
func CSVEscaper() Translator {
	return csvEscaper{}
}

type csvEscaper struct{}

func (csvEscaper) Translate(dst []byte, src string, index int) ([]byte, int, error) {
	mustBeStart(index)
	if !csvSpecial.containsAny(src) {
		return append(dst, src...), len(src), nil
	}
	dst = append(dst, '"')
	for i := 0; i < len(src); i++ {
		if src[i] == '"' {
			dst = append(dst, '"', '"')
		} else {
			dst = append(dst, src[i])
		}
	}
	dst = append(dst, '"')
	return dst, len(src), nil
}

// CSVUnescaper returns the inverse of CSVEscaper. A value that does not
// both start and end with a double quote is copied unchanged, as is a
// quoted value whose body holds no character that required quoting.
// Otherwise the surrounding quotes are stripped and doubled quotes
// collapsed. Values shorter than two bytes are never treated as quoted.
//
// Like CSVEscaper it consumes the whole input and panics if invoked at
// a nonzero index.
func CSVUnescaper() Translator {
	return csvUnescaper{}
}

type csvUnescaper struct{}

func (csvUnescaper) Translate(dst []byte, src string, index int) ([]byte, int, error) {
	mustBeStart(index)
	if len(src) < 2 || src[0] != '"' || src[len(src)-1] != '"' {
		return append(dst, src...), len(src), nil
	}
	body := src[1 : len(src)-1]
	if !csvSpecial.containsAny(body) {
		// Quoting was unnecessary, so it is preserved verbatim.
		return append(dst, src...), len(src), nil
	}
	for i := 0; i < len(body); i++ {
		c := body[i]
		dst = append(dst, c)
		if c == '"' && i+1 < len(body) && body[i+1] == '"' {
			i++
		}
	}
	return dst, len(src), nil
}

func mustBeStart(index int) {
	if index != 0 {
		panic(fmt.Sprintf("csv translator invoked at index %d; it translates whole values only", index))
	}
}
