package escape

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// holdback is the number of bytes left unprocessed at the end of a
// chunk so that an escape sequence is never matched against a
// truncated tail. No sequence any flavor recognizes comes near this
// length.
const holdback = 64

// NewTransformer adapts a Translator to the transform.Transformer
// interface, letting any per-position translator run over a byte
// stream through transform.NewReader or transform.NewWriter.
//
// Whole-value translators such as CSVEscaper cannot be streamed this
// way; they need the entire value at once.
func NewTransformer(t Translator) transform.Transformer {
	return &transformer{t: t}
}

type transformer struct {
	t       Translator
	scratch []byte
}

func (tr *transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	s := string(src)
	for nSrc < len(s) {
		if !atEOF && len(s)-nSrc < holdback {
			return nDst, nSrc, transform.ErrShortSrc
		}
		out, consumed, terr := tr.t.Translate(tr.scratch[:0], s, nSrc)
		if terr != nil {
			return nDst, nSrc, terr
		}
		if consumed == 0 {
			_, size := utf8.DecodeRuneInString(s[nSrc:])
			if nDst+size > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], s[nSrc:nSrc+size])
			nSrc += size
			continue
		}
		tr.scratch = out[:0]
		if nDst+len(out) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], out)
		nSrc += consumed
	}
	return nDst, nSrc, nil
}

// Reset implements transform.Transformer. The transformer holds no
// state between chunks, so there is nothing to clear.
func (tr *transformer) Reset() {}
