package escape

import (
	"io"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"golang.org/x/text/transform"
)

func TestTransformerMatchesTranslate(t *testing.T) {
	c := qt.New(t)
	src := strings.Repeat("He said \"hi\", café 𝄞 a\\b\n", 400)

	r := transform.NewReader(strings.NewReader(src), NewTransformer(escapeJava))
	got, err := io.ReadAll(r)
	c.Assert(err, qt.IsNil)
	c.Assert(string(got), qt.Equals, Java(src))
}

func TestTransformerHoldsSequencesAcrossChunks(t *testing.T) {
	c := qt.New(t)

	// Long enough that escape sequences land on every internal buffer
	// boundary at some point.
	src := strings.Repeat("\\u0041", 3000)
	r := transform.NewReader(strings.NewReader(src), NewTransformer(unescapeJava))
	got, err := io.ReadAll(r)
	c.Assert(err, qt.IsNil)
	c.Assert(string(got), qt.Equals, strings.Repeat("A", 3000))
}

func TestTransformerString(t *testing.T) {
	c := qt.New(t)
	got, _, err := transform.String(NewTransformer(escapeHTML4), "café & α")
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, "caf&eacute; &amp; &alpha;")
}

func TestTransformerPropagatesError(t *testing.T) {
	c := qt.New(t)
	r := transform.NewReader(strings.NewReader("ok \\u00"), NewTransformer(unescapeJava))
	_, err := io.ReadAll(r)
	c.Assert(err, qt.ErrorIs, ErrInvalidUnicodeEscape)
}

func TestTransformerEmptyInput(t *testing.T) {
	c := qt.New(t)
	got, _, err := transform.String(NewTransformer(escapeJava), "")
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, "")
}
