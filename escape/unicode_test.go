package escape

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestUnicodeEscaper(t *testing.T) {
	c := qt.New(t)

	e := UnicodeEscaperOutside(Between(0x20, 0x7e))

	got, err := Translate(e, "aéb")
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, "a\\u00E9b")

	got, err = Translate(e, "\x01")
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, "\\u0001")

	// The codepoint is written as a UTF-16 surrogate pair.
	got, err = Translate(e, "𝄞")
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, "\\uD834\\uDD1E")

	// Invalid bytes are not codepoints and pass through untouched.
	got, err = Translate(e, "a\x80b")
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, "a\x80b")
}

func TestUnicodeEscaperInsideRange(t *testing.T) {
	c := qt.New(t)
	got, err := Translate(UnicodeEscaper(Between('a', 'b')), "abc")
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, "\\u0061\\u0062c")
}

var unicodeUnescaperTests = []struct {
	testName string
	input    string
	expect   string
	wantErr  string
}{{
	testName: "plain",
	input:    "\\u0041",
	expect:   "A",
}, {
	testName: "embedded",
	input:    "x\\u0041y",
	expect:   "xAy",
}, {
	testName: "repeated-u",
	input:    "\\uu0041",
	expect:   "A",
}, {
	testName: "many-u",
	input:    "\\uuuuuu0041",
	expect:   "A",
}, {
	testName: "plus-form",
	input:    "\\u+0041",
	expect:   "A",
}, {
	testName: "lowercase-hex",
	input:    "\\u00e9",
	expect:   "é",
}, {
	testName: "surrogate-pair-combines",
	input:    "\\uD834\\uDD1E",
	expect:   "𝄞",
}, {
	testName: "unpaired-high-surrogate",
	input:    "\\uD834x",
	expect:   "�x",
}, {
	testName: "unpaired-low-surrogate",
	input:    "\\uDD1E",
	expect:   "�",
}, {
	testName: "high-surrogate-at-end",
	input:    "\\uD834",
	expect:   "�",
}, {
	testName: "two-high-surrogates",
	input:    "\\uD834\\uD834",
	expect:   "��",
}, {
	testName: "not-an-escape",
	input:    "\\x41",
	expect:   "\\x41",
}, {
	testName: "truncated",
	input:    "\\u00",
	wantErr:  `invalid unicode escape sequence: "\\\\u00" ends before 4 hex digits \(offset 0\)`,
}, {
	testName: "truncated-empty",
	input:    "\\u",
	wantErr:  `invalid unicode escape sequence: .* ends before 4 hex digits \(offset 0\)`,
}, {
	testName: "bad-hex",
	input:    "\\uzzzz",
	wantErr:  `invalid unicode escape sequence: cannot parse "\\\\uzzzz" \(offset 0\)`,
}, {
	testName: "bad-hex-after-good-prefix",
	input:    "ab\\u12g4",
	wantErr:  `invalid unicode escape sequence: cannot parse "\\\\u12g4" \(offset 2\)`,
}, {
	testName: "truncated-low-surrogate-is-fatal",
	input:    "\\uD834\\uDD",
	wantErr:  `invalid unicode escape sequence: "\\\\uDD" ends before 4 hex digits \(offset 6\)`,
}}

func TestUnicodeUnescaper(t *testing.T) {
	c := qt.New(t)
	for _, test := range unicodeUnescaperTests {
		c.Run(test.testName, func(c *qt.C) {
			got, err := Translate(UnicodeUnescaper(), test.input)
			if test.wantErr != "" {
				c.Assert(err, qt.ErrorMatches, test.wantErr)
				c.Assert(err, qt.ErrorIs, ErrInvalidUnicodeEscape)
				return
			}
			c.Assert(err, qt.IsNil)
			c.Assert(got, qt.Equals, test.expect)
		})
	}
}

var octalUnescaperTests = []struct {
	testName string
	input    string
	expect   string
}{{
	testName: "single-digit",
	input:    "\\7",
	expect:   "\x07",
}, {
	testName: "two-digits",
	input:    "\\47",
	expect:   "'",
}, {
	testName: "three-digits",
	input:    "\\101",
	expect:   "A",
}, {
	testName: "max-value",
	input:    "\\377",
	expect:   "ÿ",
}, {
	testName: "third-digit-needs-leading-0-to-3",
	input:    "\\400",
	expect:   "\x20" + "0",
}, {
	testName: "stops-at-non-octal",
	input:    "\\18",
	expect:   "\x01" + "8",
}, {
	testName: "stops-after-three",
	input:    "\\1011",
	expect:   "A1",
}, {
	testName: "no-octal-digit",
	input:    "\\8",
	expect:   "\\8",
}, {
	testName: "backslash-at-end",
	input:    "x\\",
	expect:   "x\\",
}}

func TestOctalUnescaper(t *testing.T) {
	c := qt.New(t)
	for _, test := range octalUnescaperTests {
		c.Run(test.testName, func(c *qt.C) {
			got, err := Translate(OctalUnescaper(), test.input)
			c.Assert(err, qt.IsNil)
			c.Assert(got, qt.Equals, test.expect)
		})
	}
}
