package boolconv

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

var parseBoolTests = []struct {
	testName  string
	input     string
	wantValue bool
	wantOK    bool
}{{
	testName:  "true-word",
	input:     "true",
	wantValue: true,
	wantOK:    true,
}, {
	testName:  "false-word",
	input:     "false",
	wantOK:    true,
}, {
	testName:  "yes",
	input:     "yes",
	wantValue: true,
	wantOK:    true,
}, {
	testName: "no",
	input:    "no",
	wantOK:   true,
}, {
	testName:  "on",
	input:     "on",
	wantValue: true,
	wantOK:    true,
}, {
	testName: "off",
	input:    "off",
	wantOK:   true,
}, {
	testName:  "mixed-case",
	input:     "TrUe",
	wantValue: true,
	wantOK:    true,
}, {
	testName:  "upper-yes",
	input:     "YES",
	wantValue: true,
	wantOK:    true,
}, {
	testName:  "single-y",
	input:     "y",
	wantValue: true,
	wantOK:    true,
}, {
	testName:  "single-T",
	input:     "T",
	wantValue: true,
	wantOK:    true,
}, {
	testName:  "single-1",
	input:     "1",
	wantValue: true,
	wantOK:    true,
}, {
	testName: "single-n",
	input:    "n",
	wantOK:   true,
}, {
	testName: "single-F",
	input:    "F",
	wantOK:   true,
}, {
	testName: "single-0",
	input:    "0",
	wantOK:   true,
}, {
	testName: "empty",
	input:    "",
}, {
	testName: "unrecognized-word",
	input:    "maybe",
}, {
	testName: "near-miss",
	input:    "ono",
}, {
	testName: "surrounding-space",
	input:    " true",
}, {
	testName: "wrong-digit",
	input:    "2",
}}

func TestParseBool(t *testing.T) {
	c := qt.New(t)
	for _, test := range parseBoolTests {
		c.Run(test.testName, func(c *qt.C) {
			value, ok := ParseBool(test.input)
			c.Assert(ok, qt.Equals, test.wantOK)
			c.Assert(value, qt.Equals, test.wantValue)
		})
	}
}

func TestBool(t *testing.T) {
	c := qt.New(t)
	c.Assert(Bool("yes"), qt.Equals, true)
	c.Assert(Bool("OFF"), qt.Equals, false)
	c.Assert(Bool("junk"), qt.Equals, false)
}

func TestFromInt(t *testing.T) {
	c := qt.New(t)
	c.Assert(FromInt(0), qt.Equals, false)
	c.Assert(FromInt(1), qt.Equals, true)
	c.Assert(FromInt(-5), qt.Equals, true)
}

func TestFromIntValues(t *testing.T) {
	c := qt.New(t)

	v, err := FromIntValues(1, 1, 0)
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, true)

	v, err = FromIntValues(0, 1, 0)
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, false)

	v, err = FromIntValues(2, 1, 2)
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, false)

	// The true value wins when both representatives are the same.
	v, err = FromIntValues(3, 3, 3)
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, true)

	_, err = FromIntValues(7, 1, 0)
	c.Assert(err, qt.ErrorMatches, `value 7 matches neither 1 \(true\) nor 0 \(false\)`)
}

func TestFromStringValues(t *testing.T) {
	c := qt.New(t)

	v, err := FromStringValues("Y", "Y", "N")
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, true)

	v, err = FromStringValues("N", "Y", "N")
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, false)

	// Matching is exact, not case folded.
	_, err = FromStringValues("y", "Y", "N")
	c.Assert(err, qt.ErrorMatches, `value "y" matches neither "Y" \(true\) nor "N" \(false\)`)
}

func TestToInt(t *testing.T) {
	c := qt.New(t)
	c.Assert(ToInt(true), qt.Equals, 1)
	c.Assert(ToInt(false), qt.Equals, 0)
}

func TestFormat(t *testing.T) {
	c := qt.New(t)
	c.Assert(Format(true, "aye", "nay"), qt.Equals, "aye")
	c.Assert(Format(false, "aye", "nay"), qt.Equals, "nay")
	c.Assert(FormatTrueFalse(true), qt.Equals, "true")
	c.Assert(FormatTrueFalse(false), qt.Equals, "false")
	c.Assert(FormatYesNo(true), qt.Equals, "yes")
	c.Assert(FormatYesNo(false), qt.Equals, "no")
	c.Assert(FormatOnOff(true), qt.Equals, "on")
	c.Assert(FormatOnOff(false), qt.Equals, "off")
}

var combineTests = []struct {
	testName string
	combine  func(...bool) (bool, error)
	values   []bool
	want     bool
}{{
	testName: "and-all-true",
	combine:  And,
	values:   []bool{true, true, true},
	want:     true,
}, {
	testName: "and-one-false",
	combine:  And,
	values:   []bool{true, false, true},
}, {
	testName: "and-single",
	combine:  And,
	values:   []bool{true},
	want:     true,
}, {
	testName: "or-all-false",
	combine:  Or,
	values:   []bool{false, false},
}, {
	testName: "or-one-true",
	combine:  Or,
	values:   []bool{false, true, false},
	want:     true,
}, {
	testName: "xor-odd-count",
	combine:  Xor,
	values:   []bool{true, false, true, true},
	want:     true,
}, {
	testName: "xor-even-count",
	combine:  Xor,
	values:   []bool{true, true},
}, {
	testName: "xor-single",
	combine:  Xor,
	values:   []bool{true},
	want:     true,
}}

func TestCombine(t *testing.T) {
	c := qt.New(t)
	for _, test := range combineTests {
		c.Run(test.testName, func(c *qt.C) {
			got, err := test.combine(test.values...)
			c.Assert(err, qt.IsNil)
			c.Assert(got, qt.Equals, test.want)
		})
	}
}

func TestCombineEmpty(t *testing.T) {
	c := qt.New(t)
	for _, combine := range []func(...bool) (bool, error){And, Or, Xor} {
		_, err := combine()
		c.Assert(err, qt.ErrorMatches, "no values to combine")
	}
}
