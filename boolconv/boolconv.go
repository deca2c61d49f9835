// Package boolconv converts between booleans and the words and numbers
// that commonly stand for them.
//
// The string forms recognized are true/false, yes/no, on/off and the
// single characters y, n, t, f, 1 and 0, all matched without regard to
// case. Conversion against caller-chosen representative values is
// available through FromIntValues and FromStringValues.
package boolconv

import (
	"errors"
	"fmt"
	"strings"
)

// ParseBool reports the boolean named by s. It returns ok == false when
// s names no boolean at all; the word "maybe" is not false, it is
// unrecognized.
func ParseBool(s string) (value, ok bool) {
	switch len(s) {
	case 1:
		switch s[0] {
		case 'y', 'Y', 't', 'T', '1':
			return true, true
		case 'n', 'N', 'f', 'F', '0':
			return false, true
		}
	case 2:
		if strings.EqualFold(s, "on") {
			return true, true
		}
		if strings.EqualFold(s, "no") {
			return false, true
		}
	case 3:
		if strings.EqualFold(s, "yes") {
			return true, true
		}
		if strings.EqualFold(s, "off") {
			return false, true
		}
	case 4:
		if strings.EqualFold(s, "true") {
			return true, true
		}
	case 5:
		if strings.EqualFold(s, "false") {
			return false, true
		}
	}
	return false, false
}

// Bool is ParseBool with unrecognized input collapsed to false.
func Bool(s string) bool {
	v, _ := ParseBool(s)
	return v
}

// FromInt converts an integer to a boolean the C way: zero is false,
// everything else is true.
func FromInt(v int) bool {
	return v != 0
}

// FromIntValues converts v using caller-chosen representatives. The
// true value is checked first, so when trueValue == falseValue every
// match comes out true. A v matching neither is an error.
func FromIntValues(v, trueValue, falseValue int) (bool, error) {
	switch v {
	case trueValue:
		return true, nil
	case falseValue:
		return false, nil
	}
	return false, fmt.Errorf("value %d matches neither %d (true) nor %d (false)", v, trueValue, falseValue)
}

// FromStringValues converts s using caller-chosen representatives,
// compared exactly. The true value is checked first.
func FromStringValues(s, trueStr, falseStr string) (bool, error) {
	switch s {
	case trueStr:
		return true, nil
	case falseStr:
		return false, nil
	}
	return false, fmt.Errorf("value %q matches neither %q (true) nor %q (false)", s, trueStr, falseStr)
}

// ToInt converts a boolean to 1 or 0.
func ToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Format returns trueStr when b is true and falseStr otherwise.
func Format(b bool, trueStr, falseStr string) string {
	if b {
		return trueStr
	}
	return falseStr
}

// FormatTrueFalse formats b as "true" or "false".
func FormatTrueFalse(b bool) string {
	return Format(b, "true", "false")
}

// FormatYesNo formats b as "yes" or "no".
func FormatYesNo(b bool) string {
	return Format(b, "yes", "no")
}

// FormatOnOff formats b as "on" or "off".
func FormatOnOff(b bool) string {
	return Format(b, "on", "off")
}

var errNoValues = errors.New("no values to combine")

// And reports whether every value is true. Combining zero values is an
// error rather than a vacuous truth.
func And(vs ...bool) (bool, error) {
	if len(vs) == 0 {
		return false, errNoValues
	}
	for _, v := range vs {
		if !v {
			return false, nil
		}
	}
	return true, nil
}

// Or reports whether any value is true. Combining zero values is an
// error.
func Or(vs ...bool) (bool, error) {
	if len(vs) == 0 {
		return false, errNoValues
	}
	for _, v := range vs {
		if v {
			return true, nil
		}
	}
	return false, nil
}

// Xor reports whether an odd number of the values is true. Combining
// zero values is an error.
func Xor(vs ...bool) (bool, error) {
	if len(vs) == 0 {
		return false, errNoValues
	}
	result := false
	for _, v := range vs {
		result = result != v
	}
	return result, nil
}
