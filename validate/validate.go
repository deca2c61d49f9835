// Package validate supplies argument and state precondition checks that
// report violations as errors instead of panicking.
//
// Failures fall into three kinds that callers can tell apart with
// errors.Is: ErrNil for absent values, ErrEmpty for present but empty
// ones, and ErrInvalidState for checks on an object's state rather than
// on an argument. Everything else is a plain invalid-argument error
// carrying the offending value.
package validate

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strings"
)

var (
	// ErrNil reports a value that is absent where one is required.
	ErrNil = errors.New("validated value is nil")

	// ErrEmpty reports a value that is present but has no content.
	ErrEmpty = errors.New("validated value is empty")

	// ErrInvalidState reports a failed state check, as opposed to a bad
	// argument.
	ErrInvalidState = errors.New("validated state is false")
)

// True returns an error formatted from format and args unless cond
// holds. The message should describe the expectation that failed, for
// example "flow rate %v exceeds the maximum".
func True(cond bool, format string, args ...any) error {
	if cond {
		return nil
	}
	return fmt.Errorf(format, args...)
}

// ValidState is True for state checks: the returned error additionally
// satisfies errors.Is(err, ErrInvalidState).
func ValidState(cond bool, format string, args ...any) error {
	if cond {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidState, fmt.Sprintf(format, args...))
}

// NotNil returns an ErrNil error when v is nil, including when v is a
// non-nil interface holding a nil pointer, map, slice, func or channel.
func NotNil(v any) error {
	if v == nil {
		return ErrNil
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		if rv.IsNil() {
			return fmt.Errorf("%w (%T)", ErrNil, v)
		}
	}
	return nil
}

// NotEmpty checks that a slice has at least one element. A nil slice
// fails with the ErrNil kind and a non-nil empty slice with the
// ErrEmpty kind, so the two conditions stay distinguishable.
func NotEmpty[S ~[]E, E any](s S) error {
	if s == nil {
		return ErrNil
	}
	if len(s) == 0 {
		return ErrEmpty
	}
	return nil
}

// NotEmptyString checks that s has at least one byte.
func NotEmptyString(s string) error {
	if s == "" {
		return ErrEmpty
	}
	return nil
}

// NotBlank checks that s contains something besides whitespace.
func NotBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w (blank string)", ErrEmpty)
	}
	return nil
}

// NoNilElements checks that no element of a slice or array is nil. The
// returned error names the first offending index. Elements of kinds
// that cannot be nil always pass. A v that is not a slice or array at
// all is an invalid argument.
func NoNilElements(v any) error {
	if v == nil {
		return ErrNil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return fmt.Errorf("expected a slice or array, got %T", v)
	}
	for i := 0; i < rv.Len(); i++ {
		switch e := rv.Index(i); e.Kind() {
		case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
			reflect.Chan, reflect.Interface, reflect.UnsafePointer:
			if e.IsNil() {
				return fmt.Errorf("%w at index %d", ErrNil, i)
			}
		}
	}
	return nil
}

// ValidIndex checks that i indexes s.
func ValidIndex[S ~[]E, E any](s S, i int) error {
	if i < 0 || i >= len(s) {
		return fmt.Errorf("index %d out of range for length %d", i, len(s))
	}
	return nil
}

// InclusiveBetween checks that lo <= v <= hi.
func InclusiveBetween[T cmp.Ordered](lo, hi, v T) error {
	if v < lo || v > hi {
		return fmt.Errorf("value %v is not in the inclusive range [%v, %v]", v, lo, hi)
	}
	return nil
}

// ExclusiveBetween checks that lo < v < hi.
func ExclusiveBetween[T cmp.Ordered](lo, hi, v T) error {
	if v <= lo || v >= hi {
		return fmt.Errorf("value %v is not in the exclusive range (%v, %v)", v, lo, hi)
	}
	return nil
}

// MatchesPattern checks that s matches the regular expression pattern
// in its entirety. A pattern that does not compile is itself an
// invalid argument.
func MatchesPattern(s, pattern string) error {
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	if !re.MatchString(s) {
		return fmt.Errorf("string %q does not match pattern %q", s, pattern)
	}
	return nil
}

// Finite checks that v is neither infinite nor NaN.
func Finite(v float64) error {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return fmt.Errorf("value %v is not finite", v)
	}
	return nil
}

// NotNaN checks that v is not NaN. Infinities pass.
func NotNaN(v float64) error {
	if math.IsNaN(v) {
		return errors.New("value is NaN")
	}
	return nil
}
