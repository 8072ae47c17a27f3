package intakevalidation

import (
	"unicode/utf16"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// LengthRule checks a string's length in UTF-16 code units, the unit a
// browser counts in. Use [Length] to create one.
type LengthRule struct {
	min, max int
	err      validation.Error
}

// Length returns a validation rule that checks if a string's UTF-16 length is within the specified range.
// A max of 0 leaves the length unbounded above. Empty values pass; pair it
// with [Required] when an empty value must fail.
func Length(lo, hi int) *LengthRule {
	err := validation.ErrLengthOutOfRange
	switch {
	case lo == 0 && hi > 0:
		err = validation.ErrLengthTooLong
	case lo > 0 && hi == 0:
		err = validation.ErrLengthTooShort
	case lo > 0 && lo == hi:
		err = validation.ErrLengthInvalid
	case lo == 0 && hi == 0:
		err = validation.ErrLengthEmptyRequired
	}
	return &LengthRule{
		min: lo,
		max: hi,
		err: err.SetParams(map[string]any{"min": lo, "max": hi}),
	}
}

// Error sets the message reported when the length is out of range.
func (r *LengthRule) Error(message string) *LengthRule {
	return &LengthRule{min: r.min, max: r.max, err: r.err.SetMessage(message)}
}

func (r *LengthRule) Validate(value any) error {
	value, isNil := validation.Indirect(value)
	if isNil || validation.IsEmpty(value) {
		return nil
	}
	s, err := validation.EnsureString(value)
	if err != nil {
		return err
	}

	l := utf16Len(s)
	if r.min > 0 && l < r.min || r.max > 0 && l > r.max || r.min == 0 && r.max == 0 && l > 0 {
		return r.err
	}
	return nil
}

func (r *LengthRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.MinLength = uint64(r.min)
	if r.max > 0 {
		hi := uint64(r.max)
		ref.Value.MaxLength = &hi
	}
	return nil
}

// utf16Len counts s in UTF-16 code units. Invalid bytes count as one unit
// each, as U+FFFD.
func utf16Len(s string) int {
	n := 0
	for _, c := range s {
		n += utf16.RuneLen(c)
	}
	return n
}
