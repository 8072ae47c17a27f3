package intakevalidation

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Error codes for failures that ozzo-validation has no built-in rule for.
const (
	CodeConfirmMismatch = "validation_confirm_mismatch"
	CodeRadioUnchecked  = "validation_radio_unchecked"
)

// FieldRef names a form control to focus. Index is the position within a
// radio group and 0 for single controls.
type FieldRef struct {
	Name  string `json:"name"`
	Index int    `json:"index"`
}

func (r FieldRef) String() string {
	if r.Index == 0 {
		return r.Name
	}
	return fmt.Sprintf("%s[%d]", r.Name, r.Index)
}

// FieldError is the single failure reported by [Validate]. Missing and
// malformed values share this shape and differ only in Message and Code.
type FieldError struct {
	Check   string    `json:"check"`
	Field   string    `json:"field"`
	Message string    `json:"message"`
	Focus   *FieldRef `json:"focus,omitempty"`

	err error
}

func (e *FieldError) Error() string {
	return e.Message
}

// Unwrap returns the rule error behind the failure.
func (e *FieldError) Unwrap() error {
	return e.err
}

// Code returns the ozzo-validation error code of the failing rule, or "" when
// the rule returned a plain error.
func (e *FieldError) Code() string {
	var verr validation.Error
	if errors.As(e.err, &verr) {
		return verr.Code()
	}
	return ""
}

// AsFieldError extracts a *FieldError from err.
func AsFieldError(err error) (*FieldError, bool) {
	if err == nil {
		return nil, false
	}
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// IsFieldError reports whether err is, or wraps, a *FieldError.
func IsFieldError(err error) bool {
	_, ok := AsFieldError(err)
	return ok
}
