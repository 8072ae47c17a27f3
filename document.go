package intakevalidation

import (
	"github.com/getkin/kin-openapi/openapi3"
)

type (
	// Rule is the interface that all validation rules must implement.
	Rule interface {
		Validate(value any) error
		Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error
	}

	// FieldRules binds a struct field pointer to its validation rules.
	FieldRules struct {
		fieldPtr any
		value    func() any
		tag      string
		rules    []Rule
	}

	// Check is one labelled entry of a [Battery]. Its fields are validated
	// in order and the first failing rule ends the check.
	Check struct {
		Label  string
		Fields []*FieldRules
	}

	// Checker is implemented by form types that declare their ordered checks.
	// Checks is called on a pointer to the form; rules read the current
	// field values through the pointers bound with [Field].
	Checker interface {
		Checks() []*Check
	}

	// Presenter surfaces a failed check to the person filling in the form.
	Presenter interface {
		Alert(message string)
		Focus(ref FieldRef)
	}
)

// NewCheck returns a labelled check over the given fields.
func NewCheck(label string, fields ...*FieldRules) *Check {
	return &Check{
		Label:  label,
		Fields: fields,
	}
}
