// Package intakevalidation validates a patient-intake form before it is
// submitted.
//
// A form type describes its checks by implementing [Checker]. Each [Check]
// binds one or more fields to ordered rules:
//
//	func (f *PatientForm) Checks() []*Check {
//	    return []*Check{
//	        NewCheck("City", Field(&f.City, Trimmed(Required.Error("City is required.")))),
//	    }
//	}
//
// [Validate] runs the checks in declaration order and stops at the first
// failure, which it returns as a [*FieldError] carrying the message and the
// control to focus. [Submit] adapts that result to a [Presenter], the layer
// that shows the message and moves focus.
//
// The same rules describe the form as an OpenAPI schema through
// [NewSchemaRefForValue].
//
// Sub-packages:
//   - openapi – OpenAPI document and endpoint helpers
package intakevalidation
