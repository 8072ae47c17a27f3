package intakevalidation

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type equalRule struct {
	other   *string
	message string
	desc    string
}

// EqualTo returns a rule that checks a string equals the current value behind
// other. The comparison is exact, with no trimming.
func EqualTo(other *string, message, desc string) Rule {
	return equalRule{
		other:   other,
		message: message,
		desc:    desc,
	}
}

func (r equalRule) Validate(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	if r.other == nil || s != *r.other {
		return validation.NewError(CodeConfirmMismatch, r.message)
	}
	return nil
}

func (r equalRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, r.desc)
	return nil
}
