package intakevalidation

import (
	"regexp"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type matchRule struct {
	validation.MatchRule
	re *regexp.Regexp
}

// Match returns a validation rule that checks a string against re and
// reports message on mismatch. Empty values pass.
func Match(re *regexp.Regexp, message string) Rule {
	return matchRule{
		validation.Match(re).Error(message),
		re,
	}
}

func (r matchRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Pattern = r.re.String()
	return nil
}
