package intakevalidation

import (
	"github.com/asaskevich/govalidator"
	"github.com/getkin/kin-openapi/openapi3"
)

// whitespaceClass is the body of a regexp character class holding the
// characters a browser's String.prototype.trim and \s treat as whitespace.
const whitespaceClass = `\t\n\v\f\r \x{a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}`

// Trimmed returns a rule that strips leading and trailing whitespace from a
// string value before applying rules in order. Whitespace is the set in
// whitespaceClass, so U+FEFF is trimmed and U+0085 is not. The field itself
// is left untouched. Non-string values are passed through as they are.
func Trimmed(rules ...Rule) Rule {
	return &trimRule{rules}
}

type trimRule struct {
	rules []Rule
}

func (r *trimRule) Validate(value any) error {
	if s, ok := value.(string); ok {
		value = govalidator.Trim(s, whitespaceClass)
	}
	return validateValueRules(value, r.rules)
}

func (r *trimRule) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	for i := range r.rules {
		if err := r.rules[i].Describe(name, schema, ref); err != nil {
			return err
		}
	}
	return nil
}
