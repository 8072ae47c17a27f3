package intakevalidation

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type requiredRule struct {
	validation.RequiredRule
	desc string
}

// Required is a validation rule that checks if a value is not empty.
// A string is empty only when its length is zero; whitespace counts as a value.
var Required = requiredRule{
	validation.Required,
	"required",
}

// Error sets the message reported when the value is empty.
func (r requiredRule) Error(message string) requiredRule {
	return requiredRule{r.RequiredRule.Error(message), r.desc}
}

func (r requiredRule) Describe(name string, schema *openapi3.Schema, _ *openapi3.SchemaRef) error {
	for _, n := range schema.Required {
		if n == name {
			return nil
		}
	}
	schema.Required = append(schema.Required, name)
	return nil
}
