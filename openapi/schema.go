package openapi

import (
	iv "github.com/Gobd/intakevalidation"
	"github.com/getkin/kin-openapi/openapi3"
)

// NewSchemaRefForValue generates an OpenAPI schema for the given value,
// applying the rules of types that implement [intakevalidation.Checker].
func NewSchemaRefForValue(value any) (*openapi3.SchemaRef, error) {
	return iv.NewSchemaRefForValue(value)
}
