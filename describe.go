package intakevalidation

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

type describe struct {
	desc string
}

// Describe returns a documentation-only rule that appends desc to the schema description.
func Describe(desc string) Rule {
	return &describe{desc: desc}
}

func (r *describe) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, r.desc)
	return nil
}

func (r *describe) Validate(_ any) error {
	return nil
}

func appendDescription(ref *openapi3.SchemaRef, desc string) {
	if desc == "" {
		return
	}
	if ref.Value.Description != "" && !strings.HasSuffix(ref.Value.Description, " ") {
		ref.Value.Description += " "
	}
	ref.Value.Description += desc
}

type example struct {
	ex any
}

// Example returns a documentation-only rule that sets the schema example value.
func Example(ex any) Rule {
	return &example{ex: ex}
}

func (r *example) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Example = r.ex
	return nil
}

func (r *example) Validate(_ any) error {
	return nil
}
