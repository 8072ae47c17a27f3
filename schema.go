package intakevalidation

import (
	"reflect"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
)

// getChecksForType returns a fresh instance of t and its checks if *t implements Checker.
func getChecksForType(t reflect.Type) (any, []*Check) {
	if t.Kind() != reflect.Struct {
		return nil, nil
	}
	inst := reflect.New(t)
	if c, ok := inst.Interface().(Checker); ok {
		return inst.Interface(), c.Checks()
	}
	return nil, nil
}

// applyRulesToSchema calls Describe on each rule for matching schema properties.
func applyRulesToSchema(checks []*Check, schema *openapi3.Schema) error {
	for k, propRef := range schema.Properties {
		for _, c := range checks {
			for _, f := range c.Fields {
				if f.tag != k {
					continue
				}
				for _, rule := range f.rules {
					if err := rule.Describe(k, schema, propRef); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

// schemaDoc returns a SchemaCustomizer that applies check rules to OpenAPI schemas.
func schemaDoc(name string, t reflect.Type, _ reflect.StructTag, schema *openapi3.Schema) error {
	inst, checks := getChecksForType(t)
	if inst == nil {
		return nil
	}
	if err := resolveTags(inst, checks); err != nil {
		return err
	}
	return applyRulesToSchema(checks, schema)
}

// NewSchemaRefForValue generates an OpenAPI schema for the given value,
// applying the rules of types that implement [Checker].
func NewSchemaRefForValue(value any) (*openapi3.SchemaRef, error) {
	g := openapi3gen.NewGenerator(openapi3gen.SchemaCustomizer(schemaDoc))
	return g.NewSchemaRefForValue(value, nil)
}
