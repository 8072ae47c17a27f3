package intakevalidation

import (
	"fmt"
	"reflect"
	"strings"
)

// Field creates a FieldRules binding a struct field pointer to its validation rules.
func Field[T any](fieldPtr *T, rules ...Rule) *FieldRules {
	return &FieldRules{
		fieldPtr: fieldPtr,
		value:    func() any { return *fieldPtr },
		rules:    rules,
	}
}

// findStructField looks for a field in the given struct.
// The field being looked for should be a pointer to the actual struct field.
// If found, the field info will be returned. Otherwise, nil will be returned.
func findStructField(structVal reflect.Value, fieldVal reflect.Value) *reflect.StructField {
	ptr := fieldVal.Pointer()
	for i := range structVal.NumField() {
		sf := structVal.Type().Field(i)
		if ptr == structVal.Field(i).UnsafeAddr() {
			// do additional type comparison because it's possible that the address of
			// an embedded struct is the same as the first field of the embedded struct
			if sf.Type == fieldVal.Elem().Type() {
				return &sf
			}
		}
	}
	return nil
}

// fieldKey returns the json tag name if present, otherwise the Go field name.
func fieldKey(sf reflect.StructField) string {
	tag := strings.Split(sf.Tag.Get("json"), ",")[0]
	if tag != "" && tag != "-" {
		return tag
	}
	return sf.Name
}

// resolveTags fills in the form name of every field in checks by matching
// field pointers against structPtr.
func resolveTags(structPtr any, checks []*Check) error {
	structVal := reflect.Indirect(reflect.ValueOf(structPtr))
	if !structVal.IsValid() || structVal.Kind() != reflect.Struct || !structVal.CanAddr() {
		return fmt.Errorf("checks must belong to a struct pointer, got %T", structPtr)
	}
	for _, c := range checks {
		for i, fr := range c.Fields {
			fv := reflect.ValueOf(fr.fieldPtr)
			if fv.Kind() != reflect.Ptr {
				return fmt.Errorf("check %q: rule target for field index %d must be a pointer, got %s", c.Label, i, fv.Kind())
			}
			sf := findStructField(structVal, fv)
			if sf == nil {
				return fmt.Errorf("check %q: rule target for field index %d not found in struct %s", c.Label, i, structVal.Type())
			}
			fr.tag = fieldKey(*sf)
		}
	}
	return nil
}
