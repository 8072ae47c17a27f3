package intakevalidation

import (
	"reflect"
	"strings"
)

// MissingRules returns the names of exported struct fields that no check
// covers. Fields tagged json:"-" or validate:"-" are skipped.
//
// Use in tests to catch forgotten fields:
//
//	assert.Empty(t, v.MissingRules(&PatientForm{}))
func MissingRules(c Checker, exclude ...string) []string {
	checks := c.Checks()
	if err := resolveTags(c, checks); err != nil {
		return nil
	}

	covered := map[string]bool{}
	for _, ch := range checks {
		for _, fr := range ch.Fields {
			covered[fr.tag] = true
		}
	}

	// Build exclude set (accepts both Go field name and json tag name).
	excl := map[string]bool{}
	for _, e := range exclude {
		excl[e] = true
	}

	var missing []string
	t := reflect.Indirect(reflect.ValueOf(c)).Type()
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		if strings.Split(sf.Tag.Get("json"), ",")[0] == "-" || sf.Tag.Get("validate") == "-" {
			continue
		}
		key := fieldKey(sf)
		if excl[key] || excl[sf.Name] {
			continue
		}
		if !covered[key] {
			missing = append(missing, key)
		}
	}
	return missing
}
