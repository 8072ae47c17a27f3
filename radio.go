package intakevalidation

import (
	"fmt"

	"github.com/asaskevich/govalidator"
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// RadioControl is one member of a radio group.
type RadioControl struct {
	Value   string `json:"value"`
	Checked bool   `json:"checked"`
}

// RadioGroup is the set of controls sharing a name, in the order they appear
// on the form.
type RadioGroup []RadioControl

// NewRadioGroup builds a group with one control per option, checking the
// control whose value equals selected. An empty selected leaves every control
// unchecked, even when one of the options is itself the empty string.
func NewRadioGroup(options []string, selected string) RadioGroup {
	g := make(RadioGroup, len(options))
	for i, o := range options {
		g[i] = RadioControl{
			Value:   o,
			Checked: !govalidator.IsNull(selected) && o == selected,
		}
	}
	return g
}

// Selected returns the value of the first checked control.
func (g RadioGroup) Selected() (string, bool) {
	for _, c := range g {
		if c.Checked {
			return c.Value, true
		}
	}
	return "", false
}

// focusIndex points focus at the first control; an empty group has nothing
// to focus.
func (g RadioGroup) focusIndex() (int, bool) {
	return 0, len(g) > 0
}

type checkedRule struct {
	message string
}

// Checked returns a rule for a [RadioGroup] that passes when at least one
// control is checked.
func Checked(message string) Rule {
	return checkedRule{message: message}
}

func (r checkedRule) Validate(value any) error {
	g, ok := value.(RadioGroup)
	if !ok {
		return fmt.Errorf("expected RadioGroup, got %T", value)
	}
	if _, ok := g.Selected(); ok {
		return nil
	}
	return validation.NewError(CodeRadioUnchecked, r.message)
}

func (r checkedRule) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if err := Required.Describe(name, schema, ref); err != nil {
		return err
	}
	appendDescription(ref, "at least one control must be checked")
	return nil
}
