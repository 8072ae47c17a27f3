package intakevalidation

import (
	"encoding/json"
	"io"
)

// Battery is an ordered sequence of checks evaluated left to right.
type Battery []*Check

// Validate runs the checks declared by c and returns the first failure as a
// *FieldError, or nil when every check passes.
func Validate(c Checker) error {
	return Battery(c.Checks()).Run(c)
}

// DecodeAndValidate reads JSON from r into dst, then validates it. Decoding
// errors are returned as they are; only check failures are *FieldError.
func DecodeAndValidate(r io.Reader, dst Checker) error {
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(dst); err != nil {
		return err
	}
	return Validate(dst)
}

// Submit validates c and reports a failure through p: the message is
// alerted first, then focus moves to the offending control when there is
// one. It returns true when submission may proceed.
func Submit(c Checker, p Presenter) bool {
	err := Validate(c)
	if err == nil {
		return true
	}
	fe, ok := AsFieldError(err)
	if !ok {
		p.Alert(err.Error())
		return false
	}
	p.Alert(fe.Message)
	if fe.Focus != nil {
		p.Focus(*fe.Focus)
	}
	return false
}

// Run evaluates the battery against the form behind structPtr. Evaluation
// stops at the first failing rule, so later checks never run.
func (b Battery) Run(structPtr any) error {
	if err := resolveTags(structPtr, b); err != nil {
		return err
	}
	for _, c := range b {
		if err := c.run(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Check) run() error {
	for _, fr := range c.Fields {
		value := fr.value()
		if err := validateValueRules(value, fr.rules); err != nil {
			return &FieldError{
				Check:   c.Label,
				Field:   fr.tag,
				Message: err.Error(),
				Focus:   focusFor(fr.tag, value),
				err:     err,
			}
		}
	}
	return nil
}

// focusable is implemented by values whose focus target is not simply the
// control itself.
type focusable interface {
	focusIndex() (int, bool)
}

func focusFor(name string, value any) *FieldRef {
	if f, ok := value.(focusable); ok {
		idx, ok := f.focusIndex()
		if !ok {
			return nil
		}
		return &FieldRef{Name: name, Index: idx}
	}
	return &FieldRef{Name: name}
}

// validateValueRules applies rules to a single value and returns the first error.
func validateValueRules(value any, rules []Rule) error {
	for _, rule := range rules {
		if err := rule.Validate(value); err != nil {
			return err
		}
	}
	return nil
}
