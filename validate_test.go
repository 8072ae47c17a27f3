package intakevalidation_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	v "github.com/Gobd/intakevalidation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============ Test types ============

type signup struct {
	Nick  string `json:"nick"`
	Email string `json:"email"`
	Note  string `json:"note"`
	Plan  v.RadioGroup
}

func (s *signup) Checks() []*v.Check {
	return []*v.Check{
		v.NewCheck("Nick", v.Field(&s.Nick, v.Required.Error("nick required"))),
		v.NewCheck("Email", v.Field(&s.Email, v.Required.Error("email required"))),
		v.NewCheck("Plan", v.Field(&s.Plan, v.Checked("pick a plan"))),
	}
}

type notAStruct []string

func (n *notAStruct) Checks() []*v.Check { return nil }

type foreignField struct {
	Name string
}

var stray string

func (f *foreignField) Checks() []*v.Check {
	return []*v.Check{v.NewCheck("Stray", v.Field(&stray, v.Required))}
}

// recordingPresenter records side effects in call order.
type recordingPresenter struct {
	calls []string
}

func (p *recordingPresenter) Alert(message string) {
	p.calls = append(p.calls, "alert:"+message)
}

func (p *recordingPresenter) Focus(ref v.FieldRef) {
	p.calls = append(p.calls, "focus:"+ref.String())
}

// countingRule counts how often it runs.
type countingRule struct {
	v.Rule
	n *int
}

func (r countingRule) Validate(value any) error {
	*r.n++
	return r.Rule.Validate(value)
}

// ============ Tests ============

func TestValidate_Custom(t *testing.T) {
	s := &signup{Nick: "n", Email: "e", Plan: v.NewRadioGroup([]string{"free"}, "free")}
	assert.NoError(t, v.Validate(s))

	s.Email = ""
	fe := requireFieldError(t, v.Validate(s))
	assert.Equal(t, "Email", fe.Check)
	assert.Equal(t, "email", fe.Field)
	assert.Equal(t, "email required", fe.Message)
}

func TestValidate_FieldNameFallsBackToGoName(t *testing.T) {
	s := &signup{Nick: "n", Email: "e"}
	fe := requireFieldError(t, v.Validate(s))
	assert.Equal(t, "Plan", fe.Field)
	assert.Nil(t, fe.Focus)
}

func TestValidate_NotAStruct(t *testing.T) {
	err := v.Validate(&notAStruct{})
	require.Error(t, err)
	assert.False(t, v.IsFieldError(err))
}

func TestValidate_FieldOutsideStruct(t *testing.T) {
	err := v.Validate(&foreignField{})
	require.Error(t, err)
	assert.False(t, v.IsFieldError(err))
	assert.Contains(t, err.Error(), "not found in struct")
}

func TestBattery_ShortCircuits(t *testing.T) {
	var first, second int
	s := &signup{}
	b := v.Battery{
		v.NewCheck("Nick", v.Field(&s.Nick, countingRule{v.Required, &first})),
		v.NewCheck("Email", v.Field(&s.Email, countingRule{v.Required, &second})),
	}

	require.Error(t, b.Run(s))
	assert.Equal(t, 1, first)
	assert.Equal(t, 0, second, "checks after the first failure must not run")

	s.Nick = "n"
	s.Email = "e"
	require.NoError(t, b.Run(s))
	assert.Equal(t, 2, first)
	assert.Equal(t, 1, second)
}

func TestBattery_RulesWithinFieldShortCircuit(t *testing.T) {
	var n int
	s := &signup{}
	b := v.Battery{
		v.NewCheck("Nick", v.Field(&s.Nick, v.Required, countingRule{v.Length(1, 3), &n})),
	}

	require.Error(t, b.Run(s))
	assert.Equal(t, 0, n)
}

func TestBattery_Empty(t *testing.T) {
	assert.NoError(t, v.Battery{}.Run(&signup{}))
}

func TestSubmit_Valid(t *testing.T) {
	p := &recordingPresenter{}
	assert.True(t, v.Submit(validForm(), p))
	assert.Empty(t, p.calls)
}

func TestSubmit_AlertThenFocus(t *testing.T) {
	f := validForm()
	f.DOB = "13-31-2020"

	p := &recordingPresenter{}
	assert.False(t, v.Submit(f, p))
	assert.Equal(t, []string{
		"alert:Date of Birth must be in MM/DD/YYYY format.",
		"focus:dob",
	}, p.calls)
}

func TestSubmit_EmptyRadioGroupOnlyAlerts(t *testing.T) {
	f := validForm()
	f.Vaccinated = v.RadioGroup{}

	p := &recordingPresenter{}
	assert.False(t, v.Submit(f, p))
	assert.Equal(t, []string{"alert:Please indicate vaccination status."}, p.calls)
}

func TestSubmit_NonFieldError(t *testing.T) {
	p := &recordingPresenter{}
	assert.False(t, v.Submit(&foreignField{}, p))
	require.Len(t, p.calls, 1)
	assert.True(t, strings.HasPrefix(p.calls[0], "alert:"))
}

func TestDecodeAndValidate(t *testing.T) {
	body := `{"userid":"Valid_User1","passid":"longenough1","passid2":"longenough1",
		"fname":"Ann","lname":"Lee","dob":"01/02/1990","ssn":"123456789","addr1":"1 Main",
		"city":"Houston","state":"TX","zip":"77496","email":"ann@example.com",
		"gender":[{"value":"female","checked":true}],
		"vaccinated":[{"value":"yes","checked":false},{"value":"no","checked":true}],
		"insurance":[{"value":"yes","checked":true}]}`

	var f v.PatientForm
	require.NoError(t, v.DecodeAndValidate(strings.NewReader(body), &f))
	assert.Equal(t, "Houston", f.City)

	var bad v.PatientForm
	fe := requireFieldError(t, v.DecodeAndValidate(strings.NewReader(`{"userid":"ab12"}`), &bad))
	assert.Equal(t, "userid", fe.Field)

	err := v.DecodeAndValidate(strings.NewReader(`{"userid":`), &bad)
	require.Error(t, err)
	assert.False(t, v.IsFieldError(err))
}

func TestAsFieldError(t *testing.T) {
	_, ok := v.AsFieldError(nil)
	assert.False(t, ok)

	_, ok = v.AsFieldError(errors.New("plain"))
	assert.False(t, ok)

	f := validForm()
	f.ZIP = "7749"
	wrapped := fmt.Errorf("submit: %w", f.Validate())

	fe, ok := v.AsFieldError(wrapped)
	require.True(t, ok)
	assert.Equal(t, "zip", fe.Field)
	assert.True(t, v.IsFieldError(wrapped))
	assert.NotNil(t, errors.Unwrap(fe))
}

func TestMissingRules(t *testing.T) {
	assert.Equal(t, []string{"note"}, v.MissingRules(&signup{}))
	assert.Empty(t, v.MissingRules(&signup{}, "note"))
	assert.Empty(t, v.MissingRules(&signup{}, "Note"))
	assert.Nil(t, v.MissingRules(&foreignField{}))
}
