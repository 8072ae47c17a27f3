package intakevalidation_test

import (
	"fmt"

	v "github.com/Gobd/intakevalidation"
)

type consolePresenter struct{}

func (consolePresenter) Alert(message string) { fmt.Println("alert:", message) }
func (consolePresenter) Focus(ref v.FieldRef) { fmt.Println("focus:", ref) }

func ExampleValidate() {
	form := &v.PatientForm{UserID: "ab12"}
	err := v.Validate(form)
	fmt.Println(err)
	// Output: User ID must be between 5 and 20 characters.
}

func ExampleSubmit() {
	form := &v.PatientForm{
		UserID:          "Valid_User1",
		Password:        "longenough1",
		PasswordConfirm: "longenough1",
		FirstName:       "Ann",
		LastName:        "Lee",
		DOB:             "02/27/2026",
		SSN:             "123456789",
		Address1:        "1 Main St.",
		City:            "Houston",
		State:           "TX",
		ZIP:             "77496",
		Email:           "ann@example.com",
		Vaccinated:      v.NewRadioGroup(v.VaccinatedOptions, "yes"),
		Insurance:       v.NewRadioGroup(v.InsuranceOptions, "yes"),
		Gender:          v.NewRadioGroup(v.GenderOptions, ""),
	}

	ok := v.Submit(form, consolePresenter{})
	fmt.Println("submit:", ok)
	// Output:
	// alert: Please select a gender.
	// focus: gender
	// submit: false
}

func ExampleNewRadioGroup() {
	g := v.NewRadioGroup(v.GenderOptions, "female")
	sel, _ := g.Selected()
	fmt.Println(len(g), sel)
	// Output: 3 female
}
