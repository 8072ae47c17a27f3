package intakevalidation

import "regexp"

// Options of the patient form's radio groups, in page order.
var (
	GenderOptions     = []string{"male", "female", "other"}
	VaccinatedOptions = []string{"yes", "no"}
	InsuranceOptions  = []string{"yes", "no"}
)

var (
	userIDRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	nameRe   = regexp.MustCompile(`^[A-Za-z` + whitespaceClass + `\-']+$`)
	dobRe    = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
	cityRe   = regexp.MustCompile(`^[A-Za-z` + whitespaceClass + `\-.]+$`)
	zipRe    = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	emailRe  = regexp.MustCompile(`^\w+([.\-]?\w+)*@\w+([.\-]?\w+)*(\.\w{2,})+$`)
)

const (
	msgUserIDLength    = "User ID must be between 5 and 20 characters."
	msgUserIDCharset   = "User ID may only contain letters, numbers, and underscores."
	msgPasswordLength  = "Password must be at least 7 characters long."
	msgPasswordConfirm = "Passwords do not match. Please re-enter."
	msgDOBRequired     = "Date of Birth is required."
	msgDOBFormat       = "Date of Birth must be in MM/DD/YYYY format."
	msgSSN             = "Social Security Number is required (9–11 characters)."
	msgAddress         = "Address Line 1 is required."
	msgCityRequired    = "City is required."
	msgCityCharset     = "City must contain only letters and spaces."
	msgState           = "Please select a state."
	msgZIP             = "ZIP Code must be 5 digits (e.g. 77496) or ZIP+4 (e.g. 77496-1234)."
	msgEmail           = "Please enter a valid email address (name@domain.tld)."
	msgGender          = "Please select a gender."
	msgVaccinated      = "Please indicate vaccination status."
	msgInsurance       = "Please indicate whether you have insurance."
)

// PatientForm holds the current values of the patient intake form, keyed
// by control name.
type PatientForm struct {
	UserID          string     `json:"userid"`
	Password        string     `json:"passid"`
	PasswordConfirm string     `json:"passid2"`
	FirstName       string     `json:"fname"`
	LastName        string     `json:"lname"`
	DOB             string     `json:"dob"`
	SSN             string     `json:"ssn"`
	Address1        string     `json:"addr1"`
	City            string     `json:"city"`
	State           string     `json:"state"`
	ZIP             string     `json:"zip"`
	Email           string     `json:"email"`
	Gender          RadioGroup `json:"gender"`
	Vaccinated      RadioGroup `json:"vaccinated"`
	Insurance       RadioGroup `json:"insurance"`
}

// Checks returns the fourteen checks of the form in the order a person sees
// their errors.
func (f *PatientForm) Checks() []*Check {
	return []*Check{
		NewCheck("User ID",
			Field(&f.UserID, Trimmed(
				Required.Error(msgUserIDLength),
				Length(5, 20).Error(msgUserIDLength),
				Match(userIDRe, msgUserIDCharset),
			), Example("Valid_User1")),
		),
		NewCheck("Password",
			Field(&f.Password,
				Required.Error(msgPasswordLength),
				Length(7, 0).Error(msgPasswordLength),
			),
			Field(&f.PasswordConfirm,
				EqualTo(&f.Password, msgPasswordConfirm, "must repeat passid"),
			),
		),
		nameCheck(&f.FirstName, "First Name"),
		nameCheck(&f.LastName, "Last Name"),
		NewCheck("Date of Birth",
			Field(&f.DOB, Trimmed(
				Required.Error(msgDOBRequired),
				Match(dobRe, msgDOBFormat),
			), Describe("MM/DD/YYYY"), Example("02/27/2026")),
		),
		NewCheck("Social Security Number",
			Field(&f.SSN, Trimmed(
				Required.Error(msgSSN),
				Length(9, 0).Error(msgSSN),
			)),
		),
		NewCheck("Address Line 1",
			Field(&f.Address1, Trimmed(Required.Error(msgAddress))),
		),
		NewCheck("City",
			Field(&f.City, Trimmed(
				Required.Error(msgCityRequired),
				Match(cityRe, msgCityCharset),
			)),
		),
		NewCheck("State",
			Field(&f.State, Required.Error(msgState)),
		),
		NewCheck("ZIP Code",
			Field(&f.ZIP, Trimmed(
				Required.Error(msgZIP),
				Match(zipRe, msgZIP),
			), Example("77496-1234")),
		),
		NewCheck("Email",
			Field(&f.Email, Trimmed(
				Required.Error(msgEmail),
				Match(emailRe, msgEmail),
			), Example("name@domain.tld")),
		),
		radioCheck(&f.Gender, "Gender", msgGender),
		radioCheck(&f.Vaccinated, "Vaccinated", msgVaccinated),
		radioCheck(&f.Insurance, "Insurance", msgInsurance),
	}
}

// Validate runs the form's checks and returns the first failure.
func (f *PatientForm) Validate() error {
	return Validate(f)
}

func nameCheck(field *string, label string) *Check {
	return NewCheck(label,
		Field(field, Trimmed(
			Required.Error(label+" is required."),
			Match(nameRe, label+" must contain only letters, spaces, hyphens, or apostrophes."),
		)),
	)
}

func radioCheck(group *RadioGroup, label, message string) *Check {
	return NewCheck(label, Field(group, Checked(message)))
}
