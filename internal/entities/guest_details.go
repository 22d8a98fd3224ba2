package entities

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	nameRe  = regexp.MustCompile(`^[A-Za-z\s]+$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[6-9]\d{9}$`)
)

var guestValidate = newGuestValidator()

func newGuestValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("alphaspace", func(fl validator.FieldLevel) bool {
		return nameRe.MatchString(fl.Field().String())
	})
	v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return emailRe.MatchString(fl.Field().String())
	})
	v.RegisterValidation("inmobile", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
	return v
}

// GuestDetails is the fragment collected on the personal-details step.
// Address fields are free text; only the four identifying fields are checked.
type GuestDetails struct {
	FirstName  string `json:"firstName"  validate:"required,alphaspace"`
	LastName   string `json:"lastName"   validate:"required,alphaspace"`
	Email      string `json:"email"      validate:"required,emailshape"`
	Phone      string `json:"phone"      validate:"required,inmobile"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// FieldErrors maps a form field to its user-facing validation message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	for field, msg := range e {
		return field + ": " + msg
	}
	return "invalid guest details"
}

var guestFieldMessages = map[string]string{
	"FirstName": "First name must contain only letters",
	"LastName":  "Last name must contain only letters",
	"Email":     "Please enter a valid email address",
	"Phone":     "Please enter a valid 10-digit Indian mobile number",
}

var guestFieldNames = map[string]string{
	"FirstName": "firstName",
	"LastName":  "lastName",
	"Email":     "email",
	"Phone":     "phone",
}

// Validate checks the identifying fields and returns one message per failing
// field. A nil return means the details may be persisted and submitted.
func (g GuestDetails) Validate() FieldErrors {
	err := guestValidate.Struct(g)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return FieldErrors{"form": err.Error()}
	}
	fields := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		name := guestFieldNames[fe.StructField()]
		if name == "" {
			name = fe.StructField()
		}
		msg := guestFieldMessages[fe.StructField()]
		if msg == "" {
			msg = "Invalid value"
		}
		fields[name] = msg
	}
	return fields
}
