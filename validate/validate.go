package validate

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// FieldError is one failed constraint: the offending field and the message
// the form displays inline.
type FieldError struct {
	Field   string
	Message string
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("password", passwordRule)
}

const passwordSpecials = "@$!%*#?&"

func passwordRule(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if len(value) < 8 {
		return false
	}
	var letter, digit, special bool
	for _, r := range value {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	return letter && digit && special
}

// messages maps "Field.tag" to the inline message shown in the form.
var messages = map[string]string{
	"Email.required":           "Email is required",
	"Email.email":              "Please enter a valid email address",
	"Password.required":        "Password is required",
	"Password.min":             "Password must be at least 8 characters",
	"Password.password":        "Password must contain at least one letter, one number, and one special character",
	"ConfirmPassword.required": "Please confirm your password",
	"ConfirmPassword.eqfield":  "Passwords must match",
	"Name.required":            "Full name is required",
	"Name.min":                 "Name must be at least 2 characters",
	"Name.max":                 "Name must be less than 50 characters",
	"Profession.required":      "Please select your profession",
	"TermsAccepted.eq":         "You must accept the terms and conditions",
	"OldPassword.required":     "Current password is required",
}

// Check evaluates a form schema and returns the failed constraints in field
// order; an empty result means the form may be submitted. Validation runs
// before any network call is made.
func Check(form any) []FieldError {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []FieldError{{Field: "", Message: err.Error()}}
	}
	var ret []FieldError
	for _, e := range validationErrs {
		message, ok := messages[e.StructField()+"."+e.Tag()]
		if !ok {
			message = fmt.Sprintf("Field '%s' is invalid: %s", e.StructField(), e.Tag())
		}
		ret = append(ret, FieldError{Field: e.StructField(), Message: message})
	}
	return ret
}
