package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fields(errs []FieldError) map[string]string {
	ret := map[string]string{}
	for _, e := range errs {
		ret[e.Field] = e.Message
	}
	return ret
}

func TestLogin(t *testing.T) {
	testCases := []struct {
		description string
		form        Login
		expect      map[string]string
	}{
		{
			description: "valid",
			form:        Login{Email: "a@b.com", Password: "secret"},
		},
		{
			description: "missing everything",
			form:        Login{},
			expect: map[string]string{
				"Email":    "Email is required",
				"Password": "Password is required",
			},
		},
		{
			description: "malformed email",
			form:        Login{Email: "not-an-email", Password: "secret"},
			expect:      map[string]string{"Email": "Please enter a valid email address"},
		},
	}
	for _, testCase := range testCases {
		actual := fields(Check(&testCase.form))
		if len(testCase.expect) == 0 {
			assert.Empty(t, actual, testCase.description)
			continue
		}
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestRegister(t *testing.T) {
	valid := Register{
		Name:            "Ada Lovelace",
		Email:           "ada@b.com",
		Profession:      "structural engineer",
		Password:        "Valid1!x",
		ConfirmPassword: "Valid1!x",
		TermsAccepted:   true,
	}
	require.Empty(t, Check(&valid))

	testCases := []struct {
		description string
		mutate      func(*Register)
		field       string
		message     string
	}{
		{"short name", func(r *Register) { r.Name = "A" }, "Name", "Name must be at least 2 characters"},
		{"missing profession", func(r *Register) { r.Profession = "" }, "Profession", "Please select your profession"},
		{"short password", func(r *Register) { r.Password = "V1!"; r.ConfirmPassword = "V1!" }, "Password", "Password must be at least 8 characters"},
		{"no special character", func(r *Register) { r.Password = "Valid1234"; r.ConfirmPassword = "Valid1234" }, "Password", "Password must contain at least one letter, one number, and one special character"},
		{"no digit", func(r *Register) { r.Password = "Valid!!!!"; r.ConfirmPassword = "Valid!!!!" }, "Password", "Password must contain at least one letter, one number, and one special character"},
		{"mismatched confirmation", func(r *Register) { r.ConfirmPassword = "Other1!x" }, "ConfirmPassword", "Passwords must match"},
		{"terms not accepted", func(r *Register) { r.TermsAccepted = false }, "TermsAccepted", "You must accept the terms and conditions"},
	}
	for _, testCase := range testCases {
		form := valid
		testCase.mutate(&form)
		actual := fields(Check(&form))
		assert.Equal(t, testCase.message, actual[testCase.field], testCase.description)
	}
}

func TestResetPassword(t *testing.T) {
	form := ResetPassword{Password: "Valid1!x", ConfirmPassword: "Valid1!x"}
	assert.Empty(t, Check(&form))

	form.ConfirmPassword = ""
	actual := fields(Check(&form))
	assert.Equal(t, "Please confirm your password", actual["ConfirmPassword"])
}

func TestForgotPassword(t *testing.T) {
	assert.Empty(t, Check(&ForgotPassword{Email: "a@b.com"}))
	actual := fields(Check(&ForgotPassword{}))
	assert.Equal(t, "Email is required", actual["Email"])
}

func TestChangePassword(t *testing.T) {
	form := ChangePassword{OldPassword: "Old1!pass", Password: "New1!pass", ConfirmPassword: "New1!pass"}
	assert.Empty(t, Check(&form))

	form.OldPassword = ""
	actual := fields(Check(&form))
	assert.Equal(t, "Current password is required", actual["OldPassword"])
}
