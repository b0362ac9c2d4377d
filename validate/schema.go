package validate

// Form schemas are pure data: the constraints live entirely in field tags
// and are evaluated by Check. The password rule requires at least 8
// characters including one letter, one number and one special character.

// Login is the sign-in form.
type Login struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"rememberMe"`
}

// Register is the sign-up form.
type Register struct {
	Name            string `json:"name" validate:"required,min=2,max=50"`
	Email           string `json:"email" validate:"required,email"`
	Profession      string `json:"profession" validate:"required"`
	Password        string `json:"password" validate:"required,min=8,password"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	TermsAccepted   bool   `json:"termsAccepted" validate:"eq=true"`
}

// ForgotPassword is the reset-request form.
type ForgotPassword struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPassword is the reset-completion form.
type ResetPassword struct {
	Password        string `json:"password" validate:"required,min=8,password"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// ChangePassword is the signed-in password change form.
type ChangePassword struct {
	OldPassword     string `json:"oldPassword" validate:"required"`
	Password        string `json:"password" validate:"required,min=8,password"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}
