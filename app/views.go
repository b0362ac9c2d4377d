package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	structaware "github.com/structaware/structaware-go"
	"github.com/structaware/structaware-go/client"
	"github.com/structaware/structaware-go/guard"
	"github.com/structaware/structaware-go/validate"
)

const (
	routeLogin     = "/login"
	routeSignup    = "/signup"
	routeForgot    = "/forgot-password"
	routeReset     = "/reset-password"
	routeDashboard = "/dashboard"
)

type app struct {
	runtime *structaware.Runtime
	in      *bufio.Scanner
	out     io.Writer
	route   string
}

func newApp(runtime *structaware.Runtime, in io.Reader, out io.Writer) *app {
	return &app{runtime: runtime, in: bufio.NewScanner(in), out: out}
}

// Run bootstraps the session and drives the views. Navigation always starts
// at the dashboard; the route guard decides whether it renders or falls
// back to login.
func (a *app) Run(ctx context.Context) error {
	a.printf("StructAware\n")
	a.runtime.Session.Bootstrap(ctx)
	a.route = routeDashboard
	for a.route != "" {
		switch a.route {
		case routeSignup:
			a.signupView(ctx)
		case routeForgot:
			a.forgotPasswordView(ctx)
		case routeReset:
			a.resetPasswordView(ctx)
		case routeDashboard:
			a.dashboardView(ctx)
		default:
			a.loginView(ctx)
		}
	}
	return nil
}

func (a *app) loginView(ctx context.Context) {
	a.printf("\n-- Sign in -- (signup | forgot | reset | quit)\n")
	email := a.prompt("Email")
	switch email {
	case "signup":
		a.route = routeSignup
		return
	case "forgot":
		a.route = routeForgot
		return
	case "reset":
		a.route = routeReset
		return
	case "quit":
		a.route = ""
		return
	}
	password := a.prompt("Password")
	remember := a.prompt("Remember me (y/n)") == "y"

	form := validate.Login{Email: email, Password: password, RememberMe: remember}
	if !a.valid(&form) {
		return
	}
	if err := a.runtime.Session.Login(ctx, &client.Credentials{Email: email, Password: password}, remember); err != nil {
		a.printf("  %v\n", err)
		return
	}
	a.route = routeDashboard
}

func (a *app) signupView(ctx context.Context) {
	a.printf("\n-- Create account -- (back | quit)\n")
	name := a.prompt("Full name")
	switch name {
	case "back":
		a.route = routeLogin
		return
	case "quit":
		a.route = ""
		return
	}
	form := validate.Register{
		Name:       name,
		Email:      a.prompt("Email"),
		Profession: a.prompt("Profession"),
		Password:   a.prompt("Password"),
	}
	form.ConfirmPassword = a.prompt("Confirm password")
	form.TermsAccepted = a.prompt("Accept terms (y/n)") == "y"
	if !a.valid(&form) {
		return
	}
	registration := &client.Registration{
		Name:       form.Name,
		Email:      form.Email,
		Profession: form.Profession,
		Password:   form.Password,
	}
	if err := a.runtime.Session.Register(ctx, registration); err != nil {
		a.printf("  %v\n", err)
		return
	}
	a.route = routeDashboard
}

func (a *app) forgotPasswordView(ctx context.Context) {
	a.printf("\n-- Forgot password -- (back | quit)\n")
	email := a.prompt("Email")
	switch email {
	case "back":
		a.route = routeLogin
		return
	case "quit":
		a.route = ""
		return
	}
	if !a.valid(&validate.ForgotPassword{Email: email}) {
		return
	}
	if err := a.runtime.Session.ForgotPassword(ctx, email); err != nil {
		a.printf("  %v\n", err)
		return
	}
	a.printf("  Reset email sent.\n")
	a.route = routeLogin
}

// resetView carries the two password-visibility toggles: independent
// booleans, neither persisted nor shared between the fields.
type resetView struct {
	showPassword        bool
	showConfirmPassword bool
}

func (v *resetView) echo(value string, show bool) string {
	if show {
		return value
	}
	return strings.Repeat("*", len(value))
}

func (a *app) resetPasswordView(ctx context.Context) {
	a.printf("\n-- Reset password -- (back | quit)\n")
	token := a.prompt("Reset token")
	switch token {
	case "back":
		a.route = routeLogin
		return
	case "quit":
		a.route = ""
		return
	}
	form := validate.ResetPassword{Password: a.prompt("New password")}
	form.ConfirmPassword = a.prompt("Confirm password")
	view := &resetView{}
	for {
		a.printf("  Password: %s  Confirm: %s\n",
			view.echo(form.Password, view.showPassword),
			view.echo(form.ConfirmPassword, view.showConfirmPassword))
		switch a.prompt("submit | show | showconfirm | cancel") {
		case "show":
			view.showPassword = !view.showPassword
			continue
		case "showconfirm":
			view.showConfirmPassword = !view.showConfirmPassword
			continue
		case "cancel":
			a.route = routeLogin
			return
		}
		break
	}
	if !a.valid(&form) {
		return
	}
	if err := a.runtime.Session.ResetPassword(ctx, token, form.Password); err != nil {
		a.printf("  %v\n", err)
		return
	}
	a.printf("  Password updated. Please sign in.\n")
	a.route = routeLogin
}

func (a *app) dashboardView(ctx context.Context) {
	switch a.runtime.Guard.Decide() {
	case guard.Wait:
		a.printf("  Loading...\n")
		return
	case guard.Redirect:
		a.route = a.runtime.Guard.RedirectTarget()
		return
	}
	if a.runtime.Loading.TriggerFirstLogin() {
		a.printf("  [structural loading animation]\n")
	}
	snap := a.runtime.Session.Snapshot()
	a.printf("\n-- Dashboard -- welcome %s\n", snap.User.Name)
	for {
		switch a.prompt("theme | password | logout | quit") {
		case "theme":
			if a.runtime.Theme.Toggle() {
				a.printf("  dark mode\n")
			} else {
				a.printf("  light mode\n")
			}
		case "password":
			a.changePasswordView(ctx)
		case "logout":
			a.runtime.Session.Logout(ctx)
			a.route = routeLogin
			return
		case "quit":
			a.route = ""
			return
		default:
			// a 401 on any authenticated call may have invalidated the
			// session in the meantime; re-check before rendering again
			if a.runtime.Guard.Decide() != guard.Allow {
				a.route = a.runtime.Guard.RedirectTarget()
				return
			}
		}
	}
}

func (a *app) changePasswordView(ctx context.Context) {
	form := validate.ChangePassword{
		OldPassword: a.prompt("Current password"),
		Password:    a.prompt("New password"),
	}
	form.ConfirmPassword = a.prompt("Confirm password")
	if !a.valid(&form) {
		return
	}
	if err := a.runtime.Session.ChangePassword(ctx, form.OldPassword, form.Password); err != nil {
		a.printf("  %v\n", err)
		return
	}
	a.printf("  Password changed.\n")
}

// valid evaluates a form schema, printing inline messages for every failed
// field. Nothing goes over the wire while the form is invalid.
func (a *app) valid(form any) bool {
	fieldErrors := validate.Check(form)
	for _, fieldError := range fieldErrors {
		a.printf("  %s: %s\n", fieldError.Field, fieldError.Message)
	}
	return len(fieldErrors) == 0
}

func (a *app) prompt(label string) string {
	a.printf("%s: ", label)
	if !a.in.Scan() {
		return "quit"
	}
	return strings.TrimSpace(a.in.Text())
}

func (a *app) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}
