// Package validate checks user input before it ever reaches the network.
//
// Every Check function is a pure function of its input: it returns the
// normalized (trimmed) value together with nil, or a FieldErrors map
// keying each offending field to a human-readable message.
package validate

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Length bounds mirrored by the backend's column constraints. All
// bounds count characters (runes), not bytes.
const (
	MaxTitleLen       = 200
	MaxDescriptionLen = 1000
	MaxEmailLen       = 255
	MinPasswordLen    = 8
	MaxPasswordLen    = 100
)

// FieldErrors maps a field name to a message meant for the user.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	// Deterministic enough for CLI output: fields are printed by the
	// caller one per line, so the summary only needs to be non-empty.
	parts := make([]string, 0, len(e))
	for _, field := range []string{"title", "description", "email", "password", "confirmPassword"} {
		if msg, ok := e[field]; ok {
			parts = append(parts, field+": "+msg)
		}
	}
	return strings.Join(parts, "; ")
}

// TodoInput is a candidate todo create/edit submission.
type TodoInput struct {
	Title       string
	Description string
}

// CheckTodo validates and normalizes a todo submission.
func CheckTodo(in TodoInput) (TodoInput, FieldErrors) {
	errs := FieldErrors{}
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)

	if in.Title == "" {
		errs["title"] = "Title is required"
	} else if utf8.RuneCountInString(in.Title) > MaxTitleLen {
		errs["title"] = "Title must be less than 200 characters"
	}
	if utf8.RuneCountInString(in.Description) > MaxDescriptionLen {
		errs["description"] = "Description must be less than 1000 characters"
	}

	if len(errs) > 0 {
		return TodoInput{}, errs
	}
	return in, nil
}

// SignUpInput is a candidate account registration.
type SignUpInput struct {
	Email           string
	Password        string
	ConfirmPassword string
}

// CheckSignUp validates a registration submission. A password mismatch is
// reported on confirmPassword, never on password.
func CheckSignUp(in SignUpInput) (SignUpInput, FieldErrors) {
	errs := FieldErrors{}
	in.Email = strings.TrimSpace(in.Email)

	checkEmail(in.Email, errs)
	if utf8.RuneCountInString(in.Password) < MinPasswordLen {
		errs["password"] = "Password must be at least 8 characters"
	} else if utf8.RuneCountInString(in.Password) > MaxPasswordLen {
		errs["password"] = "Password must be at most 100 characters"
	}
	if in.Password != in.ConfirmPassword {
		errs["confirmPassword"] = "Passwords don't match"
	}

	if len(errs) > 0 {
		return SignUpInput{}, errs
	}
	return in, nil
}

// SignInInput is a candidate sign-in submission. Password strength is the
// provider's concern at creation time; here it only has to be non-empty.
type SignInInput struct {
	Email    string
	Password string
}

// CheckSignIn validates a sign-in submission.
func CheckSignIn(in SignInInput) (SignInInput, FieldErrors) {
	errs := FieldErrors{}
	in.Email = strings.TrimSpace(in.Email)

	checkEmail(in.Email, errs)
	if in.Password == "" {
		errs["password"] = "Password is required"
	}

	if len(errs) > 0 {
		return SignInInput{}, errs
	}
	return in, nil
}

// CheckForgotPassword validates a reset-link request.
func CheckForgotPassword(email string) (string, FieldErrors) {
	errs := FieldErrors{}
	email = strings.TrimSpace(email)
	checkEmail(email, errs)
	if len(errs) > 0 {
		return "", errs
	}
	return email, nil
}

// ResetPasswordInput is a candidate password change for an authenticated
// session. Same rules as sign-up.
type ResetPasswordInput struct {
	Password        string
	ConfirmPassword string
}

// CheckResetPassword validates a password change submission.
func CheckResetPassword(in ResetPasswordInput) (ResetPasswordInput, FieldErrors) {
	errs := FieldErrors{}
	if utf8.RuneCountInString(in.Password) < MinPasswordLen {
		errs["password"] = "Password must be at least 8 characters"
	} else if utf8.RuneCountInString(in.Password) > MaxPasswordLen {
		errs["password"] = "Password must be at most 100 characters"
	}
	if in.Password != in.ConfirmPassword {
		errs["confirmPassword"] = "Passwords don't match"
	}
	if len(errs) > 0 {
		return ResetPasswordInput{}, errs
	}
	return in, nil
}

func checkEmail(email string, errs FieldErrors) {
	if email == "" {
		errs["email"] = "Invalid email address"
		return
	}
	if utf8.RuneCountInString(email) > MaxEmailLen {
		errs["email"] = "Email must be less than 255 characters"
		return
	}
	// mail.ParseAddress accepts "Name <a@b>" forms; require the bare
	// address to round-trip so display names are rejected.
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		errs["email"] = "Invalid email address"
	}
}
