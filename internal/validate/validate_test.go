package validate_test

import (
	"strings"
	"testing"

	"tdo/internal/validate"
)

func TestCheckTodo(t *testing.T) {
	tests := []struct {
		name      string
		in        validate.TodoInput
		wantErr   string // field expected to fail, "" for success
		wantTitle string
		wantDesc  string
	}{
		{
			name:      "valid minimal",
			in:        validate.TodoInput{Title: "Buy milk"},
			wantTitle: "Buy milk",
		},
		{
			name:      "title trimmed",
			in:        validate.TodoInput{Title: "  Buy milk  ", Description: "  2 liters  "},
			wantTitle: "Buy milk",
			wantDesc:  "2 liters",
		},
		{
			name:    "empty title",
			in:      validate.TodoInput{Title: ""},
			wantErr: "title",
		},
		{
			name:    "whitespace-only title",
			in:      validate.TodoInput{Title: "   "},
			wantErr: "title",
		},
		{
			name:      "title at max length",
			in:        validate.TodoInput{Title: strings.Repeat("a", 200)},
			wantTitle: strings.Repeat("a", 200),
		},
		{
			name:    "title over max length",
			in:      validate.TodoInput{Title: strings.Repeat("a", 201)},
			wantErr: "title",
		},
		{
			// 150 characters, 300 bytes: bounds count runes.
			name:      "multibyte title within max",
			in:        validate.TodoInput{Title: strings.Repeat("ä", 150)},
			wantTitle: strings.Repeat("ä", 150),
		},
		{
			name:    "multibyte title over max",
			in:      validate.TodoInput{Title: strings.Repeat("ä", 201)},
			wantErr: "title",
		},
		{
			name:      "title of length one",
			in:        validate.TodoInput{Title: "a"},
			wantTitle: "a",
		},
		{
			name:      "description at max length",
			in:        validate.TodoInput{Title: "t", Description: strings.Repeat("d", 1000)},
			wantTitle: "t",
			wantDesc:  strings.Repeat("d", 1000),
		},
		{
			name:    "description over max length",
			in:      validate.TodoInput{Title: "t", Description: strings.Repeat("d", 1001)},
			wantErr: "description",
		},
		{
			name: "description over max before trim passes after trim",
			in: validate.TodoInput{
				Title:       "t",
				Description: "  " + strings.Repeat("d", 1000) + "  ",
			},
			wantTitle: "t",
			wantDesc:  strings.Repeat("d", 1000),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errs := validate.CheckTodo(tt.in)
			if tt.wantErr != "" {
				if errs == nil {
					t.Fatalf("expected error on %q, got none", tt.wantErr)
				}
				if _, ok := errs[tt.wantErr]; !ok {
					t.Errorf("expected error keyed to %q, got %v", tt.wantErr, errs)
				}
				return
			}
			if errs != nil {
				t.Fatalf("unexpected errors: %v", errs)
			}
			if got.Title != tt.wantTitle {
				t.Errorf("title = %q, want %q", got.Title, tt.wantTitle)
			}
			if got.Description != tt.wantDesc {
				t.Errorf("description = %q, want %q", got.Description, tt.wantDesc)
			}
		})
	}
}

func TestCheckSignUp(t *testing.T) {
	valid := validate.SignUpInput{
		Email:           "user@example.com",
		Password:        "password8",
		ConfirmPassword: "password8",
	}

	t.Run("valid", func(t *testing.T) {
		got, errs := validate.CheckSignUp(valid)
		if errs != nil {
			t.Fatalf("unexpected errors: %v", errs)
		}
		if got.Email != "user@example.com" {
			t.Errorf("email = %q", got.Email)
		}
	})

	t.Run("short password", func(t *testing.T) {
		in := valid
		in.Password = "short"
		in.ConfirmPassword = "short"
		_, errs := validate.CheckSignUp(in)
		if _, ok := errs["password"]; !ok {
			t.Errorf("expected password error, got %v", errs)
		}
	})

	t.Run("password over max", func(t *testing.T) {
		in := valid
		in.Password = strings.Repeat("p", 101)
		in.ConfirmPassword = in.Password
		_, errs := validate.CheckSignUp(in)
		if _, ok := errs["password"]; !ok {
			t.Errorf("expected password error, got %v", errs)
		}
	})

	t.Run("multibyte password counts runes", func(t *testing.T) {
		in := valid
		in.Password = strings.Repeat("ü", 8) // 16 bytes, 8 characters
		in.ConfirmPassword = in.Password
		if _, errs := validate.CheckSignUp(in); errs != nil {
			t.Errorf("unexpected errors: %v", errs)
		}
	})

	t.Run("mismatch keyed to confirmPassword only", func(t *testing.T) {
		in := valid
		in.ConfirmPassword = "different8"
		_, errs := validate.CheckSignUp(in)
		if _, ok := errs["confirmPassword"]; !ok {
			t.Fatalf("expected confirmPassword error, got %v", errs)
		}
		if _, ok := errs["password"]; ok {
			t.Errorf("mismatch must not be attached to password: %v", errs)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		in := valid
		in.Email = "not-an-email"
		_, errs := validate.CheckSignUp(in)
		if _, ok := errs["email"]; !ok {
			t.Errorf("expected email error, got %v", errs)
		}
	})

	t.Run("email over max", func(t *testing.T) {
		in := valid
		in.Email = strings.Repeat("a", 250) + "@example.com"
		_, errs := validate.CheckSignUp(in)
		if _, ok := errs["email"]; !ok {
			t.Errorf("expected email error, got %v", errs)
		}
	})
}

func TestCheckSignIn(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		_, errs := validate.CheckSignIn(validate.SignInInput{
			Email:    "user@example.com",
			Password: "x",
		})
		if errs != nil {
			t.Fatalf("unexpected errors: %v", errs)
		}
	})

	t.Run("short password accepted", func(t *testing.T) {
		// Strength is enforced at creation time only.
		_, errs := validate.CheckSignIn(validate.SignInInput{
			Email:    "user@example.com",
			Password: "abc",
		})
		if errs != nil {
			t.Fatalf("unexpected errors: %v", errs)
		}
	})

	t.Run("empty password", func(t *testing.T) {
		_, errs := validate.CheckSignIn(validate.SignInInput{Email: "user@example.com"})
		if _, ok := errs["password"]; !ok {
			t.Errorf("expected password error, got %v", errs)
		}
	})

	t.Run("display name rejected", func(t *testing.T) {
		_, errs := validate.CheckSignIn(validate.SignInInput{
			Email:    "User <user@example.com>",
			Password: "x",
		})
		if _, ok := errs["email"]; !ok {
			t.Errorf("expected email error, got %v", errs)
		}
	})
}

func TestCheckForgotPassword(t *testing.T) {
	if _, errs := validate.CheckForgotPassword("user@example.com"); errs != nil {
		t.Errorf("unexpected errors: %v", errs)
	}
	if _, errs := validate.CheckForgotPassword("nope"); errs == nil {
		t.Error("expected error for invalid email")
	}
	got, errs := validate.CheckForgotPassword("  user@example.com  ")
	if errs != nil || got != "user@example.com" {
		t.Errorf("expected trimmed email, got %q (%v)", got, errs)
	}
}

func TestCheckResetPassword(t *testing.T) {
	_, errs := validate.CheckResetPassword(validate.ResetPasswordInput{
		Password:        "password8",
		ConfirmPassword: "password8",
	})
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}

	_, errs = validate.CheckResetPassword(validate.ResetPasswordInput{
		Password:        "password8",
		ConfirmPassword: "other1234",
	})
	if _, ok := errs["confirmPassword"]; !ok {
		t.Errorf("expected confirmPassword error, got %v", errs)
	}

	_, errs = validate.CheckResetPassword(validate.ResetPasswordInput{
		Password:        "short",
		ConfirmPassword: "short",
	})
	if _, ok := errs["password"]; !ok {
		t.Errorf("expected password error, got %v", errs)
	}
}
