package accounts

import "regexp"

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

const MinPasswordLen = 6

// Form carries the login/signup fields. Name and ConfirmPassword only matter for signup.
type Form struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	Name            string `json:"name,omitempty"`
	ConfirmPassword string `json:"confirmPassword,omitempty"`
}

// FieldErrors maps a form field to the message shown next to it.
type FieldErrors map[string]string

func (fe FieldErrors) Empty() bool { return len(fe) == 0 }

// Validate checks f as a login form, or as a signup form when signup is set.
func Validate(f Form, signup bool) FieldErrors {
	errs := FieldErrors{}

	if f.Email == "" {
		errs["email"] = "Email is required"
	} else if !emailPattern.MatchString(f.Email) {
		errs["email"] = "Email is invalid"
	}

	if f.Password == "" {
		errs["password"] = "Password is required"
	} else if len(f.Password) < MinPasswordLen {
		errs["password"] = "Password must be at least 6 characters"
	}

	if signup {
		if f.Name == "" {
			errs["name"] = "Name is required"
		}
		if f.ConfirmPassword == "" {
			errs["confirmPassword"] = "Please confirm your password"
		} else if f.Password != f.ConfirmPassword {
			errs["confirmPassword"] = "Passwords do not match"
		}
	}
	return errs
}
