// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	minNameLength     = 2
	minPasswordLength = 6
	maxPasswordLength = 128
)

var emailRegex = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidateName checks that a display name is long enough to be meaningful.
func ValidateName(name string) error {
	if len(strings.TrimSpace(name)) < minNameLength {
		return fmt.Errorf("name must be at least %d characters long", minNameLength)
	}
	return nil
}

// ValidateEmail checks the address against a simple shape test. Deliverability
// is not verified.
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

// ValidatePassword checks if a password meets length requirements.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	if len(password) > maxPasswordLength {
		return fmt.Errorf("password must not exceed %d characters", maxPasswordLength)
	}
	return nil
}

// ValidateRegistration runs every registration check and returns all
// violations, not just the first.
func ValidateRegistration(name, email, password string) []string {
	var errs []string
	if err := ValidateName(name); err != nil {
		errs = append(errs, err.Error())
	}
	if err := ValidateEmail(email); err != nil {
		errs = append(errs, err.Error())
	}
	if err := ValidatePassword(password); err != nil {
		errs = append(errs, err.Error())
	}
	return errs
}
