package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
	}{
		{"Valid name", "Ann", false},
		{"Two characters", "Al", false},
		{"Single character", "A", true},
		{"Whitespace only", "   ", true},
		{"Padded single character", " A ", true},
		{"Empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
	}{
		{"Valid campus address", "a@x.edu", false},
		{"Valid with subdomain", "ann.lee@cs.campus.edu", false},
		{"Missing at sign", "a.x.edu", true},
		{"Missing domain dot", "a@xedu", true},
		{"Contains whitespace", "a b@x.edu", true},
		{"Empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.input)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
	}{
		{"Minimum length", "secret", false},
		{"Typical password", "secret1", false},
		{"Too short", "five5", true},
		{"Empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.input)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRegistration_AggregatesAllViolations(t *testing.T) {
	errs := ValidateRegistration("A", "not-an-email", "short")
	assert.Len(t, errs, 3)

	errs = ValidateRegistration("Ann", "a@x.edu", "secret1")
	assert.Empty(t, errs)
}
