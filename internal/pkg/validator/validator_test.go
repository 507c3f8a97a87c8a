package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"marisol@giftnest.test", true},
		{"a.b+c@sub.example.com", true},
		{"not-an-email", false},
		{"@example.com", false},
		{"user@", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.email))
		})
	}
}

func TestIsValidDate(t *testing.T) {
	d, ok := IsValidDate("2026-03-10")
	assert.True(t, ok)
	assert.Equal(t, 2026, d.Year())

	_, ok = IsValidDate("10/03/2026")
	assert.False(t, ok)

	_, ok = IsValidDate("2026-13-40")
	assert.False(t, ok)
}

func TestIsInSlice(t *testing.T) {
	shifts := []string{"morning", "afternoon"}
	assert.True(t, IsInSlice("morning", shifts))
	assert.False(t, IsInSlice("night", shifts))
	assert.False(t, IsInSlice("", shifts))
}

func TestValidationErrors_ErrorAndToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "a valid email is required"},
		{Field: "password", Message: "password is required"},
	}

	assert.Equal(t, "email: a valid email is required; password: password is required", errs.Error())
	assert.Equal(t, map[string]string{
		"email":    "a valid email is required",
		"password": "password is required",
	}, errs.ToMap())
}
