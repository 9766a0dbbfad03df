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
	assert.False(t, IsEmpty("  x  "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@b.co", "first.last@example.com", "user+tag@mail.example.org"}
	invalid := []string{"", "plain", "a@b", "@example.com", "user@.com"}

	for _, e := range valid {
		assert.True(t, IsValidEmail(e), e)
	}
	for _, e := range invalid {
		assert.False(t, IsValidEmail(e), e)
	}
}

func TestIsValidUsername(t *testing.T) {
	assert.True(t, IsValidUsername("john_doe"))
	assert.True(t, IsValidUsername("j.doe-01"))
	assert.False(t, IsValidUsername("ab"))
	assert.False(t, IsValidUsername("has space"))
}

func TestIsValidDate(t *testing.T) {
	d, ok := IsValidDate("2024-01-12")
	assert.True(t, ok)
	assert.Equal(t, 2024, d.Year())

	_, ok = IsValidDate("12/01/2024")
	assert.False(t, ok)
}

func TestIsValidEmployeeCode(t *testing.T) {
	assert.True(t, IsValidEmployeeCode("EMP001"))
	assert.True(t, IsValidEmployeeCode("EMP1000"))
	assert.False(t, IsValidEmployeeCode("EMP1"))
	assert.False(t, IsValidEmployeeCode("emp001"))
	assert.False(t, IsValidEmployeeCode("E001"))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "username", Message: "username is required"},
		{Field: "email", Message: "invalid email"},
	}

	assert.Equal(t, "username: username is required; email: invalid email", errs.Error())
	assert.Equal(t, map[string]string{
		"username": "username is required",
		"email":    "invalid email",
	}, errs.ToMap())
}
