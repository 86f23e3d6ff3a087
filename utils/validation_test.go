package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"9876543210":      "+919876543210",
		"919876543210":    "+919876543210",
		"+919876543210":   "+919876543210",
		"+1 415 555 0100": "+14155550100",
		"98765 43210":     "+919876543210",
		"98-7654-3210":    "+919876543210",
	}
	for input, want := range cases {
		assert.Equal(t, want, NormalizePhone(input), "input %q", input)
	}
}

func TestNormalizePhonePassesThroughUnrecognized(t *testing.T) {
	// Too short for any known form, returned as-is
	assert.Equal(t, "12345", NormalizePhone("12345"))
}

func TestFormatPhoneNumber(t *testing.T) {
	phone, err := FormatPhoneNumber("+91 98765 43210")
	assert.NoError(t, err)
	assert.Equal(t, "9876543210", phone)

	_, err = FormatPhoneNumber("12345")
	assert.Error(t, err)

	_, err = FormatPhoneNumber("1876543210")
	assert.Error(t, err)
}

func TestValidatePassword(t *testing.T) {
	valid, _ := ValidatePassword("Str0ng@Pass")
	assert.True(t, valid)

	valid, msg := ValidatePassword("weak")
	assert.False(t, valid)
	assert.NotEmpty(t, msg)

	valid, _ = ValidatePassword("alllowercase1@")
	assert.False(t, valid)
}

func TestValidateConfirmPassword(t *testing.T) {
	valid, _ := ValidateConfirmPassword("Str0ng@Pass", "Str0ng@Pass")
	assert.True(t, valid)

	valid, msg := ValidateConfirmPassword("Str0ng@Pass", "Other@Pass1")
	assert.False(t, valid)
	assert.NotEmpty(t, msg)
}

func TestValidateStringLength(t *testing.T) {
	assert.NoError(t, ValidateStringLength("fine", 2, 10))
	assert.Error(t, ValidateStringLength("x", 2, 10))
	assert.Error(t, ValidateStringLength("  too long for the cap  ", 2, 10))
}

func TestValidateRating(t *testing.T) {
	assert.NoError(t, ValidateRating(1))
	assert.NoError(t, ValidateRating(5))
	assert.Error(t, ValidateRating(0))
	assert.Error(t, ValidateRating(6))
}
