package validation_test

import (
	"testing"

	"stockroom/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	FirstName       string `json:"firstName" validate:"required,min=2" message:"First name must be up to 2 characters"`
	Email           string `json:"email" validate:"required,email" message:"Invalid email format"`
	Password        string `json:"password" validate:"required,password"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password" message:"Passwords do not match"`
}

func TestIsStrongPassword(t *testing.T) {
	cases := map[string]bool{
		"Abcd123!":                        true,
		"Zz9#zzzz":                        true,
		"abcd123!":                        false, // no uppercase
		"ABCD123!":                        false, // no lowercase
		"Abcdefg!":                        false, // no digit
		"Abcd1234":                        false, // no symbol
		"Abcd_123":                        false, // underscore is a word character
		"Ab1!":                            false, // too short
		"Abcd 123!":                       false, // whitespace
		"Abcdefghijklmnopqrstuvwxyz123!!": false, // 31 characters
		"Ébcdefg1!":                       false, // É is not an ASCII uppercase letter
		"Abcdefg١!":                       false, // Arabic-Indic digit is not an ASCII digit
		"Abcdefg1中":                       true,  // any non-word character is a symbol
		"Abcdefg1é":                       true,  // so is a non-ASCII letter
		"Abcd123!\u00a0":                 false, // non-breaking space
	}
	for pw, want := range cases {
		assert.Equal(t, want, validation.IsStrongPassword(pw), pw)
	}
}

func TestStruct_Valid(t *testing.T) {
	v := validation.New()
	err := v.Struct(signup{FirstName: "Jo", Email: "j@d.com", Password: "Abcd123!", ConfirmPassword: "Abcd123!"})
	assert.NoError(t, err)
}

func TestStruct_ReportsFirstViolation(t *testing.T) {
	v := validation.New()

	// Both firstName and email are invalid; only the first one is reported.
	err := v.Struct(&signup{FirstName: "J", Email: "nope", Password: "Abcd123!", ConfirmPassword: "Abcd123!"})
	require.Error(t, err)
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "firstName", verr.Field)
	assert.Equal(t, "min", verr.Rule)
	assert.Equal(t, "First name must be up to 2 characters", verr.Message)
}

func TestStruct_PasswordRuleMessage(t *testing.T) {
	v := validation.New()
	err := v.Struct(signup{FirstName: "Jo", Email: "j@d.com", Password: "weak", ConfirmPassword: "weak"})
	require.Error(t, err)
	assert.Equal(t, validation.PasswordRuleMessage, err.Error())
}

func TestStruct_FallbackMessage(t *testing.T) {
	v := validation.New()
	err := v.Struct(struct {
		StockID string `json:"stockId" validate:"required"`
	}{})
	require.Error(t, err)
	assert.Equal(t, "stockId failed on the 'required' rule", err.Error())
}

func TestStruct_ConfirmMismatch(t *testing.T) {
	v := validation.New()
	err := v.Struct(signup{FirstName: "Jo", Email: "j@d.com", Password: "Abcd123!", ConfirmPassword: "Abcd123?"})
	require.Error(t, err)
	assert.Equal(t, "Passwords do not match", err.Error())
}
