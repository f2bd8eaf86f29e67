// Package validation wraps go-playground/validator so that request structs
// report only their first violated rule, using the field's `message` tag.
package validation

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

const (
	passwordMinLength = 8
	passwordMaxLength = 30
)

// PasswordRuleMessage describes the password complexity rule to clients.
const PasswordRuleMessage = "Password must have a capital letter, small letter, number, a special character and be more than 8 in length"

// ruleMessages are used for custom rules when the field has no message tag.
var ruleMessages = map[string]string{
	"password": PasswordRuleMessage,
}

// Error is the first rule violated by a validated struct.
type Error struct {
	Field   string
	Rule    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Validator validates request payloads.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the custom rules registered.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	// Registration only fails for an empty tag or nil func.
	if err := v.RegisterValidation("password", strongPassword); err != nil {
		panic(err)
	}
	return &Validator{validate: v}
}

// Struct validates s. It returns nil, an *Error for the first violated
// rule, or the validator's own error when s is not a struct.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	first := fieldErrs[0]
	return &Error{
		Field:   first.Field(),
		Rule:    first.Tag(),
		Message: messageFor(s, first),
	}
}

// IsStrongPassword reports whether p satisfies the password complexity rule:
// 8 to 30 non-space characters with an ASCII lowercase letter, an ASCII
// uppercase letter, an ASCII digit and a symbol. A symbol is any character
// outside [A-Za-z0-9_].
func IsStrongPassword(p string) bool {
	n := utf8.RuneCountInString(p)
	if n < passwordMinLength || n > passwordMaxLength {
		return false
	}

	var lower, upper, digit, symbol bool
	for _, r := range p {
		switch {
		case unicode.IsSpace(r):
			return false
		case 'a' <= r && r <= 'z':
			lower = true
		case 'A' <= r && r <= 'Z':
			upper = true
		case '0' <= r && r <= '9':
			digit = true
		case r != '_':
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}

func strongPassword(fl validator.FieldLevel) bool {
	return IsStrongPassword(fl.Field().String())
}

func messageFor(s interface{}, fe validator.FieldError) string {
	t := reflect.TypeOf(s)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() == reflect.Struct {
		if f, ok := t.FieldByName(fe.StructField()); ok {
			if msg := f.Tag.Get("message"); msg != "" {
				return msg
			}
		}
	}
	if msg, ok := ruleMessages[fe.Tag()]; ok {
		return msg
	}
	return fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag())
}
