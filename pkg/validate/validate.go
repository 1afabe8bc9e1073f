// Package validate provides small boolean-result input validators.
package validate

import (
	"reflect"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	v = validator.New()

	// ASCII digits only: no sign, no decimal point, no whitespace.
	reDigits = regexp.MustCompile(`^[0-9]+$`)
)

// IntegerString reports whether s is composed entirely of ASCII digits.
// Signed or fractional numbers fail.
func IntegerString(s string) bool {
	return reDigits.MatchString(s)
}

// Integer reports whether value is an integer: any Go integer kind passes,
// strings pass through IntegerString, everything else (nil, floats, bools)
// fails.
func Integer(value any) bool {
	switch t := value.(type) {
	case nil:
		return false
	case string:
		return IntegerString(t)
	}

	switch reflect.ValueOf(value).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

// Email reports whether s is a plausible email address.
func Email(s string) bool {
	return v.Var(s, "required,email") == nil
}

// URL reports whether s is a well-formed absolute URL.
func URL(s string) bool {
	return v.Var(s, "required,url") == nil
}
