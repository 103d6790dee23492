package validator

import (
	"reflect"
	"strings"

	govalidator "github.com/go-playground/validator/v10"
)

// DefaultCoursePrefix is the prefix the course code rule checks when it is
// attached without a parameter.
const DefaultCoursePrefix = "ZDR"

// tagCourseCode is the validator tag of the course code rule. Its parameter
// is the prefix, e.g. `coursecode=COU`.
const tagCourseCode = "coursecode"

// StartsWithPrefix reports whether value starts with prefix.
// An absent value passes; presence is checked by a separate required rule.
func StartsWithPrefix(value *string, prefix string) bool {
	if value == nil {
		return true
	}
	return strings.HasPrefix(*value, prefix)
}

// tagParamEscaper hides the tag separators of a prefix behind the hex
// escapes the engine decodes back into the parameter.
var tagParamEscaper = strings.NewReplacer(",", "0x2C", "|", "0x7C")

// tagParamEscapes are the sequences the engine decodes in a tag parameter.
// A prefix spelling one of them literally cannot round-trip.
var tagParamEscapes = []string{"0x2C", "0x7C"}

// coursePrefix returns the tag parameter, or DefaultCoursePrefix when the
// tag carries none.
func coursePrefix(param string) string {
	if param == "" {
		return DefaultCoursePrefix
	}
	return param
}

// validateCourseCode adapts StartsWithPrefix to the validator engine.
// It is registered to run on nil pointers too, so nil passes here as well.
func validateCourseCode(fl govalidator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Ptr, reflect.Interface:
		if field.IsNil() {
			return true
		}
		field = field.Elem()
	}
	if field.Kind() != reflect.String {
		return false
	}
	s := field.String()
	return StartsWithPrefix(&s, coursePrefix(fl.Param()))
}
