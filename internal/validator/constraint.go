package validator

import (
	"fmt"

	"github.com/stemsi/student-form/internal/model"
)

// Rule classifies why a constraint failed.
type Rule string

const (
	RuleRequired       Rule = "Required"
	RuleRangeViolation Rule = "RangeViolation"
	RulePrefixMismatch Rule = "PrefixMismatch"
)

// tagNotNull marks a constraint that only checks presence.
const tagNotNull = "required"

// MessageRequired is the message of every required-ness constraint.
const MessageRequired = "is required"

// Constraint is one (field, rule, message) entry of a record's rule table.
//
// Tag is the validator tag checked against a present value. Absent values
// fail only constraints tagged "required" and pass every other one.
// An empty Message falls back to the engine's English translation of Tag.
type Constraint struct {
	Field   string
	Rule    Rule
	Tag     string
	Message string

	value func(model.Student) (any, bool)
}

func stringValue(get func(model.Student) *string) func(model.Student) (any, bool) {
	return func(s model.Student) (any, bool) {
		p := get(s)
		if p == nil {
			return nil, false
		}
		return *p, true
	}
}

func intValue(get func(model.Student) *int) func(model.Student) (any, bool) {
	return func(s model.Student) (any, bool) {
		p := get(s)
		if p == nil {
			return nil, false
		}
		return *p, true
	}
}

var (
	firstName  = stringValue(func(s model.Student) *string { return s.FirstName })
	lastName   = stringValue(func(s model.Student) *string { return s.LastName })
	age        = intValue(func(s model.Student) *int { return s.Age })
	courseCode = stringValue(func(s model.Student) *string { return s.CourseCode })
)

// CourseCodeConstraint attaches the course code prefix rule to the
// courseCode field. Empty arguments keep the rule's defaults: prefix
// DefaultCoursePrefix and the translated "must start with <prefix>".
func CourseCodeConstraint(prefix, message string) Constraint {
	return Constraint{
		Field:   model.FieldCourseCode,
		Rule:    RulePrefixMismatch,
		Tag:     tagCourseCode + "=" + tagParamEscaper.Replace(coursePrefix(prefix)),
		Message: message,
		value:   courseCode,
	}
}

// StudentConstraints returns the rule table of a student record with the
// course code rule configured for prefix. Country carries no constraint.
func StudentConstraints(prefix string) []Constraint {
	prefix = coursePrefix(prefix)
	return []Constraint{
		{Field: model.FieldFirstName, Rule: RuleRequired, Tag: tagNotNull, Message: MessageRequired, value: firstName},
		{Field: model.FieldFirstName, Rule: RuleRequired, Tag: "min=1", Message: MessageRequired, value: firstName},

		{Field: model.FieldLastName, Rule: RuleRequired, Tag: tagNotNull, Message: MessageRequired, value: lastName},
		{Field: model.FieldLastName, Rule: RuleRequired, Tag: "min=1", Message: MessageRequired, value: lastName},

		{Field: model.FieldAge, Rule: RuleRequired, Tag: tagNotNull, Message: MessageRequired, value: age},
		{Field: model.FieldAge, Rule: RuleRangeViolation, Tag: "gte=18", Message: "Age must be greater than 18", value: age},
		{Field: model.FieldAge, Rule: RuleRangeViolation, Tag: "lte=150", Message: "Nobody has ever lived so long", value: age},

		CourseCodeConstraint(prefix, fmt.Sprintf("Must start with '%s'", prefix)),
		{Field: model.FieldCourseCode, Rule: RuleRequired, Tag: tagNotNull, Message: MessageRequired, value: courseCode},
	}
}
