package validator

import (
	"slices"
	"sort"

	"github.com/stemsi/student-form/internal/model"
)

// Violations maps a field name to the messages of the constraints it broke.
// Messages keep constraint order and never repeat within a field.
type Violations map[string][]string

// Add records message for field unless the field already carries it.
func (v Violations) Add(field, message string) {
	if slices.Contains(v[field], message) {
		return
	}
	v[field] = append(v[field], message)
}

// Accepted reports whether no constraint was violated.
func (v Violations) Accepted() bool {
	return len(v) == 0
}

// Messages returns the messages recorded for field, or nil.
func (v Violations) Messages(field string) []string {
	return v[field]
}

var fieldOrder = map[string]int{
	model.FieldFirstName:  0,
	model.FieldLastName:   1,
	model.FieldAge:        2,
	model.FieldCountry:    3,
	model.FieldCourseCode: 4,
}

// Fields returns the violated field names in form order. Unknown fields
// sort last, alphabetically.
func (v Violations) Fields() []string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Slice(fields, func(i, j int) bool {
		oi, iok := fieldOrder[fields[i]]
		oj, jok := fieldOrder[fields[j]]
		switch {
		case iok && jok:
			return oi < oj
		case iok != jok:
			return iok
		default:
			return fields[i] < fields[j]
		}
	})
	return fields
}
