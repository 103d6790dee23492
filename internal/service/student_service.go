package service

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/stemsi/student-form/internal/model"
	"github.com/stemsi/student-form/internal/validator"
)

// MessageTypeMismatch is reported for an age that is not a whole number.
const MessageTypeMismatch = "must be a whole number"

// OutcomeKind selects which view a submission renders.
type OutcomeKind string

const (
	OutcomeForm         OutcomeKind = "form"
	OutcomeConfirmation OutcomeKind = "confirmation"
)

// StudentValidator evaluates a student record.
type StudentValidator interface {
	Validate(s model.Student) validator.Violations
}

// FormView is everything the student form page needs.
type FormView struct {
	Student        model.Student         `json:"student"`
	Form           model.StudentForm     `json:"form"`
	CountryOptions []model.CountryOption `json:"country_options"`
	Violations     validator.Violations  `json:"violations"`
}

// OutcomeView is the result of a form submission: either the form again
// with its violations, or a confirmation echoing the accepted record.
type OutcomeView struct {
	FormView
	Kind        OutcomeKind `json:"kind"`
	Accepted    bool        `json:"accepted"`
	CountryName string      `json:"country_name,omitempty"`
}

// StudentService implements the student form controller.
type StudentService interface {
	RenderEmptyForm() FormView
	SubmitForm(params map[string]string) OutcomeView
}

type studentService struct {
	validator StudentValidator
	log       zerolog.Logger
}

// NewStudentService creates a StudentService backed by v.
func NewStudentService(v StudentValidator, log zerolog.Logger) StudentService {
	return &studentService{
		validator: v,
		log:       log.With().Str("component", "student_service").Logger(),
	}
}

// RenderEmptyForm returns a blank form with the country options.
func (s *studentService) RenderEmptyForm() FormView {
	return FormView{
		Student:        model.Student{},
		CountryOptions: model.CountryOptions(),
		Violations:     validator.Violations{},
	}
}

// SubmitForm trims params, binds them to a student record and validates it.
// Parameters that are empty after trimming are treated as absent.
func (s *studentService) SubmitForm(params map[string]string) OutcomeView {
	form := trimForm(model.StudentFormFromParams(params))
	student, ageOK := bindStudent(form)

	violations := s.validator.Validate(student)
	if !ageOK {
		// A malformed age is reported on its own; it is not also "required".
		delete(violations, model.FieldAge)
		violations.Add(model.FieldAge, MessageTypeMismatch)
	}

	out := OutcomeView{
		FormView: FormView{
			Student:        student,
			Form:           form,
			CountryOptions: model.CountryOptions(),
			Violations:     violations,
		},
		Accepted: violations.Accepted(),
	}
	if out.Accepted {
		out.Kind = OutcomeConfirmation
		out.CountryName = model.CountryName(form.Country)
	} else {
		out.Kind = OutcomeForm
	}

	s.log.Debug().
		Bool("accepted", out.Accepted).
		Strs("violated_fields", violations.Fields()).
		Msg("Student form submitted")

	return out
}

func trimForm(f model.StudentForm) model.StudentForm {
	return model.StudentForm{
		FirstName:  strings.TrimSpace(f.FirstName),
		LastName:   strings.TrimSpace(f.LastName),
		Age:        strings.TrimSpace(f.Age),
		Country:    strings.TrimSpace(f.Country),
		CourseCode: strings.TrimSpace(f.CourseCode),
	}
}

// bindStudent converts a trimmed form into a record. ageOK is false when
// age was given but is not an integer; Age is left nil in that case.
func bindStudent(f model.StudentForm) (s model.Student, ageOK bool) {
	s = model.Student{
		FirstName:  optional(f.FirstName),
		LastName:   optional(f.LastName),
		Country:    optional(f.Country),
		CourseCode: optional(f.CourseCode),
	}

	if f.Age == "" {
		return s, true
	}
	n, err := strconv.Atoi(f.Age)
	if err != nil {
		return s, false
	}
	s.Age = &n
	return s, true
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
