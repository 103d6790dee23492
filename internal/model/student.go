package model

// Student is the record a submitted student form is bound to.
// A nil field means the value was absent from the submission.
type Student struct {
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	Age        *int    `json:"age"`
	Country    *string `json:"country"`
	CourseCode *string `json:"courseCode"`
}

// StudentForm is the raw payload of a student form submission.
// Every field arrives as text; Age is converted after trimming.
type StudentForm struct {
	FirstName  string `form:"firstName" json:"firstName"`
	LastName   string `form:"lastName" json:"lastName"`
	Age        string `form:"age" json:"age"`
	Country    string `form:"country" json:"country"`
	CourseCode string `form:"courseCode" json:"courseCode"`
}

// Field names as they appear on the wire and in violation maps.
const (
	FieldFirstName  = "firstName"
	FieldLastName   = "lastName"
	FieldAge        = "age"
	FieldCountry    = "country"
	FieldCourseCode = "courseCode"
)

// Params flattens the form into the field-name keyed mapping the form
// controller consumes.
func (f StudentForm) Params() map[string]string {
	return map[string]string{
		FieldFirstName:  f.FirstName,
		FieldLastName:   f.LastName,
		FieldAge:        f.Age,
		FieldCountry:    f.Country,
		FieldCourseCode: f.CourseCode,
	}
}

// StudentFormFromParams is the inverse of Params. Missing keys become empty strings.
func StudentFormFromParams(params map[string]string) StudentForm {
	return StudentForm{
		FirstName:  params[FieldFirstName],
		LastName:   params[FieldLastName],
		Age:        params[FieldAge],
		Country:    params[FieldCountry],
		CourseCode: params[FieldCourseCode],
	}
}
