package service

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stemsi/student-form/internal/model"
	"github.com/stemsi/student-form/internal/validator"
)

func newService(t *testing.T) StudentService {
	t.Helper()
	v, err := validator.New("COU")
	require.NoError(t, err)
	return NewStudentService(v, zerolog.Nop())
}

func TestRenderEmptyForm(t *testing.T) {
	view := newService(t).RenderEmptyForm()

	assert.Equal(t, model.Student{}, view.Student)
	assert.Equal(t, model.StudentForm{}, view.Form)
	assert.Equal(t, model.CountryOptions(), view.CountryOptions)
	assert.True(t, view.Violations.Accepted())
}

func TestSubmitForm(t *testing.T) {
	tests := []struct {
		name     string
		params   map[string]string
		want     validator.Violations
		wantKind OutcomeKind
	}{
		{
			name:     "underage with wrong course code",
			params:   map[string]string{"firstName": "Ana", "lastName": "Lee", "age": "17", "country": "BR", "courseCode": "XYZ"},
			want:     validator.Violations{"age": {"Age must be greater than 18"}, "courseCode": {"Must start with 'COU'"}},
			wantKind: OutcomeForm,
		},
		{
			name:     "accepted",
			params:   map[string]string{"firstName": "Ana", "lastName": "Lee", "age": "30", "country": "FR", "courseCode": "COU101"},
			want:     validator.Violations{},
			wantKind: OutcomeConfirmation,
		},
		{
			name:     "whitespace only counts as absent",
			params:   map[string]string{"firstName": "   ", "lastName": "Lee", "age": " 40 ", "courseCode": "\tCOU1\n"},
			want:     validator.Violations{"firstName": {"is required"}},
			wantKind: OutcomeForm,
		},
		{
			name:     "empty course code is required, not a prefix mismatch",
			params:   map[string]string{"firstName": "Ana", "lastName": "Lee", "age": "30", "courseCode": ""},
			want:     validator.Violations{"courseCode": {"is required"}},
			wantKind: OutcomeForm,
		},
		{
			name:     "missing age",
			params:   map[string]string{"firstName": "Ana", "lastName": "Lee", "courseCode": "COU1"},
			want:     validator.Violations{"age": {"is required"}},
			wantKind: OutcomeForm,
		},
		{
			name:     "non numeric age",
			params:   map[string]string{"firstName": "Ana", "lastName": "Lee", "age": "thirty", "courseCode": "COU1"},
			want:     validator.Violations{"age": {MessageTypeMismatch}},
			wantKind: OutcomeForm,
		},
		{
			name:     "nothing submitted",
			params:   nil,
			want:     validator.Violations{"firstName": {"is required"}, "lastName": {"is required"}, "age": {"is required"}, "courseCode": {"is required"}},
			wantKind: OutcomeForm,
		},
	}

	svc := newService(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := svc.SubmitForm(tt.params)

			assert.Equal(t, tt.want, out.Violations)
			assert.Equal(t, tt.wantKind, out.Kind)
			assert.Equal(t, len(tt.want) == 0, out.Accepted)
			assert.Equal(t, model.CountryOptions(), out.CountryOptions)
		})
	}
}

func TestSubmitForm_TrimsAndEchoes(t *testing.T) {
	out := newService(t).SubmitForm(map[string]string{
		"firstName": "  Ana ", "lastName": " Lee", "age": "30 ", "country": " DE ", "courseCode": " COU7 ",
	})

	require.True(t, out.Accepted)
	assert.Equal(t, model.StudentForm{FirstName: "Ana", LastName: "Lee", Age: "30", Country: "DE", CourseCode: "COU7"}, out.Form)
	require.NotNil(t, out.Student.Age)
	assert.Equal(t, 30, *out.Student.Age)
	assert.Equal(t, "Ana", *out.Student.FirstName)
	assert.Equal(t, "Germany", out.CountryName)
}

func TestSubmitForm_KeepsEnteredValuesOnError(t *testing.T) {
	out := newService(t).SubmitForm(map[string]string{"firstName": "Ana", "age": "abc", "courseCode": "ZZZ"})

	assert.False(t, out.Accepted)
	assert.Equal(t, "abc", out.Form.Age)
	assert.Equal(t, "ZZZ", out.Form.CourseCode)
	assert.Nil(t, out.Student.Age)
	assert.Empty(t, out.CountryName)
}

func TestSubmitForm_Idempotent(t *testing.T) {
	svc := newService(t)
	params := map[string]string{"firstName": "Ana", "age": "151", "courseCode": "ABC"}

	assert.Equal(t, svc.SubmitForm(params), svc.SubmitForm(params))
}

func TestSubmitForm_LogsViolatedFields(t *testing.T) {
	var buf bytes.Buffer
	v, err := validator.New("COU")
	require.NoError(t, err)
	svc := NewStudentService(v, zerolog.New(&buf).Level(zerolog.DebugLevel))

	svc.SubmitForm(map[string]string{"firstName": "Ana", "lastName": "Lee", "age": "12", "courseCode": "COU1"})

	assert.Contains(t, buf.String(), `"accepted":false`)
	assert.Contains(t, buf.String(), `"violated_fields":["age"]`)
	assert.NotContains(t, buf.String(), "Ana")
}
