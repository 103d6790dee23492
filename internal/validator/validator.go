package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/stemsi/student-form/internal/model"
)

// ErrTranslatorNotFound indicates the English translator is unavailable.
var ErrTranslatorNotFound = errors.New("translator not found")

// ErrUnsupportedPrefix indicates a course code prefix that contains one of
// the engine's tag escape sequences.
var ErrUnsupportedPrefix = errors.New("unsupported course code prefix")

// trans is the singleton English translator for gin binding errors.
var trans ut.Translator

// Setup registers English translations and the course code rule on Gin's
// binding engine. Call once during application startup.
func Setup() error {
	v, ok := binding.Validator.Engine().(*govalidator.Validate)
	if !ok {
		return nil
	}

	// Use the wire name for field names in error messages.
	v.RegisterTagNameFunc(wireName)

	t, err := configure(v)
	if err != nil {
		return err
	}
	trans = t
	return nil
}

// wireName returns the json tag name of a struct field, falling back to
// its form tag.
func wireName(fld reflect.StructField) string {
	for _, key := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// configure installs the English default translations and the course code
// rule with its translation on v.
func configure(v *govalidator.Validate) (ut.Translator, error) {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	t, ok := uni.GetTranslator("en")
	if !ok {
		return nil, ErrTranslatorNotFound
	}
	if err := en_translations.RegisterDefaultTranslations(v, t); err != nil {
		return nil, err
	}

	if err := v.RegisterValidation(tagCourseCode, validateCourseCode, true); err != nil {
		return nil, err
	}
	err := v.RegisterTranslation(tagCourseCode, t,
		func(ut ut.Translator) error {
			return ut.Add(tagCourseCode, "must start with {0}", false)
		},
		func(ut ut.Translator, fe govalidator.FieldError) string {
			msg, err := ut.T(tagCourseCode, coursePrefix(fe.Param()))
			if err != nil {
				return fe.Error()
			}
			return msg
		},
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// TranslateErrors takes a binding/validation error and returns the
// human-readable messages per field. If the error is not a validation
// error, it returns a single "detail" entry.
func TranslateErrors(err error) Violations {
	fields := make(Violations)

	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			if trans != nil {
				fields.Add(fe.Field(), fe.Translate(trans))
			} else {
				fields.Add(fe.Field(), fe.Error())
			}
		}
		return fields
	}

	// Not a validation error (e.g., JSON syntax error).
	fields.Add("detail", err.Error())
	return fields
}

// Bind binds the request body into dst according to its content type.
// Returns nil on success or the translated field errors on failure.
func Bind(c *gin.Context, dst any) Violations {
	if err := c.ShouldBind(dst); err != nil {
		return TranslateErrors(err)
	}
	return nil
}

// Validator evaluates a student rule table. It holds no per-call state and
// is safe for concurrent use.
type Validator struct {
	validate    *govalidator.Validate
	trans       ut.Translator
	constraints []Constraint
}

// New builds a Validator whose course code rule checks prefix.
// An empty prefix keeps DefaultCoursePrefix.
func New(prefix string) (*Validator, error) {
	for _, seq := range tagParamEscapes {
		if strings.Contains(prefix, seq) {
			return nil, fmt.Errorf("%w: %q contains %s", ErrUnsupportedPrefix, prefix, seq)
		}
	}

	v := govalidator.New()
	t, err := configure(v)
	if err != nil {
		return nil, err
	}
	return &Validator{
		validate:    v,
		trans:       t,
		constraints: StudentConstraints(prefix),
	}, nil
}

// Constraints returns a copy of the rule table in evaluation order.
func (v *Validator) Constraints() []Constraint {
	out := make([]Constraint, len(v.constraints))
	copy(out, v.constraints)
	return out
}

// Validate evaluates every constraint against s and returns all violations.
// The result is empty, not nil, when s is valid.
func (v *Validator) Validate(s model.Student) Violations {
	out := make(Violations)
	for _, c := range v.constraints {
		if msg, ok := v.check(c, s); !ok {
			out.Add(c.Field, msg)
		}
	}
	return out
}

func (v *Validator) check(c Constraint, s model.Student) (string, bool) {
	val, present := c.value(s)
	if c.Tag == tagNotNull {
		return c.Message, present
	}
	if !present {
		return "", true
	}

	err := v.validate.Var(val, c.Tag)
	if err == nil {
		return "", true
	}
	if c.Message != "" {
		return c.Message, false
	}

	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return ve[0].Translate(v.trans), false
	}
	return err.Error(), false
}
