package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/student-form/internal/model"
	"github.com/stemsi/student-form/internal/response"
	"github.com/stemsi/student-form/internal/service"
	"github.com/stemsi/student-form/internal/validator"
	"github.com/stemsi/student-form/internal/view"
)

// StudentHandler serves the student form pages and their JSON counterpart.
type StudentHandler struct {
	studentService service.StudentService
	log            zerolog.Logger
}

func NewStudentHandler(studentService service.StudentService, log zerolog.Logger) *StudentHandler {
	return &StudentHandler{
		studentService: studentService,
		log:            log.With().Str("component", "student_handler").Logger(),
	}
}

// ShowForm godoc
// GET /student/showForm
func (h *StudentHandler) ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, view.StudentForm, h.studentService.RenderEmptyForm())
}

// ProcessForm godoc
// POST /student/processForm
func (h *StudentHandler) ProcessForm(c *gin.Context) {
	var form model.StudentForm
	if err := c.ShouldBind(&form); err != nil {
		h.log.Warn().Err(err).Str("request_id", response.RequestID(c)).Msg("Failed to bind student form")
		c.HTML(http.StatusBadRequest, view.StudentForm, h.studentService.RenderEmptyForm())
		return
	}

	out := h.studentService.SubmitForm(form.Params())
	if out.Kind == service.OutcomeConfirmation {
		c.HTML(http.StatusOK, view.StudentConfirmation, out)
		return
	}
	c.HTML(http.StatusOK, view.StudentForm, out)
}

// GetForm godoc
// GET /api/v1/students/form
func (h *StudentHandler) GetForm(c *gin.Context) {
	response.Success(c, http.StatusOK, h.studentService.RenderEmptyForm())
}

// Validate godoc
// POST /api/v1/students/validate
func (h *StudentHandler) Validate(c *gin.Context) {
	var form model.StudentForm
	if fields := validator.Bind(c, &form); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidPayload, fields, nil)
		return
	}

	out := h.studentService.SubmitForm(form.Params())
	if !out.Accepted {
		response.FailWithFields(c, http.StatusUnprocessableEntity, response.ErrValidation,
			out.Violations, gin.H{"accepted": false})
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"accepted":     true,
		"student":      out.Student,
		"country_name": out.CountryName,
	})
}
