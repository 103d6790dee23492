package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/stemsi/student-form/internal/config"
	"github.com/stemsi/student-form/internal/logger"
	"github.com/stemsi/student-form/internal/model"
	"github.com/stemsi/student-form/internal/service"
	"github.com/stemsi/student-form/internal/validator"
	"golang.org/x/term"
)

const (
	ansiRed   = "\033[31m"
	ansiGreen = "\033[32m"
	ansiReset = "\033[0m"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	color := term.IsTerminal(int(os.Stdout.Fd()))
	os.Exit(run(os.Args[1:], cfg.CoursePrefix, os.Stdout, os.Stderr, color, log))
}

// run checks one student record given as flags and prints the outcome.
// It returns 0 when the record is accepted, 1 when it is rejected and 2 on
// a usage error.
func run(args []string, prefix string, stdout, stderr io.Writer, color bool, log zerolog.Logger) int {
	fs := flag.NewFlagSet("check-student", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var form model.StudentForm
	fs.StringVar(&form.FirstName, "first-name", "", "Student first name")
	fs.StringVar(&form.LastName, "last-name", "", "Student last name")
	fs.StringVar(&form.Age, "age", "", "Student age (whole number)")
	fs.StringVar(&form.Country, "country", "", "Country code (BR, FR, DE, IN)")
	fs.StringVar(&form.CourseCode, "course-code", "", "Course code")
	fs.StringVar(&prefix, "prefix", prefix, "Required course code prefix")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	v, err := validator.New(prefix)
	if err != nil {
		log.Error().Err(err).Msg("Failed to build student validator")
		return 2
	}

	out := service.NewStudentService(v, log).SubmitForm(form.Params())
	if out.Accepted {
		fmt.Fprintln(stdout, paint(color, ansiGreen, "accepted"))
		return 0
	}

	for _, field := range out.Violations.Fields() {
		for _, msg := range out.Violations.Messages(field) {
			fmt.Fprintf(stdout, "%s: %s\n", paint(color, ansiRed, field), msg)
		}
	}
	return 1
}

func paint(color bool, code, s string) string {
	if !color {
		return s
	}
	return code + s + ansiReset
}
