// Package view holds the HTML templates and static assets of the student
// form pages, embedded into the binary.
package view

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

// Template names rendered by the handlers.
const (
	StudentForm         = "student-form"
	StudentConfirmation = "student-confirmation"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses every embedded template. It panics on a malformed
// template, which can only happen at build time.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.tmpl"))
}

// Static serves the embedded static assets rooted at the static directory.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
