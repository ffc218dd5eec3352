// Package views renders the HTML pages. The layout is deliberately plain;
// the interesting behavior lives in the auth service and the gate middleware.
package views

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.html
var files embed.FS

// Flash is a one-shot message shown on the next page render
type Flash struct {
	Kind    string // "success", "error" or "info"
	Message string
}

// PageData carries data common to every page
type PageData struct {
	Title    string
	Flash    *Flash
	Username string // authenticated username, empty for anonymous
}

// SignupData is the data for the signup page
type SignupData struct {
	PageData
	FormUsername string
	Error        string
}

// LoginData is the data for the login page
type LoginData struct {
	PageData
	FormUsername string
	Error        string
	Next         string
}

// Renderer renders named page templates
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates
func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(files, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the named page with the given data
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	return r.tmpl.ExecuteTemplate(w, page, data)
}
