// Package view wires html/template into Echo. Templates are embedded
// into the binary so the server has no runtime file dependencies.
package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var files embed.FS

// Renderer implements echo.Renderer over the embedded page templates.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates. It panics on a parse
// error since that is a programming mistake caught at startup.
func NewRenderer() *Renderer {
	return &Renderer{
		templates: template.Must(template.ParseFS(files, "templates/*.html")),
	}
}

// Render executes the named template with the given data.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
