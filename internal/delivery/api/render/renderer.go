// Package render serves the server-side pages through echo.Renderer.
package render

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CompleteProfilePage is the profile completion form.
const CompleteProfilePage = "complete_profile.html"

//go:embed templates/*.html
var templateFS embed.FS

// Renderer executes the embedded html/template set.
type Renderer struct {
	templates *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse templates")
	}

	return &Renderer{templates: templates}, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return errors.WithStack(r.templates.ExecuteTemplate(w, name, data))
}
