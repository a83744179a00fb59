// Package web holds the dashboard's presentation plumbing: the template
// renderer, the session cookie, and the flash message queue.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"github.com/labstack/echo/v4"
)

// TemplateHeader carries the rendered template's name on the response so
// view tests can assert which page was produced.
const TemplateHeader = "X-Template"

//go:embed templates
var templatesFS embed.FS

// Renderer renders the embedded dashboard templates through Echo.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses every embedded template. Template names are the paths
// relative to the templates root, e.g. "identity/projects/index.html".
func NewRenderer() (*Renderer, error) {
	root := template.New("")
	err := fs.WalkDir(templatesFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}
		content, err := templatesFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read template %s: %w", path, err)
		}
		name := strings.TrimPrefix(path, "templates/")
		if _, err := root.New(name).Parse(string(content)); err != nil {
			return fmt.Errorf("failed to parse template %s: %w", path, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: root}, nil
}

// Render implements echo.Renderer and stamps the template name header.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	c.Response().Header().Set(TemplateHeader, name)
	return r.templates.ExecuteTemplate(w, name, data)
}
