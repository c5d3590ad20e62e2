// Package render implements echo.Renderer over embedded html/template pages.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-booking/internal/flash"
	"github.com/iliyamo/venue-booking/internal/form"
)

//go:embed templates
var templatesFS embed.FS

// Page is the data handed to every template.
type Page struct {
	Title   string
	Flashes []flash.Message
	Data    any
	Form    any
	Errors  form.Errors
	// SearchTerm echoes the submitted term on search result pages.
	SearchTerm string
}

// States and Genres expose the form choices to templates.
func (Page) States() []string { return form.States }
func (Page) Genres() []string { return form.Genres }

// Renderer holds one template set per page, each combined with the layout.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	return parse(templatesFS)
}

func parse(fsys fs.FS) (*Renderer, error) {
	layout, err := fs.ReadFile(fsys, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	r := &Renderer{pages: map[string]*template.Template{}}
	for _, dir := range []string{"pages", "forms", "errors"} {
		files, err := fs.Glob(fsys, path.Join("templates", dir, "*.html"))
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			body, err := fs.ReadFile(fsys, f)
			if err != nil {
				return nil, err
			}
			name := strings.TrimSuffix(strings.TrimPrefix(f, "templates/"), ".html")
			t, err := template.New("layout").Funcs(Funcs()).Parse(string(layout))
			if err != nil {
				return nil, fmt.Errorf("parse layout: %w", err)
			}
			if _, err := t.New(name).Parse(string(body)); err != nil {
				return nil, fmt.Errorf("parse %s: %w", name, err)
			}
			r.pages[name] = t
		}
	}
	return r, nil
}

// Render executes the named page, e.g. "pages/venues", inside the layout.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("render: unknown template %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

// Funcs returns the template helpers.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"datetime": FormatDateTime,
		"join":     strings.Join,
	}
}

// FormatDateTime renders t in the "full" or "medium" (default) style.
func FormatDateTime(t time.Time, style ...string) string {
	s := "medium"
	if len(style) > 0 {
		s = style[0]
	}
	t = t.UTC()
	switch s {
	case "full":
		return t.Format("Monday January, 2, 2006 at 3:04PM")
	case "iso":
		return t.Format("2006-01-02 15:04:05")
	default:
		return t.Format("Mon 01, 02, 2006 3:04PM")
	}
}
