package render

import (
	"embed"
	"encoding/json"
	"html/template"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	LandingPage   = "landing"
	BlogIndexPage = "blog_index"
	BlogPostPage  = "blog_post"
	NotFoundPage  = "not_found"

	layoutTemplate = "layout"
)

var pages = []string{LandingPage, BlogIndexPage, BlogPostPage, NotFoundPage}

var _ echo.Renderer = &Renderer{}

// Renderer keeps one template set per page, each made of the shared layout
// and the page's own blocks
type Renderer struct {
	templates map[string]*template.Template
}

func New() (*Renderer, error) {
	templates := map[string]*template.Template{}

	for _, page := range pages {
		t, err := template.New(page).
			Funcs(funcs).
			ParseFS(templateFS, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, errors.Wrapf(err, "Failed to parse the %s page", page)
		}

		templates[page] = t
	}

	return &Renderer{
		templates: templates,
	}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.templates[name]
	if !ok {
		return errors.Newf("No page named %s", name)
	}

	if err := t.ExecuteTemplate(w, layoutTemplate, data); err != nil {
		return errors.Wrapf(err, "Failed to render the %s page", name)
	}

	return nil
}

var funcs = template.FuncMap{
	"json": func(v any) (string, error) {
		jsonBytes, err := json.Marshal(v)
		if err != nil {
			return "", errors.Wrap(err, "Failed to encode template data")
		}

		return string(jsonBytes), nil
	},
	// tel: links are dropped by the URL sanitizer unless marked safe
	"telURL": func(tel string) template.URL {
		return template.URL(tel)
	},
}
