package httpserver

import (
	"embed"
	"html/template"
	"io"

	"moviesearch/movie"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

type templateRenderer struct {
	templates *template.Template
}

func newTemplateRenderer() *templateRenderer {
	return &templateRenderer{
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

func (r *templateRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

type searchPage struct {
	Title      string
	SearchTerm string
	Movies     []movie.Movie
}

type detailPage struct {
	Title      string
	SearchTerm string
	Detail     movie.Detail
}

type errorPage struct {
	Title      string
	SearchTerm string
	Status     int
	Message    string
}
