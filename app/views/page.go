package views

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"io/fs"
	"net/http"

	"taskboard/app/models"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var pageTemplate = template.Must(
	template.New("taskboard").
		Funcs(template.FuncMap{"statuses": func() []models.Status { return models.Statuses }}).
		ParseFS(templateFS, "templates/*.html"),
)

// Page composes the creation form and the task list. A successful create
// refreshes the list.
type Page struct {
	Form *CreateForm
	List *ListView
}

// NewPage wires a form and a list to api.
func NewPage(api API, useFallbackOnError bool) *Page {
	list := NewListView(api, useFallbackOnError)
	return &Page{
		Form: NewCreateForm(api, list.Refresh),
		List: list,
	}
}

// Render writes the page as HTML. Nothing is written if rendering fails.
func (p *Page) Render(w io.Writer) error {
	var buf bytes.Buffer
	if err := pageTemplate.ExecuteTemplate(&buf, "page", p); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

// Static serves the embedded stylesheet.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
