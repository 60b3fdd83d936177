package controllers

import (
	"log"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"taskboard/app/models"
	"taskboard/app/views"
)

// PageController renders the task management page and handles its forms.
// Views are built per request and reach the proxy through API.
type PageController struct {
	API                views.API
	UseFallbackOnError bool
}

// NewPageController creates a new PageController.
func NewPageController(api views.API, useFallbackOnError bool) *PageController {
	return &PageController{API: api, UseFallbackOnError: useFallbackOnError}
}

// Index handles GET /. The edit query parameter opens that task's editor;
// added shows the creation message.
func (c *PageController) Index(w http.ResponseWriter, r *http.Request) {
	page := c.newPage()
	page.List.Load(r.Context())
	query := r.URL.Query()
	if id := query.Get("edit"); id != "" {
		if item := page.List.Item(id); item != nil {
			item.BeginEdit()
		}
	}
	if query.Get("added") != "" {
		page.Form.MarkAdded()
	}
	c.render(w, page)
}

// CreateTask handles POST /tasks. A successful create redirects so that
// reloading the page does not submit it again.
func (c *PageController) CreateTask(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	page := c.newPage()
	page.Form.SetDraft(draftFromForm(r))
	if err := page.Form.Submit(r.Context()); err != nil {
		page.List.Load(r.Context())
		c.render(w, page)
		return
	}
	redirect(w, r, "/?added=1")
}

// UpdateTask handles POST /tasks/{id}/update, which saves or cancels an
// inline edit. Only a failed save renders; the rest redirect to the card.
func (c *PageController) UpdateTask(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	id := mux.Vars(r)["id"]
	if r.PostFormValue("action") == "cancel" {
		redirect(w, r, taskAnchor(id))
		return
	}

	page := c.newPage()
	page.List.Load(r.Context())
	item := c.item(page, id, models.Task{
		Name:        r.PostFormValue("orig_name"),
		Description: r.PostFormValue("orig_description"),
		Status:      models.Status(r.PostFormValue("orig_status")),
	})

	item.BeginEdit()
	item.SetDraft(draftFromForm(r))
	if err := item.Save(r.Context()); err != nil {
		c.render(w, page)
		return
	}
	redirect(w, r, taskAnchor(id))
}

// DeleteTask handles POST /tasks/{id}/delete. The browser confirmation
// sets confirmed=yes; without it nothing is deleted.
func (c *PageController) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	confirmed := r.PostFormValue("confirmed") == "yes"
	if !confirmed {
		redirect(w, r, "/")
		return
	}

	page := c.newPage()
	page.List.Load(r.Context())
	item := c.item(page, mux.Vars(r)["id"], models.Task{})
	err := item.Delete(r.Context(), func(string) bool { return confirmed })
	if err != nil {
		c.render(w, page)
		return
	}
	redirect(w, r, "/")
}

// Refresh handles POST /refresh, the list's retry action. It renders only
// while the list still fails to load.
func (c *PageController) Refresh(w http.ResponseWriter, r *http.Request) {
	page := c.newPage()
	page.List.Retry(r.Context())
	if page.List.Err() != "" {
		c.render(w, page)
		return
	}
	redirect(w, r, "/")
}

func (c *PageController) newPage() *views.Page {
	return views.NewPage(c.API, c.UseFallbackOnError)
}

// item finds the task in the loaded list, or adopts one built from the
// submitted original values.
func (c *PageController) item(page *views.Page, id string, original models.Task) *views.TaskItem {
	if item := page.List.Item(id); item != nil {
		return item
	}
	original.ID = id
	return page.List.Adopt(original)
}

func (c *PageController) render(w http.ResponseWriter, page *views.Page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(w); err != nil {
		log.Printf("render page: %v", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

func redirect(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func taskAnchor(id string) string {
	return "/#task-" + url.PathEscape(id)
}

func draftFromForm(r *http.Request) models.TaskInput {
	return models.TaskInput{
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
		Status:      models.Status(r.PostFormValue("status")),
	}
}
