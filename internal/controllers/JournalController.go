package controllers

import (
	"net/http"
	"time"

	"localjournal/internal/models"
	"localjournal/internal/providers"
	"localjournal/internal/services"
	"localjournal/internal/views"
)

const (
	maxFormBodySize = 10 << 20 // 10 MiB
	flashCookieName = "journal_flash"
	SavedMessage    = "Entry saved. Stored locally in this folder."
)

type JournalController struct {
	logger   providers.Logger
	service  services.JournalServiceInterface
	flash    services.FlashServiceInterface
	renderer views.RendererInterface
}

func NewJournalController(logger providers.Logger, service services.JournalServiceInterface, flash services.FlashServiceInterface, renderer views.RendererInterface) *JournalController {
	return &JournalController{
		logger:   logger,
		service:  service,
		flash:    flash,
		renderer: renderer,
	}
}

func (jc *JournalController) render(w http.ResponseWriter, r *http.Request, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := jc.renderer.Render(w, page, data); err != nil {
		jc.logger.Errorf(providers.GetLogTypeByRequestType(r.Method), "Unable to render %s: %s", page, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Index renders the entry form along with pending flash messages.
func (jc *JournalController) Index(w http.ResponseWriter, r *http.Request) {
	// "/" is the catch-all pattern of http.ServeMux.
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	var messages []string
	if c, err := r.Cookie(flashCookieName); err == nil {
		messages = jc.flash.Pop(c.Value)
		http.SetCookie(w, &http.Cookie{Name: flashCookieName, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
	}

	jc.render(w, r, views.PageIndex, views.IndexPage{Title: "Journal", Messages: messages})
}

// Submit appends one entry to the store and redirects back to the form.
// Storage problems are logged, never reported to the client. Only a request
// body over maxFormBodySize or one that is not a form is refused.
func (jc *JournalController) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBodySize)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	res := jc.service.Submit(models.NewInputEntry(r.PostForm.Get))
	jc.logger.Debugf(providers.TypePost, "Submitted entry %s (read=%s write=%s)", res.Entry.Date, res.Read, res.Write)

	var token string
	if c, err := r.Cookie(flashCookieName); err == nil {
		token = c.Value
	}
	token = jc.flash.Push(token, SavedMessage)
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(10 * time.Minute),
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Entries renders every stored entry in file order.
func (jc *JournalController) Entries(w http.ResponseWriter, r *http.Request) {
	res := jc.service.List()
	jc.logger.Debugf(providers.TypeGet, "Listing %d entries from %s store", len(res.Entries), res.Kind)
	jc.render(w, r, views.PageEntries, views.NewEntriesPage(res.Entries))
}
