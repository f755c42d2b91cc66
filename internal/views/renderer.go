package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"localjournal/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	PageIndex   = "index.html"
	PageEntries = "entries.html"
)

type IndexPage struct {
	Title    string
	Messages []string
}

type EntriesPage struct {
	Title   string
	Columns []string
	Rows    [][]string
}

func NewEntriesPage(entries []models.JournalEntry) EntriesPage {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = e.Values()
	}
	return EntriesPage{Title: "Journal entries", Columns: models.Columns, Rows: rows}
}

type RendererInterface interface {
	Render(w io.Writer, page string, data any) error
}

// Renderer keeps one parsed template set per page, each sharing the layout.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (RendererInterface, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, page := range []string{PageIndex, PageEntries} {
		tpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		r.pages[page] = tpl
	}
	return r, nil
}

// Render executes page into a buffer first so a template error never leaves a
// half-written response.
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	tpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, page, data); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
