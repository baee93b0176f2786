package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"pos-terminal/pkg/utils"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

// pageNames lists every view; each parses together with the layout so
// the navbar renders on all of them (it hides itself on the login
// page, where the session is always nil).
var pageNames = []string{
	"login",
	"cashier",
	"orders",
	"products",
	"edit_product",
	"dashboard",
	"admincontrol",
}

type Renderer struct {
	pages map[string]*template.Template
	log   *zap.Logger
}

func NewRenderer(log *zap.Logger) (*Renderer, error) {
	funcs := template.FuncMap{
		"rupiah": utils.FormatRupiah,
		"datetime": func(t time.Time) string {
			return t.UTC().Format("January 2, 2006 3:04 PM")
		},
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(
			templatesFS,
			"templates/layout.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &Renderer{
		pages: pages,
		log:   log,
	}, nil
}

// Render executes the named page into a buffer first, so a template
// fault produces a clean 500 instead of a half-written body.
func (r *Renderer) Render(w http.ResponseWriter, name string, data any) {
	tmpl, ok := r.pages[name]
	if !ok {
		r.log.Error("Unknown template", zap.String("name", name))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		r.log.Error("Failed to render template",
			zap.String("name", name), zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}
