package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"
)

//go:embed templates/*.html
var templateFS embed.FS

type TemplateStore struct {
	templates map[string]*template.Template
}

// NewTemplateStore parses every page together with the shared layout. funcs
// are available to all templates.
func NewTemplateStore(funcs template.FuncMap) (*TemplateStore, error) {
	tpls := make(map[string]*template.Template)
	pages := []string{"view", "not_found"}
	for _, p := range pages {
		tpl, err := template.New(p + ".html").Funcs(funcs).ParseFS(
			templateFS,
			"templates/layout.html",
			"templates/"+p+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse templates for %s: %w", p, err)
		}
		tpls[p+".html"] = tpl
	}
	return &TemplateStore{templates: tpls}, nil
}

// Render executes the named page into a buffer first so a failing template
// never leaves a half-written response behind.
func (ts *TemplateStore) Render(w http.ResponseWriter, status int, name string, data any) {
	tpl, ok := ts.templates[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, name, data); err != nil {
		log.Error().Err(err).Str("template", name).Msg("template render failed")
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
