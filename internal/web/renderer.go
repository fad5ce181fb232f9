// Package web serves the server-rendered section pages. The pages are a
// thin read layer over the same services the API uses; their edit forms
// submit to the REST endpoints, whose gates stay authoritative.
package web

import (
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tahsin/scholarfolio/internal/pkg/logger"
)

// Renderer holds the parsed template set, one entry per page, each cloned
// on top of the shared layout.
type Renderer struct {
	templates map[string]*template.Template
}

// funcMap is available to every template.
var funcMap = template.FuncMap{
	"formatDate": func(v interface{}) string {
		var t time.Time
		switch d := v.(type) {
		case time.Time:
			t = d
		case *time.Time:
			if d == nil {
				return ""
			}
			t = *d
		default:
			return ""
		}
		if t.IsZero() {
			return ""
		}
		return t.Format("January 2, 2006")
	},
	"year": func() int {
		return time.Now().Year()
	},
	"add": func(a, b int) int {
		return a + b
	},
	"sub": func(a, b int) int {
		return a - b
	},
}

// NewRenderer parses every page template under dir against the shared
// layout.html.
func NewRenderer(dir string) (*Renderer, error) {
	layout := filepath.Join(dir, "layout.html")

	pages, err := filepath.Glob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan templates: %w", err)
	}

	templates := make(map[string]*template.Template)
	for _, page := range pages {
		name := filepath.Base(page)
		if name == "layout.html" {
			continue
		}
		tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layout, page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		templates[name] = tpl
	}

	if len(templates) == 0 {
		return nil, fmt.Errorf("no page templates found under %s", dir)
	}

	return &Renderer{templates: templates}, nil
}

// Render writes one page. Template failures surface as a plain 500; the
// JSON envelope belongs to the API, not the pages.
func (r *Renderer) Render(c *gin.Context, name string, data gin.H) {
	tpl, ok := r.templates[name]
	if !ok {
		logger.Error().Str("template", name).Msg("Unknown template")
		c.String(http.StatusInternalServerError, "template not found")
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := tpl.ExecuteTemplate(c.Writer, "layout.html", data); err != nil {
		logger.Error().Err(err).Str("template", name).Msg("Template execution failed")
	}
}
