// Package views renders the server-side HTML pages from embedded templates.
//
// Every page template defines a "content" block that the shared layout
// wraps. Render parses everything once at startup:
//
//	views.Render(w, "dashboard", data)
package views

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/atelierhq/atelier/pkg/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = map[string]*template.Template{}

var funcs = template.FuncMap{
	"money": func(v float64) string {
		return fmt.Sprintf("$%.2f", v)
	},
	"date": func(v interface{}) string {
		switch t := v.(type) {
		case time.Time:
			return t.Format("Jan 2, 2006")
		case *time.Time:
			if t == nil {
				return ""
			}
			return t.Format("Jan 2, 2006")
		}
		return ""
	},
	"datetime": func(t time.Time) string {
		return t.Format("Jan 2, 2006 15:04")
	},
}

func init() {
	names := []string{
		"login", "storefront", "product",
		"dashboard", "orders", "order", "products", "product_form",
		"customers", "analytics",
	}
	for _, name := range names {
		pages[name] = template.Must(template.New("layout.html").
			Funcs(funcs).
			ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html"))
	}
}

// Render writes a page with the shared layout. data is page-specific.
func Render(w http.ResponseWriter, page string, data interface{}) {
	tmpl, ok := pages[page]
	if !ok {
		logger.Error("views: unknown page", "page", page)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		logger.Error("views: render failed", "page", page, "error", err)
	}
}
