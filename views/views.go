// Package views şablonları ve statik dosyaları ikili dosyaya gömer.
package views

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var templatesFS embed.FS

// Static /static altında sunulan dosyalar; kök dizin "static".
//
//go:embed static
var Static embed.FS

// DefaultAvatar resmi yüklenemeyen akademisyenler için.
const DefaultAvatar = "/static/img/default-user.svg"

// NewEngine gömülü şablonlar için html motorunu kurar.
func NewEngine() *html.Engine {
	root, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		panic("views: şablon dizini okunamadı: " + err.Error())
	}
	engine := html.NewFileSystem(http.FS(root), ".html")
	engine.AddFuncMap(map[string]interface{}{
		"defaultAvatar": func() string { return DefaultAvatar },
		"lines":         func(s string) []string { return strings.Split(s, "\n") },
		"staffRow":      staffRow,
	})
	return engine
}

// staffRow personel listelerinde satır ve işlem formları için veri paketler.
func staffRow(appointment interface{}, base, redirect string, csrf interface{}) map[string]interface{} {
	return map[string]interface{}{
		"Appointment": appointment,
		"Base":        base,
		"Redirect":    redirect,
		"CsrfToken":   csrf,
	}
}
