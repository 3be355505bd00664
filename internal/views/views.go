// Package views holds the embedded server-side templates and their engine.
package views

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates/*.html
var templatesFS embed.FS

// NewEngine returns the HTML template engine backed by the embedded
// templates, ready to be plugged into fiber.Config.Views. Templates are
// addressed by bare name, e.g. "profile".
func NewEngine() *html.Engine {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		// The subtree is part of the binary; failure here is a build defect.
		panic(err)
	}
	return html.NewFileSystem(http.FS(sub), ".html")
}
