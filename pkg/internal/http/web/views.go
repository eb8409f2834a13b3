package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gofiber/template/html/v2"
)

//go:embed views
var viewsFS embed.FS

func NewViewEngine() *html.Engine {
	root, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic(err)
	}

	engine := html.NewFileSystem(http.FS(root), ".html")
	engine.AddFunc("linebreaks", func(text string) template.HTML {
		escaped := template.HTMLEscapeString(text)
		return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
	})

	return engine
}
