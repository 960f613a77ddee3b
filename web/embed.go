// Package web embeds the browser UI served at the site root.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFS embed.FS

// Handler serves the embedded single-page UI.
func Handler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// embed paths are fixed at build time
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
