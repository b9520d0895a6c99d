// Package web embeds the built single-page client so the API binary
// serves its own UI without a separate static file deployment.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFiles embed.FS

// Static returns the embedded client assets rooted at the static
// directory, suitable for echo.StaticFS.
func Static() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// The static directory is compiled in, so this cannot fail
		// outside a broken build.
		panic(err)
	}
	return sub
}
