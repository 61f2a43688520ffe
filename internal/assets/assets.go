// Package assets provides the landing page images embedded in the binary.
package assets

import (
	"embed"
	"io/fs"
	"net/http"
	"path"
)

// Prefix is the URL path the images are served under.
const Prefix = "/assets/"

//go:embed static/*
var staticFiles embed.FS

// FS returns the embedded images with the static folder as root.
func FS() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// static/ is embedded at compile time; Sub only fails on an invalid name.
		panic(err)
	}
	return sub
}

// URL returns the path an image is served at.
func URL(name string) string {
	return path.Join(Prefix, name)
}

// Exists reports whether name is an embedded image.
func Exists(name string) bool {
	_, err := fs.Stat(FS(), name)
	return err == nil
}

// Handler serves the embedded images. Mount it with the Prefix stripped.
func Handler() http.Handler {
	fileServer := http.FileServer(http.FS(FS()))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || r.URL.Path == "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", "public, max-age=86400")
		fileServer.ServeHTTP(w, r)
	})
}
