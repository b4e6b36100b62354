// Package static, admin paneli ve public sitenin derlenmiş frontend'ini binary'ye gömer.
//
// Build sırasında frontend çıktısı static/dist/ dizinine kopyalanır.
// Development'ta dist/ boştur (.gitkeep); istekler SPA fallback'e düşmez,
// frontend kendi dev server'ından servis edilir.
package static

import (
	"embed"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

//go:embed all:dist
var frontendFS embed.FS

// Handler, dist/ içeriğini servis eder. Dosya bulunamazsa ve index.html varsa
// SPA fallback olarak index.html döner. /api/ altındaki istekler hiçbir zaman
// buraya düşmez (router'da daha spesifik pattern'ler vardır).
func Handler() http.Handler {
	dist, err := fs.Sub(frontendFS, "dist")
	if err != nil {
		panic(err)
	}
	return handlerFS(dist)
}

func handlerFS(dist fs.FS) http.Handler {
	files := http.FileServerFS(dist)
	_, indexErr := fs.Stat(dist, "index.html")
	hasIndex := indexErr == nil

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
		if name == "" {
			name = "."
		}
		if _, err := fs.Stat(dist, name); err != nil && hasIndex && !strings.HasPrefix(r.URL.Path, "/api/") {
			http.ServeFileFS(w, r, dist, "index.html")
			return
		}
		files.ServeHTTP(w, r)
	})
}
