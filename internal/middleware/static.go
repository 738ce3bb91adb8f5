package middleware

import (
	"net/http"
	"os"
	"path/filepath"
)

// StaticFileServer serves the built web UI from dir. Unknown paths get
// index.html so client-side routes survive a reload; when dir holds no
// index.html every miss goes to fallback.
func StaticFileServer(dir string, fallback http.Handler) http.Handler {
	index := filepath.Join(dir, "index.html")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(dir, filepath.Clean("/"+r.URL.Path))

		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			w.Header().Set("Cache-Control", "public, max-age=2592000")
			http.ServeFile(w, r, path)
			return
		}

		if _, err := os.Stat(index); err == nil {
			w.Header().Set("Cache-Control", "no-cache")
			http.ServeFile(w, r, index)
			return
		}

		fallback.ServeHTTP(w, r)
	})
}
