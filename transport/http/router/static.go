package router

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"halachi/transport/http/response"
)

const (
	indexPage = "index.html"
	adminPage = "admin.html"
)

// Static serves the site from the public directory. Paths that match no file fall back to
// index.html so the client-side router can handle them.
type Static struct {
	dir   string
	files http.Handler
}

func NewStatic(dir string) *Static {
	return &Static{
		dir:   dir,
		files: http.FileServer(http.Dir(dir)),
	}
}

func (s *Static) Admin(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(s.dir, adminPage))
}

func (s *Static) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := path.Clean("/" + r.URL.Path)

	info, err := os.Stat(filepath.Join(s.dir, filepath.FromSlash(name)))
	if err == nil && !info.IsDir() {
		s.files.ServeHTTP(w, r)

		return
	}

	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		response.WithError(w, err)

		return
	}

	http.ServeFile(w, r, filepath.Join(s.dir, indexPage))
}
