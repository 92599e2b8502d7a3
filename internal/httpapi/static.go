package httpapi

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"kegerator-server/internal/utils"
)

const staticGreeting = "Hi from /static"

func handleStaticGreeting(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, http.StatusOK, staticGreeting)
}

// fileFallback serves files below root for requests no other route matched.
// A missing file is a 404; any other file system error is a 500.
type fileFallback struct {
	root http.FileSystem
}

func newFileFallback(dir string) *fileFallback {
	return &fileFallback{root: http.Dir(dir)}
}

func (f *fileFallback) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := path.Clean("/" + r.URL.Path)

	file, err := f.root.Open(name)
	if err != nil {
		f.fail(w, name, err)
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		f.fail(w, name, err)
		return
	}

	if info.IsDir() {
		index := strings.TrimSuffix(name, "/") + "/index.html"
		indexFile, err := f.root.Open(index)
		if err != nil {
			f.fail(w, index, err)
			return
		}
		defer indexFile.Close()
		indexInfo, err := indexFile.Stat()
		if err != nil || indexInfo.IsDir() {
			f.fail(w, index, fs.ErrNotExist)
			return
		}
		http.ServeContent(w, r, indexInfo.Name(), indexInfo.ModTime(), indexFile)
		return
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), file)
}

func (f *fileFallback) fail(w http.ResponseWriter, name string, err error) {
	if errors.Is(err, fs.ErrNotExist) {
		utils.WriteText(w, http.StatusNotFound, "Not Found")
		return
	}
	slog.Error("static file fallback failed", "path", name, "error", err)
	utils.WriteText(w, http.StatusInternalServerError, "Something went wrong...")
}
