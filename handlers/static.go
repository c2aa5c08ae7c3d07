// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"path"
	"strings"

	"github.com/danielhkuo/sheetboard/middleware"
)

// StaticHandler serves a built single-page frontend. Paths that are not files
// get index.html so client-side routes survive a reload.
type StaticHandler struct {
	dir   string
	files http.Handler
}

func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{dir: dir, files: http.FileServer(http.Dir(dir))}
}

func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Unknown API routes stay JSON errors
	if r.URL.Path == "/api" || strings.HasPrefix(r.URL.Path, "/api/") {
		middleware.ErrorResponse(w, http.StatusNotFound, "Not found")
		return
	}

	name := path.Clean("/" + r.URL.Path)
	if h.exists(name) {
		h.files.ServeHTTP(w, r)
		return
	}

	h.serveIndex(w, r)
}

func (h *StaticHandler) serveIndex(w http.ResponseWriter, r *http.Request) {
	f, err := http.Dir(h.dir).Open("/index.html")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}
	http.ServeContent(w, r, "index.html", info.ModTime(), f)
}

// exists reports whether name is a file, or a directory with its own index.html
func (h *StaticHandler) exists(name string) bool {
	f, err := http.Dir(h.dir).Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false
	}
	if !info.IsDir() {
		return true
	}

	idx, err := http.Dir(h.dir).Open(path.Join(name, "index.html"))
	if err != nil {
		return false
	}
	idx.Close()
	return true
}
