// Package site serves the embedded landing page.
package site

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Register attaches the landing page and its assets to r.
func Register(_ context.Context, r chi.Router) {
	if r == nil {
		panic("router is nil")
	}

	h := NewRootHandler()
	r.Get("/", h.HandleRoot)
	r.Handle("/static/*", http.StripPrefix("/static/", h.files))
}

// RootHandler handles root path requests
type RootHandler struct {
	files http.Handler
}

// NewRootHandler creates a new root handler
func NewRootHandler() *RootHandler {
	return &RootHandler{files: http.FileServer(FS())}
}

// HandleRoot serves the embedded index page.
func (h *RootHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	h.files.ServeHTTP(w, r)
}
