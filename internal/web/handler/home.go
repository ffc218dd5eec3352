package handler

import (
	"net/http"

	"github.com/tmorwood/userhub/internal/web/middleware"
	"github.com/tmorwood/userhub/internal/web/views"
)

// HomeHandler handles the home page
type HomeHandler struct {
	views *views.Renderer
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(renderer *views.Renderer) *HomeHandler {
	return &HomeHandler{views: renderer}
}

// Home renders the home page for both anonymous and authenticated visitors
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	data := views.PageData{
		Title: "Home",
		Flash: middleware.GetFlash(r.Context()),
	}
	if session := middleware.GetSession(r.Context()); session != nil {
		data.Username = session.Username
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.views.Render(w, "index.html", data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
