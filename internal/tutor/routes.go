package tutor

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/ask", h.Ask)
	r.Get("/subjects", h.Subjects)
	return r
}
