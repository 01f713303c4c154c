package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Redirect отправляет клиента на целевой URL и фиксирует переход
func (h *Handler) Redirect(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "code")

	destination, err := h.usecase.Resolve(req.Context(), code, clickMeta(req))
	if err != nil {
		h.handleError(w, err)
		return
	}

	http.Redirect(w, req, destination, http.StatusTemporaryRedirect)
}
