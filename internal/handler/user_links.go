package handler

import (
	"net/http"
)

// GetUserLinks возвращает все ссылки владельца
func (h *Handler) GetUserLinks(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.getUserIDFromRequest(r)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	links, err := h.usecase.OwnerLinks(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	// Если ссылок нет, возвращаем 204 No Content
	if len(links) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h.writeJSON(w, http.StatusOK, links)
}

// GetUserSummary сводная статистика по ссылкам владельца
func (h *Handler) GetUserSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.getUserIDFromRequest(r)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	summaries, err := h.usecase.Summary(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, summaries)
}
