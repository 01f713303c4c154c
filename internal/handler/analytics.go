package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TotalsResponse struct {
	TotalLinks int64 `json:"total_links"`
}

// GetLinkClicks журнал переходов по ссылке, только для владельца
func (h *Handler) GetLinkClicks(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.getUserIDFromRequest(r)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	clicks, err := h.usecase.ClicksForLink(r.Context(), userID, chi.URLParam(r, "code"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, clicks)
}

// GetTotals общее число ссылок
func (h *Handler) GetTotals(w http.ResponseWriter, r *http.Request) {
	total, err := h.usecase.TotalLinks(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, TotalsResponse{TotalLinks: total})
}

// GetQRCode PNG с QR-кодом короткой ссылки
func (h *Handler) GetQRCode(w http.ResponseWriter, r *http.Request) {
	if h.qr == nil {
		w.WriteHeader(http.StatusNotImplemented)
		return
	}

	shortURL, err := h.usecase.ShortURLFor(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	png, err := h.qr.Encode(shortURL)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		h.logger.Error("failed to write QR code", zap.Error(err))
	}
}
