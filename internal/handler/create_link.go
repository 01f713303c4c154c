package handler

import (
	"io"
	"net/http"

	"go.uber.org/zap"
)

// maxBodySize ограничивает тело запроса на создание ссылки
const maxBodySize = 16 << 10

// CreateLink обрабатывает POST запрос с URL в теле text/plain
func (h *Handler) CreateLink(w http.ResponseWriter, req *http.Request) {
	userID, ok := h.getUserIDFromRequest(req)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(io.LimitReader(req.Body, maxBodySize))
	if err != nil {
		h.logger.Warn("failed to read request body", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	link, err := h.usecase.ShortenLink(req.Context(), userID, string(body), "")
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusCreated)
	if _, err := io.WriteString(w, link.ShortURL); err != nil {
		h.logger.Error("failed to write response", zap.Error(err))
	}
}
