package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/avc-dev/snipit/internal/model"
	"go.uber.org/zap"
)

type ShortenRequest struct {
	URL  string `json:"url"`
	Code string `json:"code,omitempty"`
}

type ShortenResponse struct {
	Result string     `json:"result"`
	Code   model.Code `json:"code"`
	Link   model.Link `json:"link"`
}

// CreateLinkJSON обрабатывает POST запрос для создания ссылки (JSON формат).
// Необязательное поле code задаёт собственный короткий код.
func (h *Handler) CreateLinkJSON(w http.ResponseWriter, req *http.Request) {
	userID, ok := h.getUserIDFromRequest(req)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var request ShortenRequest
	if err := json.NewDecoder(io.LimitReader(req.Body, maxBodySize)).Decode(&request); err != nil {
		h.logger.Warn("failed to decode JSON request",
			zap.Error(err),
			zap.String("remote_addr", req.RemoteAddr),
		)
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed JSON body"})
		return
	}

	link, err := h.usecase.ShortenLink(req.Context(), userID, request.URL, request.Code)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, ShortenResponse{
		Result: link.ShortURL,
		Code:   link.Code,
		Link:   link.Link,
	})
}
