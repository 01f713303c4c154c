package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc-dev/snipit/internal/middleware"
	"github.com/avc-dev/snipit/internal/model"
	"github.com/avc-dev/snipit/internal/usecase"
	"go.uber.org/zap"
)

//go:generate mockery --name LinkUsecase

// LinkUsecase определяет интерфейс бизнес-логики, нужной обработчикам
type LinkUsecase interface {
	ShortenLink(ctx context.Context, ownerID, destination, requestedCode string) (model.ShortLink, error)
	Resolve(ctx context.Context, code string, meta model.ClickMeta) (string, error)
	OwnerLinks(ctx context.Context, ownerID string) ([]model.ShortLink, error)
	ClicksForLink(ctx context.Context, ownerID, code string) ([]model.Click, error)
	Summary(ctx context.Context, ownerID string) ([]model.LinkSummary, error)
	TotalLinks(ctx context.Context) (int64, error)
	ShortURLFor(ctx context.Context, code string) (string, error)
}

// Pinger проверяет доступность хранилища
type Pinger interface {
	Ping(ctx context.Context) error
}

//go:generate mockery --name QREncoder

// QREncoder рисует PNG с QR-кодом
type QREncoder interface {
	Encode(content string) ([]byte, error)
}

// Handler HTTP обработчики сервиса
type Handler struct {
	usecase LinkUsecase
	logger  *zap.Logger
	pinger  Pinger
	qr      QREncoder
}

// New создает обработчики. pinger и qr могут быть nil:
// тогда /ping отвечает 500, а QR недоступен.
func New(usecase LinkUsecase, logger *zap.Logger, pinger Pinger, qr QREncoder) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
		pinger:  pinger,
		qr:      qr,
	}
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// handleError переводит ошибки usecase в HTTP статусы
func (h *Handler) handleError(w http.ResponseWriter, err error) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.As(err, &validationErr):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: validationErr.Reason, Field: validationErr.Field})
	case errors.Is(err, usecase.ErrDuplicateCode):
		h.writeJSON(w, http.StatusConflict, errorResponse{Error: "code already in use"})
	case errors.Is(err, usecase.ErrLinkNotFound):
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: "link not found"})
	case errors.Is(err, usecase.ErrForbidden):
		h.writeJSON(w, http.StatusForbidden, errorResponse{Error: "forbidden"})
	case errors.Is(err, usecase.ErrStoreUnavailable):
		h.logger.Warn("store unavailable", zap.Error(err))
		h.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service temporarily unavailable"})
	default:
		// ErrAliasSpaceExhausted и всё неизвестное
		h.logger.Error("request failed", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

// getUserIDFromRequest владелец, которого положил auth middleware
func (h *Handler) getUserIDFromRequest(r *http.Request) (string, bool) {
	return middleware.GetUserIDFromContext(r.Context())
}

// clickMeta данные клиента для журнала переходов
func clickMeta(r *http.Request) model.ClickMeta {
	return model.ClickMeta{
		RemoteAddress: middleware.ClientAddress(r),
		UserAgent:     r.UserAgent(),
		Referral:      r.Referer(),
	}
}
