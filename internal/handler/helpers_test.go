package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/avc-dev/snipit/internal/middleware"
	"github.com/avc-dev/snipit/internal/mocks"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*Handler, *mocks.MockLinkUsecase) {
	t.Helper()

	mockUsecase := mocks.NewMockLinkUsecase(t)
	return New(mockUsecase, zap.NewNop(), nil, nil), mockUsecase
}

// withURLParam добавляет параметр маршрута chi
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// asUser кладёт владельца в контекст, как это делает auth middleware
func asUser(r *http.Request, userID string) *http.Request {
	return r.WithContext(middleware.WithUserID(r.Context(), userID))
}
