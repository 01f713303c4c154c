package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avc-dev/snipit/internal/model"
	"github.com/avc-dev/snipit/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRedirect_Success(t *testing.T) {
	// Arrange
	h, mockUsecase := newTestHandler(t)
	mockUsecase.EXPECT().
		Resolve(mock.Anything, "abc12345", model.ClickMeta{RemoteAddress: "1.2.3.4", UserAgent: "curl/8.0"}).
		Return("https://example.com/page", nil).
		Once()

	req := httptest.NewRequest(http.MethodGet, "/abc12345", nil)
	req.RemoteAddr = "1.2.3.4:5555"
	req.Header.Set("User-Agent", "curl/8.0")
	req = withURLParam(req, "code", "abc12345")
	w := httptest.NewRecorder()

	// Act
	h.Redirect(w, req)

	// Assert
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "https://example.com/page", w.Header().Get("Location"))
}

func TestRedirect_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "Unknown code", err: usecase.ErrLinkNotFound, wantStatus: http.StatusNotFound},
		{name: "Store down", err: usecase.ErrStoreUnavailable, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			h, mockUsecase := newTestHandler(t)
			mockUsecase.EXPECT().Resolve(mock.Anything, "missing", mock.Anything).Return("", tt.err).Once()

			req := withURLParam(httptest.NewRequest(http.MethodGet, "/missing", nil), "code", "missing")
			w := httptest.NewRecorder()

			// Act
			h.Redirect(w, req)

			// Assert
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Empty(t, w.Header().Get("Location"))
		})
	}
}
