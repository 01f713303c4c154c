package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avc-dev/snipit/internal/model"
	"github.com/avc-dev/snipit/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetUserLinks(t *testing.T) {
	tests := []struct {
		name       string
		links      []model.ShortLink
		err        error
		wantStatus int
	}{
		{name: "Has links", links: []model.ShortLink{shortLink("a1"), shortLink("b2")}, wantStatus: http.StatusOK},
		{name: "No links", links: []model.ShortLink{}, wantStatus: http.StatusNoContent},
		{name: "Store down", err: usecase.ErrStoreUnavailable, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			h, mockUsecase := newTestHandler(t)
			mockUsecase.EXPECT().OwnerLinks(mock.Anything, "owner").Return(tt.links, tt.err).Once()

			req := asUser(httptest.NewRequest(http.MethodGet, "/api/user/links", nil), "owner")
			w := httptest.NewRecorder()

			// Act
			h.GetUserLinks(w, req)

			// Assert
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				var got []model.ShortLink
				require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
				assert.Len(t, got, len(tt.links))
				assert.Equal(t, "http://localhost:8080/a1", got[0].ShortURL)
			}
		})
	}
}

func TestGetUserLinks_NoUser(t *testing.T) {
	h, _ := newTestHandler(t)
	w := httptest.NewRecorder()

	h.GetUserLinks(w, httptest.NewRequest(http.MethodGet, "/api/user/links", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetUserSummary(t *testing.T) {
	// Arrange
	h, mockUsecase := newTestHandler(t)
	summaries := []model.LinkSummary{{
		Link:         model.Link{ID: 1, Code: "a1", ClickCount: 2},
		ClickCount:   2,
		RecentClicks: []model.Click{{ID: 2, LinkID: 1}, {ID: 1, LinkID: 1}},
	}}
	mockUsecase.EXPECT().Summary(mock.Anything, "owner").Return(summaries, nil).Once()

	req := asUser(httptest.NewRequest(http.MethodGet, "/api/user/links/summary", nil), "owner")
	w := httptest.NewRecorder()

	// Act
	h.GetUserSummary(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	var got []model.LinkSummary
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ClickCount)
	assert.Len(t, got[0].RecentClicks, 2)
}
