package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/avc-dev/snipit/internal/model"
	"github.com/avc-dev/snipit/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestShortenLink_Success(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		requestedCode string
		wantDest      string
		wantCode      model.Code
	}{
		{
			name:     "Plain URL",
			input:    "https://example.com",
			wantDest: "https://example.com",
		},
		{
			name:     "URL with spaces and quotes",
			input:    `  "https://example.com/path?q=1"  `,
			wantDest: "https://example.com/path?q=1",
		},
		{
			name:          "Requested code",
			input:         "https://example.com",
			requestedCode: "promo",
			wantDest:      "https://example.com",
			wantCode:      "promo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			u, _, mockService := newMockedUsecase(t)
			code := tt.wantCode
			if code == "" {
				code = "abc12345"
			}

			mockService.EXPECT().
				Create(mock.Anything, "owner", tt.wantDest, tt.wantCode).
				Return(model.Link{ID: 1, OwnerID: "owner", Destination: tt.wantDest, Code: code}, nil).
				Once()

			// Act
			result, err := u.ShortenLink(context.Background(), "owner", tt.input, tt.requestedCode)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, code, result.Code)
			assert.Equal(t, "http://localhost:8080/"+code.String(), result.ShortURL)
			assert.Zero(t, result.ClickCount)
		})
	}
}

func TestShortenLink_ValidationErrors(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		requestedCode string
		field         string
	}{
		{name: "Empty URL", input: "", field: "url"},
		{name: "Only spaces", input: "   ", field: "url"},
		{name: "Only quotes", input: `""`, field: "url"},
		{name: "No scheme", input: "example.com", field: "url"},
		{name: "No host", input: "https://", field: "url"},
		{name: "Too long", input: "https://example.com/" + strings.Repeat("a", model.MaxDestinationLength), field: "url"},
		{name: "Code with dash", input: "https://example.com", requestedCode: "my-code", field: "code"},
		{name: "Code too long", input: "https://example.com", requestedCode: strings.Repeat("a", model.MaxCodeLength+1), field: "code"},
		{name: "Code with unicode", input: "https://example.com", requestedCode: "код", field: "code"},
		{name: "Invalid UTF-8 URL", input: "https://example.com/\xff\xfe", field: "url"},
		{name: "Reserved code ping", input: "https://example.com", requestedCode: "ping", field: "code"},
		{name: "Reserved code api", input: "https://example.com", requestedCode: "api", field: "code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange: сервис не должен вызываться
			u, _, _ := newMockedUsecase(t)

			// Act
			_, err := u.ShortenLink(context.Background(), "owner", tt.input, tt.requestedCode)

			// Assert
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestShortenLink_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantErr    error
	}{
		{
			name:       "Code taken",
			serviceErr: fmt.Errorf("code promo: %w", service.ErrCodeTaken),
			wantErr:    ErrDuplicateCode,
		},
		{
			name:       "Retries exhausted",
			serviceErr: fmt.Errorf("after 10 attempts: %w", service.ErrMaxRetriesExceeded),
			wantErr:    ErrAliasSpaceExhausted,
		},
		{
			name:       "Store down",
			serviceErr: errors.New("connection refused"),
			wantErr:    ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			u, _, mockService := newMockedUsecase(t)
			mockService.EXPECT().
				Create(mock.Anything, "owner", "https://example.com", mock.Anything).
				Return(model.Link{}, tt.serviceErr).
				Once()

			// Act
			_, err := u.ShortenLink(context.Background(), "owner", "https://example.com", "promo")

			// Assert
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestShortenLink_PassesStoreDeadline(t *testing.T) {
	// Arrange
	u, _, mockService := newMockedUsecase(t)
	mockService.EXPECT().
		Create(mock.Anything, "owner", "https://example.com", model.Code("")).
		RunAndReturn(func(ctx context.Context, _, _ string, _ model.Code) (model.Link, error) {
			_, ok := ctx.Deadline()
			assert.True(t, ok, "store calls must carry a deadline")
			return model.Link{Code: "abc"}, nil
		}).
		Once()

	// Act
	_, err := u.ShortenLink(context.Background(), "owner", "https://example.com", "")

	// Assert
	require.NoError(t, err)
}

func TestShortURLFor(t *testing.T) {
	t.Run("existing link", func(t *testing.T) {
		u, mockRepo, _ := newMockedUsecase(t)
		mockRepo.EXPECT().
			FindByCode(mock.Anything, model.Code("abc")).
			Return(model.Link{ID: 1, Code: "abc"}, nil).
			Once()

		shortURL, err := u.ShortURLFor(context.Background(), "abc")

		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080/abc", shortURL)
	})

	t.Run("invalid code skips store", func(t *testing.T) {
		u, _, _ := newMockedUsecase(t)

		_, err := u.ShortURLFor(context.Background(), "bad code")

		assert.ErrorIs(t, err, ErrLinkNotFound)
	})
}
