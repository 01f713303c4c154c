package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// compressString сжимает строку с помощью gzip
func compressString(t *testing.T, s string) []byte {
	t.Helper()

	var buf bytes.Buffer
	gzipWriter := gzip.NewWriter(&buf)
	_, err := gzipWriter.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, gzipWriter.Close())

	return buf.Bytes()
}

// echoHandler возвращает тело запроса как есть
func echoHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		_, _ = w.Write(body)
	})
}

func TestDecompress(t *testing.T) {
	tests := []struct {
		name       string
		encoding   string
		body       []byte
		wantStatus int
		wantBody   string
	}{
		{
			name:       "gzip body",
			encoding:   "gzip",
			body:       compressString(t, "https://example.com"),
			wantStatus: http.StatusOK,
			wantBody:   "https://example.com",
		},
		{
			name:       "plain body",
			body:       []byte("https://example.com"),
			wantStatus: http.StatusOK,
			wantBody:   "https://example.com",
		},
		{
			name:       "broken gzip",
			encoding:   "gzip",
			body:       []byte("definitely not gzip"),
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			handler := Decompress(zap.NewNop())(echoHandler(t))
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(tt.body))
			if tt.encoding != "" {
				req.Header.Set("Content-Encoding", tt.encoding)
			}
			w := httptest.NewRecorder()

			// Act
			handler.ServeHTTP(w, req)

			// Assert
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, strings.TrimSpace(w.Body.String()))
			}
		})
	}
}
