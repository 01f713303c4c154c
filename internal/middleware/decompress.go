package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// gzipBody распаковывает тело запроса и закрывает исходный поток
type gzipBody struct {
	source io.ReadCloser
	reader *gzip.Reader
}

func newGzipBody(source io.ReadCloser) (*gzipBody, error) {
	reader, err := gzip.NewReader(source)
	if err != nil {
		return nil, err
	}
	return &gzipBody{source: source, reader: reader}, nil
}

func (b *gzipBody) Read(p []byte) (int, error) {
	return b.reader.Read(p)
}

func (b *gzipBody) Close() error {
	if err := b.reader.Close(); err != nil {
		return err
	}
	return b.source.Close()
}

// Decompress принимает тела запросов с Content-Encoding: gzip.
// Сжатием ответов занимается chi middleware.Compress.
func Decompress(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
				next.ServeHTTP(w, r)
				return
			}

			body, err := newGzipBody(r.Body)
			if err != nil {
				logger.Warn("failed to decompress request body",
					zap.Error(err),
					zap.String("uri", r.RequestURI),
					zap.String("method", r.Method),
				)
				http.Error(w, "failed to decompress request body", http.StatusBadRequest)
				return
			}
			defer func() {
				if err := body.Close(); err != nil {
					logger.Warn("failed to close request body", zap.Error(err), zap.String("uri", r.RequestURI))
				}
			}()

			r.Body = body
			r.Header.Del("Content-Encoding")
			r.ContentLength = -1

			next.ServeHTTP(w, r)
		})
	}
}
