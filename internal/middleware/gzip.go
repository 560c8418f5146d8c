package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/InQaaaaGit/batchsum/internal/response"
	"go.uber.org/zap"
)

// GzipMiddleware распаковывает сжатые тела запросов и сжимает ответы,
// если клиент указал gzip в Accept-Encoding
func GzipMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	writeError := func(w http.ResponseWriter, status int, detail string) {
		if err := response.Error(w, status, detail); err != nil {
			logger.Error("Error writing gzip error response", zap.Error(err))
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
				if r.Body == nil || r.Body == http.NoBody {
					writeError(w, http.StatusBadRequest, "Empty request body")
					return
				}

				gz, err := gzip.NewReader(r.Body)
				if err != nil {
					logger.Info("Invalid gzip request body", zap.Error(err))
					writeError(w, http.StatusBadRequest, "Invalid gzip body")
					return
				}
				defer func() {
					if err := gz.Close(); err != nil {
						logger.Error("Error closing gzip reader", zap.Error(err))
					}
				}()

				r.Body = gz
				r.Header.Del("Content-Encoding")
				r.Header.Del("Content-Length")
				r.ContentLength = -1
			}

			if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Content-Encoding", "gzip")
			w.Header().Add("Vary", "Accept-Encoding")
			gz := gzip.NewWriter(w)

			// При панике поток не закрывается: Close зафиксировал бы статус 200 с пустым телом
			completed := false
			defer func() {
				if !completed {
					return
				}
				if err := gz.Close(); err != nil {
					logger.Error("Error closing gzip writer", zap.Error(err))
				}
			}()

			next.ServeHTTP(gzipResponseWriter{Writer: gz, ResponseWriter: w}, r)
			completed = true
		})
	}
}

// gzipResponseWriter оборачивает http.ResponseWriter для сжатия ответа
type gzipResponseWriter struct {
	io.Writer
	http.ResponseWriter
}

// Write записывает данные в сжатый поток
func (w gzipResponseWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

// WriteHeader убирает Content-Length, который не соответствует сжатому телу
func (w gzipResponseWriter) WriteHeader(statusCode int) {
	w.ResponseWriter.Header().Del("Content-Length")
	w.ResponseWriter.WriteHeader(statusCode)
}
