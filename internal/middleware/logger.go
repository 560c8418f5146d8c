// Package middleware содержит HTTP middleware сервиса: логирование запросов,
// перехват паник и gzip сжатие.
package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// LoggerMiddleware создает middleware для логирования запросов и ответов
func LoggerMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Обертка позволяет узнать статус и размер ответа
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			logger.Info("Request processed",
				zap.String("request_id", chimiddleware.GetReqID(r.Context())),
				zap.String("path", r.URL.Path),
				zap.String("method", r.Method),
				zap.Duration("latency", time.Since(start)),
				zap.Int("status", ww.Status()),
				zap.Int("size", ww.BytesWritten()),
			)
		})
	}
}
