package middleware

import (
	"net/http"

	"github.com/InQaaaaGit/batchsum/internal/response"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// RecoverMiddleware перехватывает панику обработчика, пишет ее в журнал
// и отвечает клиенту 500 без подробностей
func RecoverMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.Error("Panic while handling request",
					zap.String("request_id", chimiddleware.GetReqID(r.Context())),
					zap.String("path", r.URL.Path),
					zap.Any("panic", rec),
					zap.Stack("stack"),
				)
				if err := response.Error(w, http.StatusInternalServerError, response.InternalErrorMessage); err != nil {
					logger.Error("Error writing panic response", zap.Error(err))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
