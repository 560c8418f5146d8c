package handler

import (
	"net/http"

	"go.uber.org/zap"
)

// HandlePing отвечает на проверку доступности сервиса
func (h *Handler) HandlePing(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		h.logger.Error("Error writing ping response", zap.Error(err))
	}
}
