// Package response содержит общие функции записи JSON ответов.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/InQaaaaGit/batchsum/internal/models"
)

const contentTypeJSON = "application/json"

// InternalErrorMessage единственное сообщение, которое клиент видит при внутренней ошибке
const InternalErrorMessage = "Internal server error"

// JSON записывает v в ответ с заданным кодом состояния
func JSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// Error записывает ответ вида {"detail": "..."}
func Error(w http.ResponseWriter, status int, detail string) error {
	return JSON(w, status, models.ErrorResponse{Detail: detail})
}
