// Package handler содержит HTTP обработчики сервиса пакетного суммирования.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/InQaaaaGit/batchsum/internal/config"
	"github.com/InQaaaaGit/batchsum/internal/models"
	"github.com/InQaaaaGit/batchsum/internal/response"
	"github.com/InQaaaaGit/batchsum/internal/service"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const (
	contentTypeJSON       = "application/json"
	invalidJSONMessage    = "Invalid JSON format"
	invalidContentMessage = "Invalid Content-Type"
	readBodyMessage       = "Unable to read request body"
	bodyTooLargeMessage   = "Request body too large"
)

// Handler обрабатывает HTTP запросы к сервису суммирования
type Handler struct {
	service service.BatchService
	cfg     *config.Config
	logger  *zap.Logger
}

// NewHandler создает обработчик поверх сервиса
func NewHandler(service service.BatchService, cfg *config.Config, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		cfg:     cfg,
		logger:  logger,
	}
}

// HandleAddNumbers обрабатывает POST /add_numbers: тело - массив целых чисел,
// ответ - массив из одного элемента с их суммой
func (h *Handler) HandleAddNumbers(w http.ResponseWriter, r *http.Request) {
	var numbers []json.RawMessage
	if !h.decodeJSON(w, r, &numbers) {
		return
	}

	sum, err := h.service.AddNumbers(r.Context(), numbers)
	if err != nil {
		h.writeServiceError(w, r, err, "Error adding numbers")
		return
	}

	h.writeJSON(w, http.StatusOK, sum)
}

// HandleProcessBatch обрабатывает POST /process_batch
func (h *Handler) HandleProcessBatch(w http.ResponseWriter, r *http.Request) {
	var req models.BatchRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.ProcessBatch(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, err, "Error processing batch")
		return
	}

	h.logger.Info("Batch processed",
		zap.String("batchid", resp.BatchID),
		zap.Int("sublists", len(resp.Response)),
		zap.Duration("elapsed", resp.CompletedAt.Sub(resp.StartedAt)),
	)
	h.writeJSON(w, http.StatusOK, resp)
}

// decodeJSON читает тело запроса в dst. Синтаксически неверный JSON дает 400,
// JSON неподходящей формы дает 422. Возвращает false, если ответ уже записан.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	contentType := r.Header.Get("Content-Type")
	if contentType != "" && !strings.HasPrefix(contentType, contentTypeJSON) {
		h.writeError(w, http.StatusBadRequest, invalidContentMessage)
		return false
	}

	if h.cfg.MaxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxBodyBytes)
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(w, http.StatusRequestEntityTooLarge, bodyTooLargeMessage)
			return false
		}
		h.writeError(w, http.StatusBadRequest, readBodyMessage)
		return false
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			h.logger.Error("Error closing request body", zap.Error(err))
		}
	}()

	if err := json.Unmarshal(body, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			h.writeError(w, http.StatusUnprocessableEntity, typeErrorDetail(typeErr))
			return false
		}
		h.writeError(w, http.StatusBadRequest, invalidJSONMessage)
		return false
	}
	return true
}

// writeServiceError переводит ошибку сервиса в код ответа.
// Подробности неклассифицированных ошибок остаются только в журнале.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	var invalid *service.InvalidElementError
	switch {
	case errors.Is(err, service.ErrEmptyPayload):
		h.writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &invalid):
		h.writeError(w, http.StatusUnprocessableEntity, invalid.Error())
	default:
		h.logger.Error(msg,
			zap.String("request_id", chimiddleware.GetReqID(r.Context())),
			zap.Error(err),
		)
		h.writeError(w, http.StatusInternalServerError, response.InternalErrorMessage)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, detail string) {
	if err := response.Error(w, status, detail); err != nil {
		h.logger.Error("Error writing error response", zap.Error(err))
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	if err := response.JSON(w, status, v); err != nil {
		h.logger.Error("Error writing response", zap.Error(err))
	}
}

// typeErrorDetail описывает несовпадение типа JSON значения с ожидаемым
func typeErrorDetail(err *json.UnmarshalTypeError) string {
	if err.Field == "" {
		return fmt.Sprintf("Invalid payload: unexpected %s", err.Value)
	}
	return fmt.Sprintf("Invalid payload: field %s must not be %s", err.Field, err.Value)
}
