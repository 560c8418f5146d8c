// Package models содержит структуры запросов и ответов HTTP API.
package models

import (
	"encoding/json"
	"math/big"
	"time"
)

// BatchStatus описывает итоговое состояние обработки пакета
type BatchStatus string

// StatusComplete единственное моделируемое состояние: пакет обработан целиком
const StatusComplete BatchStatus = "complete"

// BatchRequest представляет запрос на пакетное суммирование.
// Элементы payload хранятся как сырые JSON значения, чтобы валидатор
// мог назвать некорректный элемент в сообщении об ошибке.
type BatchRequest struct {
	BatchID string              `json:"batchid"`
	Payload [][]json.RawMessage `json:"payload"`
}

// BatchResponse представляет результат обработки пакета.
// Суммы сериализуются как JSON числа произвольной длины.
type BatchResponse struct {
	BatchID     string      `json:"batchid"`
	Response    []*big.Int  `json:"response"`
	Status      BatchStatus `json:"status"`
	StartedAt   time.Time   `json:"started_at"`
	CompletedAt time.Time   `json:"completed_at"`
}

// ErrorResponse тело любого ответа с кодом ошибки
type ErrorResponse struct {
	Detail string `json:"detail"`
}
