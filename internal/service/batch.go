// Package service содержит бизнес-логику пакетного суммирования:
// валидацию запроса, параллельное суммирование и сборку ответа.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/InQaaaaGit/batchsum/internal/config"
	"github.com/InQaaaaGit/batchsum/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BatchService определяет интерфейс сервиса суммирования
type BatchService interface {
	ProcessBatch(ctx context.Context, req models.BatchRequest) (*models.BatchResponse, error)
	AddNumbers(ctx context.Context, numbers []json.RawMessage) ([]*big.Int, error)
}

// BatchServiceImpl реализует BatchService
type BatchServiceImpl struct {
	executor *Executor
	logger   *zap.Logger
	newID    func() string
}

// NewBatchService создает сервис с пулом воркеров, размер которого задан в конфигурации
func NewBatchService(cfg *config.Config, logger *zap.Logger) *BatchServiceImpl {
	return NewBatchServiceWithExecutor(NewExecutor(cfg.MaxWorkers, SumInts, logger), logger)
}

// NewBatchServiceWithExecutor создает сервис поверх готового исполнителя
func NewBatchServiceWithExecutor(executor *Executor, logger *zap.Logger) *BatchServiceImpl {
	return &BatchServiceImpl{
		executor: executor,
		logger:   logger,
		newID:    uuid.NewString,
	}
}

// ProcessBatch валидирует пакет, суммирует подсписки параллельно и собирает ответ.
// Пустой batchid заменяется сгенерированным UUID.
func (s *BatchServiceImpl) ProcessBatch(ctx context.Context, req models.BatchRequest) (*models.BatchResponse, error) {
	lists, err := Validate(req.Payload)
	if err != nil {
		return nil, err
	}

	batchID := req.BatchID
	if batchID == "" {
		batchID = s.newID()
		s.logger.Info("Generated batch id", zap.String("batchid", batchID))
	}

	result, err := s.executor.Run(ctx, lists)
	if err != nil {
		return nil, fmt.Errorf("batch %s: %w", batchID, err)
	}

	return &models.BatchResponse{
		BatchID:     batchID,
		Response:    result.Sums,
		Status:      models.StatusComplete,
		StartedAt:   result.StartedAt,
		CompletedAt: result.CompletedAt,
	}, nil
}

// AddNumbers возвращает одноэлементный срез с суммой чисел
func (s *BatchServiceImpl) AddNumbers(ctx context.Context, numbers []json.RawMessage) ([]*big.Int, error) {
	values, err := ParseIntegers(numbers)
	if err != nil {
		return nil, err
	}

	sum, err := SumInts(ctx, values)
	if err != nil {
		return nil, err
	}
	return []*big.Int{sum}, nil
}
