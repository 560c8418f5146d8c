package service

import (
	"context"
	"fmt"
	"math/big"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ReduceFunc сворачивает один подсписок в одно значение
type ReduceFunc func(ctx context.Context, values []*big.Int) (*big.Int, error)

// SumInts складывает элементы подсписка без переполнения. Сумма пустого подсписка равна 0.
func SumInts(_ context.Context, values []*big.Int) (*big.Int, error) {
	total := new(big.Int)
	for _, v := range values {
		total.Add(total, v)
	}
	return total, nil
}

// Result содержит упорядоченные суммы и время работы пула
type Result struct {
	Sums        []*big.Int
	StartedAt   time.Time
	CompletedAt time.Time
}

// Executor раздает подсписки воркерам и собирает результаты в исходном порядке.
// Пул воркеров создается на каждый вызов Run и освобождается по его завершении.
type Executor struct {
	workers int
	reduce  ReduceFunc
	logger  *zap.Logger
	now     func() time.Time
}

// NewExecutor создает исполнитель. workers <= 0 означает runtime.NumCPU(),
// nil reduce означает SumInts.
func NewExecutor(workers int, reduce ReduceFunc, logger *zap.Logger) *Executor {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if reduce == nil {
		reduce = SumInts
	}
	return &Executor{
		workers: workers,
		reduce:  reduce,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Workers возвращает размер пула
func (e *Executor) Workers() int {
	return e.workers
}

// Run суммирует каждый подсписок в отдельном воркере.
// Отмена контекста вызывающего игнорируется: пакет либо обрабатывается целиком,
// либо завершается ошибкой, оборачивающей ErrWorkerFailed. Частичных результатов нет.
func (e *Executor) Run(ctx context.Context, lists [][]*big.Int) (*Result, error) {
	startedAt := e.now()

	sums := make([]*big.Int, len(lists))
	g, gctx := errgroup.WithContext(context.WithoutCancel(ctx))
	g.SetLimit(e.workers)

	for i, list := range lists {
		i, list := i, list
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%w: sublist %d panicked: %v", ErrWorkerFailed, i, r)
				}
			}()

			// Другой воркер уже упал, результат пакета все равно будет отброшен
			if ctxErr := gctx.Err(); ctxErr != nil {
				return ctxErr
			}

			sum, err := e.reduce(gctx, list)
			if err != nil {
				return fmt.Errorf("%w: sublist %d: %w", ErrWorkerFailed, i, err)
			}
			sums[i] = sum
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	completedAt := e.now()
	e.logger.Debug("Batch summed",
		zap.Int("sublists", len(lists)),
		zap.Int("workers", e.workers),
		zap.Duration("elapsed", completedAt.Sub(startedAt)),
	)

	return &Result{
		Sums:        sums,
		StartedAt:   startedAt,
		CompletedAt: completedAt,
	}, nil
}
