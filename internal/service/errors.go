package service

import (
	"errors"
	"fmt"
)

// ErrEmptyPayload возвращается, когда пакет не содержит ни одного подсписка
var ErrEmptyPayload = errors.New("Payload is empty")

// ErrWorkerFailed оборачивает любую ошибку воркера при суммировании
var ErrWorkerFailed = errors.New("worker failed")

// InvalidElementError возвращается, когда элемент подсписка не является целым числом
type InvalidElementError struct {
	Value string // Некорректное значение в том виде, в каком оно пришло от клиента
}

func (e *InvalidElementError) Error() string {
	return fmt.Sprintf("Invalid payload: %s is not an integer", e.Value)
}
