package service

import (
	"bytes"
	"encoding/json"
	"math/big"
)

// Validate проверяет пакет и возвращает его элементы в виде целых чисел той же формы.
// Размер чисел не ограничен. Пустой пакет дает ErrEmptyPayload,
// первый нецелый элемент дает *InvalidElementError.
func Validate(payload [][]json.RawMessage) ([][]*big.Int, error) {
	if len(payload) == 0 {
		return nil, ErrEmptyPayload
	}

	lists := make([][]*big.Int, len(payload))
	for i, row := range payload {
		values, err := ParseIntegers(row)
		if err != nil {
			return nil, err
		}
		lists[i] = values
	}
	return lists, nil
}

// ParseIntegers разбирает последовательность JSON значений как целые числа.
// Целым считается только целочисленный литерал JSON: 2.5, 1e3, строки и null отклоняются.
func ParseIntegers(row []json.RawMessage) ([]*big.Int, error) {
	values := make([]*big.Int, len(row))
	for j, raw := range row {
		v, ok := new(big.Int).SetString(string(bytes.TrimSpace(raw)), 10)
		if !ok {
			return nil, &InvalidElementError{Value: displayValue(raw)}
		}
		values[j] = v
	}
	return values, nil
}

// displayValue возвращает строку без кавычек для JSON строк и исходный текст для остального
func displayValue(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return s
		}
	}
	return string(trimmed)
}
