package service

import (
	"math/big"
)

// ints строит подсписок из значений int64
func ints(values ...int64) []*big.Int {
	result := make([]*big.Int, len(values))
	for i, v := range values {
		result[i] = big.NewInt(v)
	}
	return result
}

// decimal возвращает десятичное представление чисел для сравнения в тестах
func decimal(values []*big.Int) []string {
	result := make([]string, len(values))
	for i, v := range values {
		result[i] = v.String()
	}
	return result
}

func lists(rows ...[]*big.Int) [][]*big.Int {
	return rows
}
