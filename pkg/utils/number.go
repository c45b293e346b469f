package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// PercentOf retorna part/total*100, ou 0 quando total é zero
func PercentOf(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}

// Float64Ptr retorna um ponteiro para o valor informado
func Float64Ptr(f float64) *float64 {
	return &f
}
