package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SafeRound arredonda para duas casas e converte NaN e infinitos em 0
func SafeRound(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	rounded := RoundWithTwoDecimalPlace(f)
	if math.IsInf(rounded, 0) {
		// f*100 estourou; valores dessa magnitude não têm casas decimais
		return f
	}

	return rounded
}
