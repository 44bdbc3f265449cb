package domain

import (
	"github.com/Shivarajkushals/Dashboard/pkg/utils"
)

// DerivedMetrics agrupa as métricas calculadas a partir das somas acumuladas
type DerivedMetrics struct {
	GrowthPercent       float64
	AvgSellingPrice     float64
	UnitsPerTransaction float64
}

// CalculateDerivedMetrics calcula crescimento, preço médio e unidades por transação.
// Denominadores não positivos resultam em 0.
func CalculateDerivedMetrics(currentSales, lastYearSales, totalQty float64, totalBills int64) DerivedMetrics {
	return DerivedMetrics{
		GrowthPercent:       GrowthPercent(currentSales, lastYearSales),
		AvgSellingPrice:     AvgSellingPrice(currentSales, totalQty),
		UnitsPerTransaction: UnitsPerTransaction(totalQty, totalBills),
	}
}

func GrowthPercent(currentSales, lastYearSales float64) float64 {
	if !(lastYearSales > 0) {
		return 0
	}

	return utils.SafeRound(((currentSales - lastYearSales) / lastYearSales) * 100)
}

func AvgSellingPrice(currentSales, totalQty float64) float64 {
	if !(totalQty > 0) {
		return 0
	}

	return utils.SafeRound(currentSales / totalQty)
}

func UnitsPerTransaction(totalQty float64, totalBills int64) float64 {
	if totalBills <= 0 {
		return 0
	}

	return utils.SafeRound(totalQty / float64(totalBills))
}
