package reporting

import (
	"sort"
	"strings"

	"github.com/Shivarajkushals/Dashboard/internal/domain"
)

const unknownShopType = "Unknown"

type storeAccumulator struct {
	currentSales  float64
	lastYearSales float64
	qty           float64
	bills         int64
	onlineSales   float64
	offlineSales  float64
}

// ReduceStoreSummaries agrupa as linhas diárias por loja separando período atual e ano anterior.
// Qtd, bills e online/offline consideram apenas o período atual.
func ReduceStoreSummaries(rows []domain.StoreSalesRow, current domain.DateWindow) []domain.StoreSummary {
	accumulators := make(map[string]*storeAccumulator)

	for _, row := range rows {
		acc, ok := accumulators[row.Store]
		if !ok {
			acc = &storeAccumulator{}
			accumulators[row.Store] = acc
		}

		if current.Contains(row.BillDate) {
			acc.currentSales += row.Sales
			acc.qty += row.Qty
			acc.bills += row.Bills
			acc.onlineSales += row.OnlineSales
			acc.offlineSales += row.OfflineSales
		} else {
			acc.lastYearSales += row.Sales
		}
	}

	summaries := make([]domain.StoreSummary, 0, len(accumulators))
	for store, acc := range accumulators {
		if acc.currentSales == 0 {
			continue
		}

		derived := domain.CalculateDerivedMetrics(acc.currentSales, acc.lastYearSales, acc.qty, acc.bills)
		summaries = append(summaries, domain.StoreSummary{
			Store:               store,
			CurrentSales:        acc.currentSales,
			LastYearSales:       acc.lastYearSales,
			GrowthPercent:       derived.GrowthPercent,
			TotalQty:            acc.qty,
			TotalBills:          acc.bills,
			AvgSellingPrice:     derived.AvgSellingPrice,
			UnitsPerTransaction: derived.UnitsPerTransaction,
			OnlineSalesAmount:   acc.onlineSales,
			OfflineSalesAmount:  acc.offlineSales,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].CurrentSales != summaries[j].CurrentSales {
			return summaries[i].CurrentSales > summaries[j].CurrentSales
		}
		return summaries[i].Store < summaries[j].Store
	})

	return summaries
}

type shopTypeAccumulator struct {
	currentSales  float64
	lastYearSales float64
	qty           float64
	bills         int64
	stores        map[string]struct{}
}

// ReduceShopTypeSummaries agrupa por tipo de loja. Tipos vazios ou "Unknown" são descartados
// e store_count conta lojas distintas com venda no período atual.
func ReduceShopTypeSummaries(rows []domain.ShopTypeSalesRow, current domain.DateWindow) []domain.ShopTypeSummary {
	accumulators := make(map[string]*shopTypeAccumulator)

	for _, row := range rows {
		shopType := strings.TrimSpace(row.ShopType)
		if shopType == "" || shopType == unknownShopType {
			continue
		}

		acc, ok := accumulators[shopType]
		if !ok {
			acc = &shopTypeAccumulator{stores: make(map[string]struct{})}
			accumulators[shopType] = acc
		}

		if current.Contains(row.BillDate) {
			acc.currentSales += row.Sales
			acc.qty += row.Qty
			acc.bills += row.Bills
			if row.Store != "" {
				acc.stores[row.Store] = struct{}{}
			}
		} else {
			acc.lastYearSales += row.Sales
		}
	}

	summaries := make([]domain.ShopTypeSummary, 0, len(accumulators))
	for shopType, acc := range accumulators {
		if acc.currentSales == 0 {
			continue
		}

		derived := domain.CalculateDerivedMetrics(acc.currentSales, acc.lastYearSales, acc.qty, acc.bills)
		summaries = append(summaries, domain.ShopTypeSummary{
			ShopType:            shopType,
			CurrentSales:        acc.currentSales,
			LastYearSales:       acc.lastYearSales,
			GrowthPercent:       derived.GrowthPercent,
			TotalQty:            acc.qty,
			TotalBills:          acc.bills,
			AvgSellingPrice:     derived.AvgSellingPrice,
			UnitsPerTransaction: derived.UnitsPerTransaction,
			StoreCount:          len(acc.stores),
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].CurrentSales != summaries[j].CurrentSales {
			return summaries[i].CurrentSales > summaries[j].CurrentSales
		}
		return summaries[i].ShopType < summaries[j].ShopType
	})

	return summaries
}

// BuildMonthMatrix monta o eixo ordenado de meses e alinha cada loja a ele.
// Meses sem venda ficam zerados e linhas repetidas de loja/mês são somadas.
func BuildMonthMatrix(rows []domain.MonthSalesRow) domain.MonthMatrix {
	monthSet := make(map[string]struct{})
	cells := make(map[string]map[string]domain.MonthCell)

	for _, row := range rows {
		monthSet[row.Month] = struct{}{}

		storeCells, ok := cells[row.Store]
		if !ok {
			storeCells = make(map[string]domain.MonthCell)
			cells[row.Store] = storeCells
		}

		cell := storeCells[row.Month]
		cell.Sales += row.Sales
		cell.Qty += row.Qty
		storeCells[row.Month] = cell
	}

	months := make([]string, 0, len(monthSet))
	for month := range monthSet {
		months = append(months, month)
	}
	sort.Strings(months)

	stores := make([]string, 0, len(cells))
	for store := range cells {
		stores = append(stores, store)
	}
	sort.Strings(stores)

	matrix := domain.MonthMatrix{
		Months: months,
		Stores: make([]domain.StoreMonthRow, 0, len(stores)),
	}

	for _, store := range stores {
		data := make([]domain.MonthCell, len(months))
		for i, month := range months {
			data[i] = cells[store][month]
		}
		matrix.Stores = append(matrix.Stores, domain.StoreMonthRow{Store: store, Data: data})
	}

	return matrix
}

func storeItems(values []string) []domain.StoreItem {
	items := make([]domain.StoreItem, 0, len(values))
	for _, value := range values {
		items = append(items, domain.StoreItem{Store: value})
	}
	return items
}

func tranTypeItems(values []string) []domain.TranTypeItem {
	items := make([]domain.TranTypeItem, 0, len(values))
	for _, value := range values {
		items = append(items, domain.TranTypeItem{TranType: value})
	}
	return items
}

func shopTypeItems(values []string) []domain.ShopTypeItem {
	items := make([]domain.ShopTypeItem, 0, len(values))
	for _, value := range values {
		items = append(items, domain.ShopTypeItem{ShopType: value})
	}
	return items
}
