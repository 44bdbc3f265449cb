package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shivarajkushals/Dashboard/internal/domain"
)

func day(value string) time.Time {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestReduceStoreSummaries(t *testing.T) {
	current := domain.DateWindow{From: "2024-01-01", To: "2024-01-31"}

	t.Run("separa período atual e ano anterior", func(t *testing.T) {
		rows := []domain.StoreSalesRow{
			{Store: "StoreA", BillDate: day("2024-01-10"), Sales: 100, Qty: 2, Bills: 1, OnlineSales: 100},
			{Store: "StoreA", BillDate: day("2023-01-10"), Sales: 50, Qty: 9, Bills: 7, OfflineSales: 50},
		}

		summaries := ReduceStoreSummaries(rows, current)

		require.Len(t, summaries, 1)
		assert.Equal(t, domain.StoreSummary{
			Store:               "StoreA",
			CurrentSales:        100,
			LastYearSales:       50,
			GrowthPercent:       100,
			TotalQty:            2,
			TotalBills:          1,
			AvgSellingPrice:     50,
			UnitsPerTransaction: 2,
			OnlineSalesAmount:   100,
			OfflineSalesAmount:  0,
		}, summaries[0])
	})

	t.Run("bordas do período contam como atual", func(t *testing.T) {
		rows := []domain.StoreSalesRow{
			{Store: "StoreA", BillDate: day("2024-01-01"), Sales: 10, Qty: 1, Bills: 1},
			{Store: "StoreA", BillDate: day("2024-01-31"), Sales: 20, Qty: 1, Bills: 1},
		}

		summaries := ReduceStoreSummaries(rows, current)

		require.Len(t, summaries, 1)
		assert.Equal(t, 30.0, summaries[0].CurrentSales)
		assert.Equal(t, 0.0, summaries[0].LastYearSales)
		assert.Equal(t, 0.0, summaries[0].GrowthPercent)
	})

	t.Run("descarta lojas apenas com vendas do ano anterior", func(t *testing.T) {
		rows := []domain.StoreSalesRow{
			{Store: "StoreB", BillDate: day("2023-01-05"), Sales: 80, Qty: 4, Bills: 2},
		}

		summaries := ReduceStoreSummaries(rows, current)

		assert.NotNil(t, summaries)
		assert.Empty(t, summaries)
	})

	t.Run("ordena por vendas atuais e depois por nome", func(t *testing.T) {
		rows := []domain.StoreSalesRow{
			{Store: "Beta", BillDate: day("2024-01-02"), Sales: 10, Qty: 1, Bills: 1},
			{Store: "Gamma", BillDate: day("2024-01-02"), Sales: 30, Qty: 1, Bills: 1},
			{Store: "Alpha", BillDate: day("2024-01-02"), Sales: 10, Qty: 1, Bills: 1},
		}

		summaries := ReduceStoreSummaries(rows, current)

		require.Len(t, summaries, 3)
		assert.Equal(t, "Gamma", summaries[0].Store)
		assert.Equal(t, "Alpha", summaries[1].Store)
		assert.Equal(t, "Beta", summaries[2].Store)
	})

	t.Run("sem linhas", func(t *testing.T) {
		summaries := ReduceStoreSummaries(nil, current)
		assert.NotNil(t, summaries)
		assert.Empty(t, summaries)
	})
}

func TestReduceShopTypeSummaries(t *testing.T) {
	current := domain.DateWindow{From: "2024-01-01", To: "2024-01-31"}

	t.Run("conta lojas distintas do período atual", func(t *testing.T) {
		rows := []domain.ShopTypeSalesRow{
			{ShopType: "Mall", BillDate: day("2024-01-03"), Store: "StoreA", Sales: 100, Qty: 4, Bills: 2},
			{ShopType: "Mall", BillDate: day("2024-01-04"), Store: "StoreA", Sales: 50, Qty: 2, Bills: 1},
			{ShopType: "Mall", BillDate: day("2024-01-05"), Store: "StoreB", Sales: 50, Qty: 2, Bills: 1},
			{ShopType: "Mall", BillDate: day("2023-01-05"), Store: "StoreC", Sales: 100, Qty: 1, Bills: 1},
		}

		summaries := ReduceShopTypeSummaries(rows, current)

		require.Len(t, summaries, 1)
		got := summaries[0]
		assert.Equal(t, "Mall", got.ShopType)
		assert.Equal(t, 200.0, got.CurrentSales)
		assert.Equal(t, 100.0, got.LastYearSales)
		assert.Equal(t, 100.0, got.GrowthPercent)
		assert.Equal(t, 8.0, got.TotalQty)
		assert.Equal(t, int64(4), got.TotalBills)
		assert.Equal(t, 25.0, got.AvgSellingPrice)
		assert.Equal(t, 2.0, got.UnitsPerTransaction)
		assert.Equal(t, 2, got.StoreCount)
	})

	t.Run("tipo vazio ou desconhecido é excluído", func(t *testing.T) {
		rows := []domain.ShopTypeSalesRow{
			{ShopType: "", BillDate: day("2024-01-03"), Store: "StoreA", Sales: 100, Qty: 1, Bills: 1},
			{ShopType: "  ", BillDate: day("2024-01-03"), Store: "StoreA", Sales: 100, Qty: 1, Bills: 1},
			{ShopType: "Unknown", BillDate: day("2024-01-03"), Store: "StoreB", Sales: 100, Qty: 1, Bills: 1},
		}

		summaries := ReduceShopTypeSummaries(rows, current)

		assert.NotNil(t, summaries)
		assert.Empty(t, summaries)
	})
}

func TestBuildMonthMatrix(t *testing.T) {
	t.Run("alinha lojas ao eixo de meses e preenche zeros", func(t *testing.T) {
		rows := []domain.MonthSalesRow{
			{Store: "StoreB", Month: "2024-02", Sales: 20, Qty: 2},
			{Store: "StoreA", Month: "2024-01", Sales: 10, Qty: 1},
			{Store: "StoreA", Month: "2024-03", Sales: 30, Qty: 3},
		}

		matrix := BuildMonthMatrix(rows)

		assert.Equal(t, []string{"2024-01", "2024-02", "2024-03"}, matrix.Months)
		require.Len(t, matrix.Stores, 2)

		assert.Equal(t, "StoreA", matrix.Stores[0].Store)
		assert.Equal(t, []domain.MonthCell{{Sales: 10, Qty: 1}, {}, {Sales: 30, Qty: 3}}, matrix.Stores[0].Data)

		assert.Equal(t, "StoreB", matrix.Stores[1].Store)
		assert.Equal(t, []domain.MonthCell{{}, {Sales: 20, Qty: 2}, {}}, matrix.Stores[1].Data)

		for _, row := range matrix.Stores {
			assert.Len(t, row.Data, len(matrix.Months))
		}
	})

	t.Run("linhas repetidas são somadas", func(t *testing.T) {
		rows := []domain.MonthSalesRow{
			{Store: "StoreA", Month: "2024-01", Sales: 10, Qty: 1},
			{Store: "StoreA", Month: "2024-01", Sales: 5, Qty: 2},
		}

		matrix := BuildMonthMatrix(rows)

		require.Len(t, matrix.Stores, 1)
		assert.Equal(t, []domain.MonthCell{{Sales: 15, Qty: 3}}, matrix.Stores[0].Data)
	})

	t.Run("sem dados", func(t *testing.T) {
		matrix := BuildMonthMatrix(nil)

		raw, err := json.Marshal(matrix)
		require.NoError(t, err)
		assert.JSONEq(t, `{"months":[],"stores":[]}`, string(raw))
	})
}
