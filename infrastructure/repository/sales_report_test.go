package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shivarajkushals/Dashboard/infrastructure/database/postgres"
	"github.com/Shivarajkushals/Dashboard/internal/domain"
)

func newMockRepository(t *testing.T) (SalesReportRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewSalesReportRepository(&postgres.Connection{DB: db}, time.Second), mock
}

func day(s string) time.Time {
	d, _ := time.Parse(time.DateOnly, s)
	return d
}

func TestSalesReportRepository_StoreSalesRows(t *testing.T) {
	tests := []struct {
		name      string
		filters   domain.ReportFilters
		wantWhere string
		wantArgs  []driver.Value
	}{
		{
			name:      "sem filtros opcionais",
			filters:   domain.ReportFilters{FromDate: "2024-01-01", ToDate: "2024-01-31"},
			wantWhere: "WHERE (bill_date BETWEEN $1 AND $2 OR bill_date BETWEEN $3 AND $4) GROUP BY store_full_name, bill_date",
			wantArgs:  []driver.Value{"2024-01-01", "2024-01-31", "2023-01-01", "2023-01-31"},
		},
		{
			name: "com loja e tipo de transação",
			filters: domain.ReportFilters{
				FromDate: "2024-01-01",
				ToDate:   "2024-01-31",
				Store:    "Loja A",
				TranType: "Sale",
			},
			wantWhere: "WHERE (bill_date BETWEEN $1 AND $2 OR bill_date BETWEEN $3 AND $4) AND store_full_name = $5 AND tran_type = $6 GROUP BY",
			wantArgs:  []driver.Value{"2024-01-01", "2024-01-31", "2023-01-01", "2023-01-31", "Loja A", "Sale"},
		},
		{
			name: "com todos os filtros, incluindo tentativa de injeção",
			filters: domain.ReportFilters{
				FromDate: "2024-01-01",
				ToDate:   "2024-01-31",
				Store:    "x' OR '1'='1",
				ShopType: "Offline",
				TranType: "Return",
			},
			wantWhere: "WHERE (bill_date BETWEEN $1 AND $2 OR bill_date BETWEEN $3 AND $4) AND store_full_name = $5 AND shop_type = $6 AND tran_type = $7 GROUP BY",
			wantArgs:  []driver.Value{"2024-01-01", "2024-01-31", "2023-01-01", "2023-01-31", "x' OR '1'='1", "Offline", "Return"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)

			mock.ExpectQuery(regexp.QuoteMeta("FROM tbl_sales_daily_summary " + tt.wantWhere)).
				WithArgs(tt.wantArgs...).
				WillReturnRows(sqlmock.NewRows([]string{"store_full_name", "bill_date", "sales", "qty", "bills", "online_sales", "offline_sales"}).
					AddRow("Loja A", day("2024-01-15"), 100.0, 2.0, int64(1), 40.0, 60.0).
					AddRow("Loja A", day("2023-01-15"), nil, nil, nil, nil, nil))

			rows, err := repo.StoreSalesRows(context.Background(), tt.filters)
			require.NoError(t, err)
			require.Len(t, rows, 2)

			assert.Equal(t, domain.StoreSalesRow{
				Store:        "Loja A",
				BillDate:     day("2024-01-15"),
				Sales:        100,
				Qty:          2,
				Bills:        1,
				OnlineSales:  40,
				OfflineSales: 60,
			}, rows[0])

			// Valores nulos são normalizados para zero
			assert.Equal(t, domain.StoreSalesRow{Store: "Loja A", BillDate: day("2023-01-15")}, rows[1])

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSalesReportRepository_StoreSalesRows_InvalidDate(t *testing.T) {
	repo, mock := newMockRepository(t)

	_, err := repo.StoreSalesRows(context.Background(), domain.ReportFilters{FromDate: "2024/01/01", ToDate: "2024-01-31"})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesReportRepository_ShopTypeSalesRows(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(shop_type, 'Unknown') AS shop_type, bill_date, store_full_name")).
		WithArgs("2024-01-01", "2024-01-31", "2023-01-01", "2023-01-31", "Online").
		WillReturnRows(sqlmock.NewRows([]string{"shop_type", "bill_date", "store_full_name", "sales", "qty", "bills"}).
			AddRow("Online", day("2024-01-10"), "Loja B", 250.5, 3.0, int64(2)))

	rows, err := repo.ShopTypeSalesRows(context.Background(), domain.ReportFilters{
		FromDate: "2024-01-01",
		ToDate:   "2024-01-31",
		ShopType: "Online",
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, domain.ShopTypeSalesRow{
		ShopType: "Online",
		BillDate: day("2024-01-10"),
		Store:    "Loja B",
		Sales:    250.5,
		Qty:      3,
		Bills:    2,
	}, rows[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesReportRepository_MonthSalesRows(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE bill_date BETWEEN $1 AND $2 AND store_full_name = $3 GROUP BY store_full_name, to_char(bill_date, 'YYYY-MM') ORDER BY store_full_name, month")).
		WithArgs("2024-01-01", "2024-03-31", "Loja A").
		WillReturnRows(sqlmock.NewRows([]string{"store", "month", "total_sales", "total_qty"}).
			AddRow("Loja A", "2024-01", 100.0, 2.0).
			AddRow("Loja A", "2024-03", 50.0, nil))

	rows, err := repo.MonthSalesRows(context.Background(), domain.ReportFilters{
		FromDate: "2024-01-01",
		ToDate:   "2024-03-31",
		Store:    "Loja A",
	})
	require.NoError(t, err)
	assert.Equal(t, []domain.MonthSalesRow{
		{Store: "Loja A", Month: "2024-01", Sales: 100, Qty: 2},
		{Store: "Loja A", Month: "2024-03", Sales: 50, Qty: 0},
	}, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesReportRepository_DistinctValues(t *testing.T) {
	tests := []struct {
		name   string
		column string
		call   func(SalesReportRepository) ([]string, error)
	}{
		{"lojas", "store_full_name", func(r SalesReportRepository) ([]string, error) { return r.DistinctStores(context.Background()) }},
		{"tipos de transação", "tran_type", func(r SalesReportRepository) ([]string, error) { return r.DistinctTranTypes(context.Background()) }},
		{"tipos de loja", "shop_type", func(r SalesReportRepository) ([]string, error) { return r.DistinctShopTypes(context.Background()) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)

			mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT " + tt.column + " FROM tbl_sales_daily_summary WHERE " + tt.column + " IS NOT NULL ORDER BY " + tt.column)).
				WillReturnRows(sqlmock.NewRows([]string{tt.column}).AddRow("A").AddRow("B"))

			values, err := tt.call(repo)
			require.NoError(t, err)
			assert.Equal(t, []string{"A", "B"}, values)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSalesReportRepository_QueryError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("SELECT DISTINCT store_full_name").WillReturnError(errors.New("connection refused"))

	_, err := repo.DistinctStores(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "erro ao executar a query")
	assert.NoError(t, mock.ExpectationsWereMet())
}
