// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Shivarajkushals/Dashboard/infrastructure/database/postgres"
	"github.com/Shivarajkushals/Dashboard/internal/domain"
	"github.com/Shivarajkushals/Dashboard/pkg/metrics"
)

const (
	salesSummaryTable = "tbl_sales_daily_summary"

	// Tipo de loja que identifica vendas presenciais
	offlineShopType = "Offline"
	unknownShopType = "Unknown"
)

//go:generate mockgen -source=sales_report.go -destination=mocks/mock_sales_report.go -package=mocks
type SalesReportRepository interface {
	// StoreSalesRows retorna vendas por loja e dia nos períodos atual e do ano anterior
	StoreSalesRows(ctx context.Context, filters domain.ReportFilters) ([]domain.StoreSalesRow, error)
	// ShopTypeSalesRows retorna vendas por tipo de loja, dia e loja nos períodos atual e do ano anterior
	ShopTypeSalesRows(ctx context.Context, filters domain.ReportFilters) ([]domain.ShopTypeSalesRow, error)
	// MonthSalesRows retorna vendas por loja e mês apenas no período atual
	MonthSalesRows(ctx context.Context, filters domain.ReportFilters) ([]domain.MonthSalesRow, error)

	DistinctStores(ctx context.Context) ([]string, error)
	DistinctTranTypes(ctx context.Context) ([]string, error)
	DistinctShopTypes(ctx context.Context) ([]string, error)
}

type salesReportRepository struct {
	conn         postgres.Queryer
	queryTimeout time.Duration
}

func NewSalesReportRepository(conn postgres.Queryer, queryTimeout time.Duration) SalesReportRepository {
	return &salesReportRepository{
		conn:         conn,
		queryTimeout: queryTimeout,
	}
}

func (r *salesReportRepository) StoreSalesRows(ctx context.Context, filters domain.ReportFilters) ([]domain.StoreSalesRow, error) {
	predicates, err := periodComparisonPredicates(filters)
	if err != nil {
		return nil, err
	}

	queryBuilder := squirrel.
		Select(
			"store_full_name",
			"bill_date",
			"SUM(item_net_amount) AS sales",
			"SUM(sold_qty) AS qty",
			"COUNT(DISTINCT bill_number) AS bills",
			fmt.Sprintf("SUM(CASE WHEN shop_type <> '%s' AND shop_type IS NOT NULL THEN item_net_amount ELSE 0 END) AS online_sales", offlineShopType),
			fmt.Sprintf("SUM(CASE WHEN shop_type = '%s' THEN item_net_amount ELSE 0 END) AS offline_sales", offlineShopType),
		).
		From(salesSummaryTable).
		GroupBy("store_full_name", "bill_date").
		PlaceholderFormat(squirrel.Dollar)

	for _, predicate := range predicates {
		queryBuilder = queryBuilder.Where(predicate)
	}

	rows, done, err := r.query(ctx, "store_summary", queryBuilder)
	if err != nil {
		return nil, err
	}
	defer done()

	result := make([]domain.StoreSalesRow, 0)
	for rows.Next() {
		var (
			store                       sql.NullString
			row                         domain.StoreSalesRow
			sales, qty, online, offline sql.NullFloat64
			bills                       sql.NullInt64
		)

		if err := rows.Scan(&store, &row.BillDate, &sales, &qty, &bills, &online, &offline); err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas por loja: %w", err)
		}

		row.Store = store.String
		row.Sales = sales.Float64
		row.Qty = qty.Float64
		row.Bills = bills.Int64
		row.OnlineSales = online.Float64
		row.OfflineSales = offline.Float64
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}

func (r *salesReportRepository) ShopTypeSalesRows(ctx context.Context, filters domain.ReportFilters) ([]domain.ShopTypeSalesRow, error) {
	predicates, err := periodComparisonPredicates(filters)
	if err != nil {
		return nil, err
	}

	queryBuilder := squirrel.
		Select(
			fmt.Sprintf("COALESCE(shop_type, '%s') AS shop_type", unknownShopType),
			"bill_date",
			"store_full_name",
			"SUM(item_net_amount) AS sales",
			"SUM(sold_qty) AS qty",
			"COUNT(DISTINCT bill_number) AS bills",
		).
		From(salesSummaryTable).
		GroupBy("shop_type", "bill_date", "store_full_name").
		PlaceholderFormat(squirrel.Dollar)

	for _, predicate := range predicates {
		queryBuilder = queryBuilder.Where(predicate)
	}

	rows, done, err := r.query(ctx, "shop_type_summary", queryBuilder)
	if err != nil {
		return nil, err
	}
	defer done()

	result := make([]domain.ShopTypeSalesRow, 0)
	for rows.Next() {
		var (
			shopType, store sql.NullString
			row             domain.ShopTypeSalesRow
			sales, qty      sql.NullFloat64
			bills           sql.NullInt64
		)

		if err := rows.Scan(&shopType, &row.BillDate, &store, &sales, &qty, &bills); err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas por tipo de loja: %w", err)
		}

		row.ShopType = shopType.String
		row.Store = store.String
		row.Sales = sales.Float64
		row.Qty = qty.Float64
		row.Bills = bills.Int64
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}

func (r *salesReportRepository) MonthSalesRows(ctx context.Context, filters domain.ReportFilters) ([]domain.MonthSalesRow, error) {
	current := filters.CurrentWindow()
	monthExpr := "to_char(bill_date, 'YYYY-MM')"

	queryBuilder := squirrel.
		Select(
			"store_full_name AS store",
			monthExpr+" AS month",
			"SUM(item_net_amount) AS total_sales",
			"SUM(sold_qty) AS total_qty",
		).
		From(salesSummaryTable).
		Where(squirrel.Expr("bill_date BETWEEN ? AND ?", current.From, current.To)).
		GroupBy("store_full_name", monthExpr).
		OrderBy("store_full_name", "month").
		PlaceholderFormat(squirrel.Dollar)

	for _, predicate := range filterPredicates(filters) {
		queryBuilder = queryBuilder.Where(predicate)
	}

	rows, done, err := r.query(ctx, "month_on_month", queryBuilder)
	if err != nil {
		return nil, err
	}
	defer done()

	result := make([]domain.MonthSalesRow, 0)
	for rows.Next() {
		var (
			store, month sql.NullString
			sales, qty   sql.NullFloat64
		)

		if err := rows.Scan(&store, &month, &sales, &qty); err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas mensais: %w", err)
		}

		result = append(result, domain.MonthSalesRow{
			Store: store.String,
			Month: month.String,
			Sales: sales.Float64,
			Qty:   qty.Float64,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}

func (r *salesReportRepository) DistinctStores(ctx context.Context) ([]string, error) {
	return r.distinctValues(ctx, "store_list", "store_full_name")
}

func (r *salesReportRepository) DistinctTranTypes(ctx context.Context) ([]string, error) {
	return r.distinctValues(ctx, "tran_type_list", "tran_type")
}

func (r *salesReportRepository) DistinctShopTypes(ctx context.Context) ([]string, error) {
	return r.distinctValues(ctx, "shop_type_list", "shop_type")
}

func (r *salesReportRepository) distinctValues(ctx context.Context, operation, column string) ([]string, error) {
	queryBuilder := squirrel.
		Select("DISTINCT " + column).
		From(salesSummaryTable).
		Where(squirrel.NotEq{column: nil}).
		OrderBy(column).
		PlaceholderFormat(squirrel.Dollar)

	rows, done, err := r.query(ctx, operation, queryBuilder)
	if err != nil {
		return nil, err
	}
	defer done()

	values := make([]string, 0)
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("erro ao escanear %s: %w", column, err)
		}
		values = append(values, value)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return values, nil
}

// query executa a consulta com o timeout configurado. done fecha as linhas e libera o contexto.
func (r *salesReportRepository) query(ctx context.Context, operation string, queryBuilder squirrel.SelectBuilder) (*sql.Rows, func(), error) {
	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	cancel := func() {}
	if r.queryTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, r.queryTimeout)
	}

	start := time.Now()
	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	metrics.RecordDBQuery(operation, time.Since(start), err)
	if err != nil {
		cancel()
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return nil, nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return rows, func() {
		rows.Close()
		cancel()
	}, nil
}

// periodComparisonPredicates monta o filtro do período atual OU do ano anterior mais os filtros opcionais
func periodComparisonPredicates(filters domain.ReportFilters) ([]squirrel.Sqlizer, error) {
	current := filters.CurrentWindow()
	priorYear, err := filters.PriorYearWindow()
	if err != nil {
		return nil, fmt.Errorf("erro ao calcular período do ano anterior: %w", err)
	}

	predicates := []squirrel.Sqlizer{
		squirrel.Or{
			squirrel.Expr("bill_date BETWEEN ? AND ?", current.From, current.To),
			squirrel.Expr("bill_date BETWEEN ? AND ?", priorYear.From, priorYear.To),
		},
	}

	return append(predicates, filterPredicates(filters)...), nil
}

// filterPredicates retorna os filtros de igualdade presentes, sempre na mesma ordem
func filterPredicates(filters domain.ReportFilters) []squirrel.Sqlizer {
	predicates := make([]squirrel.Sqlizer, 0, 3)

	if filters.Store != "" {
		predicates = append(predicates, squirrel.Eq{"store_full_name": filters.Store})
	}

	if filters.ShopType != "" {
		predicates = append(predicates, squirrel.Eq{"shop_type": filters.ShopType})
	}

	if filters.TranType != "" {
		predicates = append(predicates, squirrel.Eq{"tran_type": filters.TranType})
	}

	return predicates
}
