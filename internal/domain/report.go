package domain

import "time"

// StoreSalesRow é uma linha agregada por loja e dia
type StoreSalesRow struct {
	Store        string
	BillDate     time.Time
	Sales        float64
	Qty          float64
	Bills        int64
	OnlineSales  float64
	OfflineSales float64
}

// ShopTypeSalesRow é uma linha agregada por tipo de loja, dia e loja
type ShopTypeSalesRow struct {
	ShopType string
	BillDate time.Time
	Store    string
	Sales    float64
	Qty      float64
	Bills    int64
}

// MonthSalesRow é uma linha agregada por loja e mês (YYYY-MM)
type MonthSalesRow struct {
	Store string
	Month string
	Sales float64
	Qty   float64
}

type StoreSummary struct {
	Store               string  `json:"store"`
	CurrentSales        float64 `json:"current_sales"`
	LastYearSales       float64 `json:"last_year_sales"`
	GrowthPercent       float64 `json:"growth_percent"`
	TotalQty            float64 `json:"total_qty"`
	TotalBills          int64   `json:"total_bills"`
	AvgSellingPrice     float64 `json:"avg_selling_price"`
	UnitsPerTransaction float64 `json:"units_per_transaction"`
	OnlineSalesAmount   float64 `json:"online_sales_amount"`
	OfflineSalesAmount  float64 `json:"offline_sales_amount"`
}

type ShopTypeSummary struct {
	ShopType            string  `json:"shop_type"`
	CurrentSales        float64 `json:"current_sales"`
	LastYearSales       float64 `json:"last_year_sales"`
	GrowthPercent       float64 `json:"growth_percent"`
	TotalQty            float64 `json:"total_qty"`
	TotalBills          int64   `json:"total_bills"`
	AvgSellingPrice     float64 `json:"avg_selling_price"`
	UnitsPerTransaction float64 `json:"units_per_transaction"`
	StoreCount          int     `json:"store_count"`
}

// MonthCell contém vendas e quantidade de uma loja em um mês
type MonthCell struct {
	Sales float64 `json:"sales"`
	Qty   float64 `json:"qty"`
}

// StoreMonthRow é a linha de uma loja alinhada ao eixo de meses
type StoreMonthRow struct {
	Store string      `json:"store"`
	Data  []MonthCell `json:"data"`
}

// MonthMatrix é a matriz loja x mês do relatório mês a mês
type MonthMatrix struct {
	Months []string        `json:"months"`
	Stores []StoreMonthRow `json:"stores"`
}

type StoreItem struct {
	Store string `json:"store"`
}

type TranTypeItem struct {
	TranType string `json:"tran_type"`
}

type ShopTypeItem struct {
	ShopType string `json:"shop_type"`
}
