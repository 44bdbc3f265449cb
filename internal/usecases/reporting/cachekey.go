package reporting

import (
	"crypto/md5"
	"encoding/hex"

	jsoniter "github.com/json-iterator/go"

	"github.com/Shivarajkushals/Dashboard/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Nomes dos relatórios, usados como prefixo das chaves de cache e nos logs
const (
	EndpointStoreSummary    = "store_summary"
	EndpointShopTypeSummary = "shop_type_summary"
	EndpointMonthOnMonth    = "month_on_month"

	// As listas não têm filtros e usam chaves fixas
	KeyStoreList    = "store_list"
	KeyTranTypeList = "tran_type_list"
	KeyShopTypeList = "shop_type_list"
)

// CacheKey gera <endpoint>_<md5> sobre todos os filtros. Filtros ausentes entram como null
// e as chaves do JSON são ordenadas, então a ordem dos parâmetros não importa.
func CacheKey(endpoint string, filters domain.ReportFilters) string {
	payload := map[string]interface{}{
		"type":      endpoint,
		"from_date": filters.FromDate,
		"to_date":   filters.ToDate,
		"store":     optional(filters.Store),
		"shop_type": optional(filters.ShopType),
		"tran_type": optional(filters.TranType),
	}

	// map de strings e nil não falha ao serializar
	raw, _ := json.Marshal(payload)
	sum := md5.Sum(raw)

	return endpoint + "_" + hex.EncodeToString(sum[:])
}

func optional(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}
