package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/Shivarajkushals/Dashboard/internal/domain"
	"github.com/Shivarajkushals/Dashboard/internal/usecases/reporting"
	"github.com/Shivarajkushals/Dashboard/pkg/apiErrors"
	"github.com/Shivarajkushals/Dashboard/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// filtersFromRequest lê os parâmetros de relatório da query string
func filtersFromRequest(r *http.Request) domain.ReportFilters {
	query := r.URL.Query()

	return domain.ReportFilters{
		FromDate: query.Get("from_date"),
		ToDate:   query.Get("to_date"),
		Store:    query.Get("store"),
		ShopType: query.Get("shop_type"),
		TranType: query.Get("tran_type"),
	}
}

func filterFields(filters domain.ReportFilters) log.Fields {
	return log.Fields{
		"filter_from_date": filters.FromDate,
		"filter_to_date":   filters.ToDate,
		"filter_store":     filters.Store,
		"filter_shop_type": filters.ShopType,
		"filter_tran_type": filters.TranType,
	}
}

// GetStoreSummary retorna o resumo de vendas por loja comparado ao ano anterior
func GetStoreSummary(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := filtersFromRequest(r)
		logger := log.ForContext(r.Context()).WithFields(filterFields(filters))

		summaries, err := service.StoreSummary(r.Context(), filters)
		if err != nil {
			writeReportError(w, logger, "store_summary", err)
			return
		}

		writeJSON(w, logger, summaries)
	}
}

// GetShopTypeSummary retorna o resumo de vendas por tipo de loja
func GetShopTypeSummary(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := filtersFromRequest(r)
		logger := log.ForContext(r.Context()).WithFields(filterFields(filters))

		summaries, err := service.ShopTypeSummary(r.Context(), filters)
		if err != nil {
			writeReportError(w, logger, "shop_type_summary", err)
			return
		}

		writeJSON(w, logger, summaries)
	}
}

// GetMonthOnMonth retorna a matriz loja x mês de vendas e quantidade
func GetMonthOnMonth(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := filtersFromRequest(r)
		logger := log.ForContext(r.Context()).WithFields(filterFields(filters))

		matrix, err := service.MonthOnMonth(r.Context(), filters)
		if err != nil {
			writeReportError(w, logger, "month_on_month", err)
			return
		}

		writeJSON(w, logger, matrix)
	}
}

func GetStoreList(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		stores, err := service.StoreList(r.Context())
		if err != nil {
			writeReportError(w, logger, "store_list", err)
			return
		}

		writeJSON(w, logger, stores)
	}
}

func GetTranTypeList(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		tranTypes, err := service.TranTypeList(r.Context())
		if err != nil {
			writeReportError(w, logger, "tran_type_list", err)
			return
		}

		writeJSON(w, logger, tranTypes)
	}
}

func GetShopTypeList(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		shopTypes, err := service.ShopTypeList(r.Context())
		if err != nil {
			writeReportError(w, logger, "shop_type_list", err)
			return
		}

		writeJSON(w, logger, shopTypes)
	}
}

// writeReportError converte erros de validação em 400 e o restante em 500
func writeReportError(w http.ResponseWriter, logger log.Logger, endpoint string, err error) {
	switch {
	case errors.Is(err, reporting.ErrMissingDates):
		logger.Warnf("%s: parâmetros obrigatórios ausentes", endpoint)
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error())
	case errors.Is(err, reporting.ErrInvalidDates):
		logger.Warnf("%s: datas inválidas", endpoint)
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error())
	default:
		logger.WithError(err).Errorf("%s: erro ao gerar relatório", endpoint)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to load report")
	}
}

func writeJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("Erro ao enviar resposta")
	}
}
