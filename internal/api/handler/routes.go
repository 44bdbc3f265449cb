package handler

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Shivarajkushals/Dashboard/internal/api/handler/router"
	"github.com/Shivarajkushals/Dashboard/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

// Reports retorna as rotas dos relatórios, prefixadas por basePath quando informado.
// middlewares são aplicados a cada rota de relatório, na ordem recebida.
func Reports(service reporting.Reporter, basePath string, middlewares ...func(http.Handler) http.Handler) []router.Route {
	prefix := strings.TrimRight(basePath, "/")

	return []router.Route{
		{
			Path:        prefix + "/store-summary/",
			Method:      http.MethodGet,
			Handler:     GetStoreSummary(service),
			Middlewares: middlewares,
		},
		{
			Path:        prefix + "/shop-type-summary/",
			Method:      http.MethodGet,
			Handler:     GetShopTypeSummary(service),
			Middlewares: middlewares,
		},
		{
			Path:        prefix + "/month-on-month/",
			Method:      http.MethodGet,
			Handler:     GetMonthOnMonth(service),
			Middlewares: middlewares,
		},
		{
			Path:        prefix + "/store-list/",
			Method:      http.MethodGet,
			Handler:     GetStoreList(service),
			Middlewares: middlewares,
		},
		{
			Path:        prefix + "/tran_type-list/",
			Method:      http.MethodGet,
			Handler:     GetTranTypeList(service),
			Middlewares: middlewares,
		},
		{
			Path:        prefix + "/shop_type-list/",
			Method:      http.MethodGet,
			Handler:     GetShopTypeList(service),
			Middlewares: middlewares,
		},
	}
}

func CacheWarmup(runner WarmupRunner, basePath string) []router.Route {
	prefix := strings.TrimRight(basePath, "/")

	return []router.Route{
		{
			Path:    prefix + "/cache/warmup/run",
			Method:  http.MethodPost,
			Handler: RunCacheWarmup(runner),
		},
		{
			Path:    prefix + "/cache/warmup/status",
			Method:  http.MethodGet,
			Handler: GetCacheWarmupStatus(runner),
		},
	}
}
