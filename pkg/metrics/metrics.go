// Package metrics expõe as métricas Prometheus da API de relatórios
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_db_query_duration_seconds",
			Help:    "Duração das consultas ao banco de vendas em segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_db_query_errors_total",
			Help: "Total de erros nas consultas ao banco de vendas",
		},
		[]string{"operation"},
	)

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_cache_hits_total",
			Help: "Total de respostas servidas pelo cache",
		},
		[]string{"endpoint"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_cache_misses_total",
			Help: "Total de consultas ao cache sem resultado",
		},
		[]string{"endpoint"},
	)

	CacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_cache_errors_total",
			Help: "Total de falhas ao acessar o cache",
		},
		[]string{"operation"},
	)

	CacheBreakerOpen = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dashboard_cache_breaker_open",
			Help: "1 quando o circuit breaker do cache está aberto",
		},
	)

	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_api_requests_total",
			Help: "Total de requisições HTTP",
		},
		[]string{"method", "path", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_api_request_duration_seconds",
			Help:    "Duração das requisições HTTP em segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	CacheWarmupRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_cache_warmup_runs_total",
			Help: "Execuções do aquecimento de cache por resultado",
		},
		[]string{"result"},
	)
)

// RecordDBQuery registra a duração e o eventual erro de uma consulta
func RecordDBQuery(operation string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

// RecordCacheLookup registra hit ou miss para o endpoint
func RecordCacheLookup(endpoint string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(endpoint).Inc()
		return
	}
	CacheMisses.WithLabelValues(endpoint).Inc()
}

func RecordCacheError(operation string) {
	CacheErrors.WithLabelValues(operation).Inc()
}

func SetCacheBreakerOpen(open bool) {
	if open {
		CacheBreakerOpen.Set(1)
		return
	}
	CacheBreakerOpen.Set(0)
}

// RecordAPIRequest registra uma requisição HTTP finalizada
func RecordAPIRequest(method, path string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func RecordCacheWarmup(err error) {
	if err != nil {
		CacheWarmupRuns.WithLabelValues("error").Inc()
		return
	}
	CacheWarmupRuns.WithLabelValues("success").Inc()
}
