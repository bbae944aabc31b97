// Package metrics expõe os coletores Prometheus do painel
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheRequests conta consultas ao cache por resultado (hit, miss, shared)
	CacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sales_panel_cache_requests_total",
			Help: "Total de consultas ao cache por resultado",
		},
		[]string{"cache", "result"},
	)

	CacheLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sales_panel_cache_load_errors_total",
			Help: "Total de cargas do cache que falharam",
		},
		[]string{"cache"},
	)

	CacheLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sales_panel_cache_load_duration_seconds",
			Help:    "Duração das cargas executadas em cache miss",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"cache"},
	)

	CacheEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "sales_panel_cache_entries",
			Help: "Número atual de entradas no cache",
		},
		[]string{"cache"},
	)

	// DBQueryDuration mede o tempo das consultas na fonte de dados
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sales_panel_db_query_duration_seconds",
			Help:    "Duração das consultas ao banco em segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status"},
	)

	DBRowsReturned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sales_panel_db_rows_returned_total",
			Help: "Total de linhas materializadas a partir do banco",
		},
	)

	// JanitorRuns conta execuções do limpador de cache
	JanitorRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sales_panel_janitor_runs_total",
			Help: "Execuções do limpador de cache por gatilho",
		},
		[]string{"trigger"},
	)

	JanitorPurged = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sales_panel_janitor_purged_entries_total",
			Help: "Entradas expiradas removidas pelo limpador",
		},
		[]string{"cache"},
	)

	// HTTPRequests conta as requisições atendidas por método e status
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sales_panel_http_requests_total",
			Help: "Total de requisições HTTP por método e status",
		},
		[]string{"method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sales_panel_http_request_duration_seconds",
			Help:    "Duração das requisições HTTP em segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)
