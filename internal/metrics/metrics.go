// Package metrics registra os contadores Prometheus do pipeline de rastreamento
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resultados usados nos rótulos "result"
const (
	ResultRecorded = "recorded"
	ResultDropped  = "dropped"
	ResultFailed   = "failed"
	ResultSuccess  = "success"
	ResultFallback = "fallback"
	ResultSkipped  = "skipped"
)

var (
	ClicksTracked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storymaker_clicks_tracked_total",
			Help: "Cliques processados pelo rastreador, por resultado",
		},
		[]string{"result"},
	)

	LeadsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storymaker_leads_submitted_total",
			Help: "Envios de lead por resultado",
		},
		[]string{"outcome"},
	)

	IPLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storymaker_ip_lookups_total",
			Help: "Consultas ao serviço externo de IP",
		},
		[]string{"result"},
	)

	// 0 = fechado, 1 = meio aberto, 2 = aberto
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "storymaker_circuit_breaker_state",
			Help: "Estado atual do circuit breaker",
		},
		[]string{"name"},
	)

	ReportLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storymaker_report_loads_total",
			Help: "Carregamentos do relatório do dashboard por estado final",
		},
		[]string{"state"},
	)

	DigestRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storymaker_digest_runs_total",
			Help: "Execuções do resumo agendado",
		},
		[]string{"result"},
	)
)
