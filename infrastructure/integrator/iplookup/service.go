// Package iplookup resolve o IP público quando a requisição não o informa.
// A consulta é best-effort: qualquer falha devolve o placeholder configurado.
// No servidor o serviço externo enxerga o IP de saída da própria API, por isso
// a consulta só roda com IP_LOOKUP_ENABLED.
package iplookup

import (
	"context"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/storymaker/tracking-api/infrastructure/integrator/iplookup/ipifyclient"
	"github.com/storymaker/tracking-api/internal/config"
	"github.com/storymaker/tracking-api/internal/metrics"
	"github.com/storymaker/tracking-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

const (
	DefaultPlaceholder = "unknown"
	breakerName        = "ip-lookup"
)

type IPResolver interface {
	ResolveIP(ctx context.Context) string
}

type IPLookupService struct {
	client      ipifyclient.Client
	breaker     *gobreaker.CircuitBreaker[string]
	placeholder string
}

// Static devolve sempre o mesmo valor, sem chamada externa
type Static string

func (s Static) ResolveIP(context.Context) string {
	return string(s)
}

// NewResolver escolhe a consulta externa só quando IP_LOOKUP_ENABLED está ativo
func NewResolver(cfg *config.Config, client ipifyclient.Client) IPResolver {
	if !cfg.Tracking.IPLookupEnabled {
		return Static(placeholderFor(cfg))
	}
	return New(cfg, client)
}

func placeholderFor(cfg *config.Config) string {
	if cfg.Tracking.IPPlaceholder == "" {
		return DefaultPlaceholder
	}
	return cfg.Tracking.IPPlaceholder
}

func New(cfg *config.Config, client ipifyclient.Client) *IPLookupService {
	placeholder := placeholderFor(cfg)

	settings := gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
			log.L.WithFields(log.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Circuit breaker da consulta de IP mudou de estado")
		},
	}

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(float64(gobreaker.StateClosed))

	return &IPLookupService{
		client:      client,
		breaker:     gobreaker.NewCircuitBreaker[string](settings),
		placeholder: placeholder,
	}
}

// ResolveIP nunca falha. Com o circuito aberto a chamada externa nem é feita.
func (s *IPLookupService) ResolveIP(ctx context.Context) string {
	ip, err := s.breaker.Execute(func() (string, error) {
		return s.client.GetPublicIP(ctx)
	})
	if err != nil {
		metrics.IPLookups.WithLabelValues(metrics.ResultFallback).Inc()
		log.ForContext(ctx).WithError(err).Debug("Consulta de IP falhou, usando placeholder")
		return s.placeholder
	}

	metrics.IPLookups.WithLabelValues(metrics.ResultSuccess).Inc()
	return ip
}

func (s *IPLookupService) State() gobreaker.State {
	return s.breaker.State()
}
