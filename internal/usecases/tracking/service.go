package tracking

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/storymaker/tracking-api/infrastructure/integrator/iplookup"
	"github.com/storymaker/tracking-api/infrastructure/repository"
	"github.com/storymaker/tracking-api/internal/domain"
	"github.com/storymaker/tracking-api/internal/metrics"
	"github.com/storymaker/tracking-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

var ErrMissingButtonType = errors.New("button_type é obrigatório")

// Ambient é o contexto da requisição lido no momento do clique
type Ambient struct {
	IP        string
	UserAgent string
	Referrer  string
}

type Tracker interface {
	TrackClick(ctx context.Context, buttonType string, metadata map[string]any, ambient Ambient)
	Record(ctx context.Context, buttonType string, metadata map[string]any, ambient Ambient) error
	Wait(ctx context.Context) error
}

type Service struct {
	clicks   repository.ClickRepository
	resolver iplookup.IPResolver
	inflight sync.WaitGroup
}

func NewService(clicks repository.ClickRepository, resolver iplookup.IPResolver) *Service {
	return &Service{
		clicks:   clicks,
		resolver: resolver,
	}
}

// TrackClick registra o clique em background e retorna imediatamente.
// A tarefa não é cancelada quando a requisição termina.
func (s *Service) TrackClick(ctx context.Context, buttonType string, metadata map[string]any, ambient Ambient) {
	detached := context.WithoutCancel(ctx)

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		defer func() {
			if r := recover(); r != nil {
				metrics.ClicksTracked.WithLabelValues(metrics.ResultFailed).Inc()
				log.ForContext(detached).Errorf("Panic ao registrar clique: %v", r)
			}
		}()

		_ = s.Record(detached, buttonType, metadata, ambient)
	}()
}

// Record faz o mesmo trabalho de TrackClick de forma síncrona. Os erros já
// são registrados em log; o retorno serve para testes e chamadas internas.
func (s *Service) Record(ctx context.Context, buttonType string, metadata map[string]any, ambient Ambient) error {
	logger := log.ForContext(ctx)

	if ambient.IP == "" {
		ambient.IP = s.resolveIP(ctx)
	}

	click := buildClick(buttonType, metadata, ambient)
	if click.ButtonType == "" {
		metrics.ClicksTracked.WithLabelValues(metrics.ResultDropped).Inc()
		logger.Warn("Clique descartado: button_type vazio")
		return ErrMissingButtonType
	}

	if err := s.clicks.InsertClick(ctx, click); err != nil {
		metrics.ClicksTracked.WithLabelValues(metrics.ResultFailed).Inc()
		logger.WithError(err).WithField("button_type", click.ButtonType).Error("Erro ao registrar clique")
		return err
	}

	metrics.ClicksTracked.WithLabelValues(metrics.ResultRecorded).Inc()
	logger.WithField("button_type", click.ButtonType).Debug("Clique registrado")
	return nil
}

// Wait bloqueia até que todas as tarefas em andamento terminem ou ctx expire
func (s *Service) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Service) resolveIP(ctx context.Context) string {
	if s.resolver == nil {
		return iplookup.DefaultPlaceholder
	}
	return s.resolver.ResolveIP(ctx)
}

// buildClick aplica os campos base e depois o metadata do chamador por cima.
// Chaves que correspondem a colunas viram campos; as demais vão para Metadata.
func buildClick(buttonType string, metadata map[string]any, ambient Ambient) *domain.ClickEvent {
	row := map[string]any{
		"button_type": buttonType,
		"user_ip":     ambient.IP,
		"user_agent":  ambient.UserAgent,
		"referrer":    ambient.Referrer,
	}
	for key, value := range metadata {
		row[key] = value
	}

	click := &domain.ClickEvent{}
	for key, value := range row {
		switch key {
		case "button_type":
			click.ButtonType = toString(value)
		case "user_ip":
			click.UserIP = toString(value)
		case "user_agent":
			click.UserAgent = toString(value)
		case "referrer":
			click.Referrer = toString(value)
		case "button_text":
			click.ButtonText = toString(value)
		case "button_url":
			click.ButtonURL = toString(value)
		default:
			if click.Metadata == nil {
				click.Metadata = make(map[string]any)
			}
			click.Metadata[key] = value
		}
	}

	return click
}

func toString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
