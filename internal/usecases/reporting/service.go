package reporting

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/storymaker/tracking-api/infrastructure/database/schema"
	"github.com/storymaker/tracking-api/infrastructure/repository"
	"github.com/storymaker/tracking-api/internal/domain"
	"github.com/storymaker/tracking-api/internal/metrics"
	"github.com/storymaker/tracking-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

var ErrUnknownDataset = errors.New("dataset desconhecido")

const (
	MessageSchemaMissing    = "As tabelas de rastreamento ainda não existem. Execute o SQL abaixo no editor SQL do banco e recarregue a página."
	MessagePermissionDenied = "Sem permissão para ler os dados. Verifique as políticas de acesso (RLS) das tabelas e views."
	MessageUnexpected       = "Não foi possível carregar os dados. Tente novamente em instantes."
)

type Reporter interface {
	Load(ctx context.Context) *domain.Report
	Export(ctx context.Context, dataset Dataset, filters domain.LeadFilters, w io.Writer) error
}

type Service struct {
	stats repository.StatsRepository
	leads repository.LeadRepository
	now   func() time.Time
}

func NewService(stats repository.StatsRepository, leads repository.LeadRepository) *Service {
	return &Service{
		stats: stats,
		leads: leads,
		now:   time.Now,
	}
}

// Load busca estatísticas e leads a cada chamada, sem cache. Falha nas
// estatísticas de cliques interrompe o relatório; falhas nas seções de
// leads só esvaziam a seção, exceto tabela ausente.
func (s *Service) Load(ctx context.Context) *domain.Report {
	logger := log.ForContext(ctx)

	report := &domain.Report{
		State:       domain.DashboardLoading,
		ClickStats:  []*domain.ClickStats{},
		LeadStats:   []*domain.LeadStats{},
		Leads:       []*domain.Lead{},
		GeneratedAt: s.now().UTC(),
	}

	clickStats, err := s.stats.ClickStats(ctx)
	switch {
	case errors.Is(err, repository.ErrNotConfigured):
		report.Degraded = true
	case err != nil:
		return s.fail(ctx, report, err)
	default:
		report.ClickStats = clickStats
	}

	leadStats, err := s.stats.LeadStats(ctx)
	if gate := s.section(ctx, report, err, "estatísticas de leads"); gate {
		return s.fail(ctx, report, err)
	}
	if err == nil {
		report.LeadStats = leadStats
	}

	leads, err := s.leads.ListLeads(ctx, domain.LeadFilters{})
	if gate := s.section(ctx, report, err, "lista de leads"); gate {
		return s.fail(ctx, report, err)
	}
	if err == nil {
		report.Leads = leads
	}

	report.Summary = Summarize(report.ClickStats, report.LeadStats)
	report.State = domain.DashboardLoaded

	if report.Degraded {
		logger.Warn("Relatório gerado sem banco configurado")
	}
	metrics.ReportLoads.WithLabelValues(string(report.State)).Inc()

	return report
}

// section decide o destino do erro de uma seção secundária e devolve true
// quando ele deve interromper o relatório.
func (s *Service) section(ctx context.Context, report *domain.Report, err error, name string) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, repository.ErrNotConfigured):
		report.Degraded = true
		return false
	case errors.Is(err, repository.ErrSchemaMissing):
		return true
	default:
		log.ForContext(ctx).WithError(err).Warnf("Falha ao carregar %s, seção exibida vazia", name)
		return false
	}
}

func (s *Service) fail(ctx context.Context, report *domain.Report, err error) *domain.Report {
	report.State = domain.DashboardError
	report.Error = ClassifyError(err)
	report.ClickStats = []*domain.ClickStats{}
	report.LeadStats = []*domain.LeadStats{}
	report.Leads = []*domain.Lead{}

	log.ForContext(ctx).WithError(err).WithField("kind", report.Error.Kind).Error("Erro ao carregar relatório do dashboard")
	metrics.ReportLoads.WithLabelValues(string(report.State)).Inc()

	return report
}

// ClassifyError é o único ponto que traduz o tipo de erro do armazenamento
// para a mensagem exibida no dashboard.
func ClassifyError(err error) *domain.ReportError {
	switch {
	case errors.Is(err, repository.ErrSchemaMissing):
		return &domain.ReportError{
			Kind:     domain.ReportSchemaMissing,
			Message:  MessageSchemaMissing,
			SetupSQL: schema.Script(true),
		}
	case errors.Is(err, repository.ErrPermissionDenied):
		return &domain.ReportError{
			Kind:    domain.ReportPermissionDenied,
			Message: MessagePermissionDenied,
		}
	default:
		return &domain.ReportError{
			Kind:    domain.ReportUnexpected,
			Message: MessageUnexpected,
		}
	}
}

// Export escreve o dataset em CSV. Os filtros valem apenas para a lista de
// leads. Em modo degradado a saída fica vazia.
func (s *Service) Export(ctx context.Context, dataset Dataset, filters domain.LeadFilters, w io.Writer) error {
	switch dataset {
	case DatasetClickStats:
		rows, err := s.stats.ClickStats(ctx)
		if err != nil && !errors.Is(err, repository.ErrNotConfigured) {
			return err
		}
		return ExportCSV(w, rows)
	case DatasetLeadStats:
		rows, err := s.stats.LeadStats(ctx)
		if err != nil && !errors.Is(err, repository.ErrNotConfigured) {
			return err
		}
		return ExportCSV(w, rows)
	case DatasetLeads:
		rows, err := s.leads.ListLeads(ctx, filters)
		if err != nil && !errors.Is(err, repository.ErrNotConfigured) {
			return err
		}
		return ExportCSV(w, rows)
	default:
		return ErrUnknownDataset
	}
}
