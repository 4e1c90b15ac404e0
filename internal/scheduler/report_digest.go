// Package scheduler contém os serviços agendados do pipeline de rastreamento
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/storymaker/tracking-api/internal/config"
	"github.com/storymaker/tracking-api/internal/domain"
	"github.com/storymaker/tracking-api/internal/metrics"
	"github.com/storymaker/tracking-api/internal/usecases/reporting"
)

type ReportDigestConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ReportDigestService carrega o relatório periodicamente e registra um resumo em log
type ReportDigestService struct {
	scheduler           *gocron.Scheduler
	reporter            reporting.Reporter
	config              ReportDigestConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSummary         *domain.ReportSummary
	lastState           domain.DashboardState
}

func NewReportDigestService(reporter reporting.Reporter, cfg *config.Config) *ReportDigestService {
	digestConfig := ReportDigestConfig{
		CronSchedule: cfg.Digest.CronSchedule, // Default: 8h da manhã todos os dias
		SyncEnabled:  cfg.Digest.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": digestConfig.CronSchedule,
	}).Info("Configuração do agendador de resumo do dashboard carregada")

	return &ReportDigestService{
		scheduler: gocron.NewScheduler(time.UTC),
		reporter:  reporter,
		config:    digestConfig,
	}
}

func (s *ReportDigestService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de resumo do dashboard desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de resumo do dashboard")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RunDigest(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar resumo do dashboard: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de resumo do dashboard")
		s.scheduler.Stop()
	}()

	return nil
}

// RunDigest executa um resumo. Retorna false quando outra execução já está em andamento.
func (s *ReportDigestService) RunDigest(ctx context.Context) bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Resumo do dashboard já está em execução")
		metrics.DigestRuns.WithLabelValues(metrics.ResultSkipped).Inc()
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	report := s.reporter.Load(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastState = report.State
	summary := report.Summary
	s.lastSummary = &summary
	s.syncMutex.Unlock()

	if report.State == domain.DashboardError {
		metrics.DigestRuns.WithLabelValues(metrics.ResultFailed).Inc()
		logrus.WithField("kind", report.Error.Kind).Error("Resumo do dashboard falhou ao carregar o relatório")
		return true
	}

	metrics.DigestRuns.WithLabelValues(metrics.ResultSuccess).Inc()
	logrus.WithFields(logrus.Fields{
		"total_clicks":    summary.TotalClicks,
		"total_leads":     summary.TotalLeads,
		"conversion_rate": summary.ConversionRate,
		"degraded":        report.Degraded,
	}).Infof("Resumo do dashboard: %d cliques, %d leads, conversão %s",
		summary.TotalClicks, summary.TotalLeads, summary.ConversionRate)

	return true
}

// TriggerManualSync inicia manualmente um resumo em background
func (s *ReportDigestService) TriggerManualSync(ctx context.Context) bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Resumo do dashboard já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando resumo manual do dashboard")
	go s.RunDigest(context.WithoutCancel(ctx))
	return true
}

// GetStatus retorna o status atual do agendador
func (s *ReportDigestService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if s.lastSummary != nil {
		status["last_state"] = s.lastState
		status["last_summary"] = *s.lastSummary
	}

	return status
}
