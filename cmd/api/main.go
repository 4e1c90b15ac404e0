package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/storymaker/tracking-api/infrastructure/integrator/iplookup"
	"github.com/storymaker/tracking-api/infrastructure/integrator/iplookup/ipifyclient"
	"github.com/storymaker/tracking-api/infrastructure/repository"
	"github.com/storymaker/tracking-api/internal/api"
	"github.com/storymaker/tracking-api/internal/config"
	"github.com/storymaker/tracking-api/internal/scheduler"
	"github.com/storymaker/tracking-api/internal/usecases/authenticating"
	"github.com/storymaker/tracking-api/internal/usecases/capturing"
	"github.com/storymaker/tracking-api/internal/usecases/reporting"
	"github.com/storymaker/tracking-api/internal/usecases/tracking"
	"github.com/storymaker/tracking-api/pkg/log"
	"github.com/storymaker/tracking-api/pkg/middleware"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logFile := log.Setup(log.Options{
		Level:      cfg.App.LogLevel,
		File:       cfg.App.LogFile,
		MaxSizeMB:  cfg.App.LogFileMaxSizeMB,
		MaxBackups: cfg.App.LogFileBackups,
	})
	defer logFile.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	backend := openBackend(ctx, cfg.Database)

	ipLookup := iplookup.NewResolver(cfg, ipifyclient.NewClient(cfg))

	tracker := tracking.NewService(backend.Clicks, ipLookup)
	recorder := capturing.NewService(backend.Leads)
	reporter := reporting.NewService(backend.Stats, backend.Leads)

	authenticator, err := authenticating.NewService(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar autenticação do dashboard")
	}

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar rate limit")
	}

	digestService := scheduler.NewReportDigestService(reporter, cfg)
	if err := digestService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de resumo do dashboard")
	}

	server, err := api.New(cfg, api.Services{
		Backend:       backend,
		Tracker:       tracker,
		Recorder:      recorder,
		Reporter:      reporter,
		Authenticator: authenticator,
		Digest:        digestService,
		RateLimiter:   rateLimiter,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger aplica o formato padrão antes da configuração ser lida.
// O .env é procurado pelo config a partir do diretório de trabalho.
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// openBackend nunca derruba o serviço: banco inacessível só gera aviso, e
// configuração ausente cai no modo degradado.
func openBackend(ctx context.Context, dbConfig config.Database) *repository.Backend {
	backend, err := repository.Open(dbConfig)
	if err != nil {
		logrus.WithError(err).Error("Erro ao abrir conexão com PostgreSQL, usando modo degradado")
		return repository.NewDegradedBackend()
	}

	if backend.Mode() == repository.ModeDegraded {
		return backend
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := backend.Ping(pingCtx); err != nil {
		logrus.WithError(err).Warn("PostgreSQL não respondeu ao ping, as gravações serão tentadas mesmo assim")
	} else {
		logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	}

	return backend
}
