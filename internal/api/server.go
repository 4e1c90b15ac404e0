package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/storymaker/tracking-api/infrastructure/repository"
	"github.com/storymaker/tracking-api/internal/api/handler"
	"github.com/storymaker/tracking-api/internal/api/handler/router"
	"github.com/storymaker/tracking-api/internal/config"
	"github.com/storymaker/tracking-api/internal/scheduler"
	"github.com/storymaker/tracking-api/internal/usecases/authenticating"
	"github.com/storymaker/tracking-api/internal/usecases/capturing"
	"github.com/storymaker/tracking-api/internal/usecases/reporting"
	"github.com/storymaker/tracking-api/internal/usecases/tracking"
	"github.com/storymaker/tracking-api/pkg/middleware"
	"github.com/storymaker/tracking-api/pkg/utils"
)

const shutdownTimeout = 15 * time.Second

// Services reúne as dependências expostas pela API
type Services struct {
	Backend       *repository.Backend
	Tracker       tracking.Tracker
	Recorder      capturing.Recorder
	Reporter      reporting.Reporter
	Authenticator authenticating.Authenticator
	Digest        *scheduler.ReportDigestService
	RateLimiter   *middleware.RateLimiter
}

type Server struct {
	httpServer *http.Server
	services   Services
}

func New(config *config.Config, services Services) (*Server, error) {
	trustedProxies, err := utils.ParseTrustedProxies(config.Server.TrustedProxies)
	if err != nil {
		return nil, fmt.Errorf("TRUSTED_PROXIES inválido: %w", err)
	}

	views, err := handler.NewViews()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar templates do dashboard: %w", err)
	}

	cookie := handler.DashboardCookie{
		Name:   config.Dashboard.CookieName,
		Secure: !config.App.IsDevelopment(),
	}

	cronServices := handler.CronJobServices{
		ReportDigestService: services.Digest,
	}

	limit := services.RateLimiter.Limit()

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.Backend)...),
		router.WithRoutes(handler.Intake(services.Tracker, services.Recorder, limit)...),
		router.WithRoutes(handler.Authentication(services.Authenticator, limit)...),
		router.WithRoutes(handler.Dashboard(services.Reporter, services.Authenticator, views, cookie, limit)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
		router.WithNotFound(handler.NotFound()),
		router.WithMethodNotAllowed(handler.MethodNotAllowed()),
	)
	logrus.WithField("routes", len(rt.Routes())).Debug("Rotas registradas")

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.ClientIP(trustedProxies),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator, config.Dashboard.CookieName),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
		services: services,
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
			"backend": s.services.Backend.Mode(),
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
			serverErr <- err
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	case err := <-serverErr:
		s.cleanup(context.Background())
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

// Shutdown para de aceitar requisições, aguarda os cliques em background e
// só então fecha o banco. A limpeza roda mesmo se o HTTP não parar a tempo.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		logrus.WithError(err).Warn("Servidor HTTP não terminou as requisições dentro do prazo")
	} else {
		logrus.Info("Servidor HTTP desligado com sucesso")
	}

	s.cleanup(ctx)
	return err
}

func (s *Server) cleanup(ctx context.Context) {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	if err := s.services.Tracker.Wait(ctx); err != nil {
		logrus.WithError(err).Warn("Cliques pendentes abandonados no desligamento")
	}

	if err := s.services.RateLimiter.Close(); err != nil {
		logrus.WithError(err).Warn("Erro ao fechar store do rate limit")
	}

	if err := s.services.Backend.Close(); err != nil {
		logrus.WithError(err).Warn("Erro ao fechar conexão com o banco")
	}
}
