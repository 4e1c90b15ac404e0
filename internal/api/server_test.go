package api

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/storymaker/tracking-api/infrastructure/repository"
	"github.com/storymaker/tracking-api/internal/config"
	"github.com/storymaker/tracking-api/internal/domain"
	"github.com/storymaker/tracking-api/internal/scheduler"
	"github.com/storymaker/tracking-api/internal/usecases/authenticating"
	"github.com/storymaker/tracking-api/internal/usecases/capturing"
	"github.com/storymaker/tracking-api/internal/usecases/reporting"
	"github.com/storymaker/tracking-api/internal/usecases/tracking"
	trackingmocks "github.com/storymaker/tracking-api/internal/usecases/tracking/mocks"
	"github.com/storymaker/tracking-api/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// newDegradedServer monta a API completa sobre o backend sem banco
func newDegradedServer(t *testing.T) (*Server, *tracking.Service) {
	t.Helper()

	cfg := &config.Config{
		App:       config.App{Env: "production"},
		Server:    config.Server{Host: "localhost", Port: "0", AllowedOrigins: []string{"https://storymaker.example"}},
		Dashboard: config.Dashboard{Password: "storymaker123", CookieName: "sm_dashboard"},
		RateLimit: config.RateLimit{Rate: "100-M"},
		Digest:    config.Digest{CronSchedule: "0 8 * * *"},
		SecretKey: "test-secret",
	}

	backend := repository.NewDegradedBackend()
	tracker := tracking.NewService(backend.Clicks, nil)
	reporter := reporting.NewService(backend.Stats, backend.Leads)

	authenticator, err := authenticating.NewService(cfg)
	require.NoError(t, err)

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	require.NoError(t, err)

	server, err := New(cfg, Services{
		Backend:       backend,
		Tracker:       tracker,
		Recorder:      capturing.NewService(backend.Leads),
		Reporter:      reporter,
		Authenticator: authenticator,
		Digest:        scheduler.NewReportDigestService(reporter, cfg),
		RateLimiter:   rateLimiter,
	})
	require.NoError(t, err)

	return server, tracker
}

func serve(server *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	return rec
}

func TestServer_DegradedBackend(t *testing.T) {
	server, tracker := newDegradedServer(t)

	rec := serve(server, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(server, httptest.NewRequest(http.MethodGet, "/readiness", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), string(repository.ModeDegraded))

	rec = serve(server, httptest.NewRequest(http.MethodPost, "/v1/events/click",
		strings.NewReader(`{"button_type":"free_trial_button","metadata":{"button_url":"/signup"}}`)))
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec = serve(server, httptest.NewRequest(http.MethodPost, "/v1/leads",
		strings.NewReader(`{"email":"writer@example.com","source":"landing","privacy_consent":true}`)))
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = serve(server, httptest.NewRequest(http.MethodPost, "/v1/leads",
		strings.NewReader(`{"email":"writer.example.com","privacy_consent":true}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, tracker.Wait(ctx))
}

func TestServer_DashboardSession(t *testing.T) {
	server, _ := newDegradedServer(t)

	rec := serve(server, httptest.NewRequest(http.MethodGet, "/v1/dashboard/report", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(server, httptest.NewRequest(http.MethodPost, "/v1/dashboard/login", strings.NewReader(`{"password":"wrong"}`)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(server, httptest.NewRequest(http.MethodPost, "/v1/dashboard/login", strings.NewReader(`{"password":"storymaker123"}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	var session domain.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	require.NotEmpty(t, session.Token)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/report", nil)
	req.Header.Set("Authorization", "Bearer "+session.Token)
	rec = serve(server, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var report domain.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, domain.DashboardLoaded, report.State)
	assert.True(t, report.Degraded)
	assert.Equal(t, domain.ConversionUnmeasurable, report.Summary.ConversionRate)

	req = httptest.NewRequest(http.MethodGet, "/dashboard/export/leads", nil)
	req.AddCookie(&http.Cookie{Name: "sm_dashboard", Value: session.Token})
	rec = serve(server, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = serve(server, httptest.NewRequest(http.MethodGet, "/dashboard/export/leads", nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	rec = serve(server, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_NotFound(t *testing.T) {
	server, _ := newDegradedServer(t)

	rec := serve(server, httptest.NewRequest(http.MethodGet, "/v1/users", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "RES_001")
}

func TestServer_MethodNotAllowed(t *testing.T) {
	server, _ := newDegradedServer(t)

	rec := serve(server, httptest.NewRequest(http.MethodGet, "/v1/leads", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), "RES_004")
}

func TestServer_ShutdownWaitsForPendingClicks(t *testing.T) {
	server, tracker := newDegradedServer(t)

	for i := 0; i < 5; i++ {
		rec := serve(server, httptest.NewRequest(http.MethodPost, "/v1/events/click",
			strings.NewReader(`{"button_type":"hero_cta"}`)))
		require.Equal(t, http.StatusAccepted, rec.Code)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	require.NoError(t, server.Shutdown(ctx))
	assert.NoError(t, tracker.Wait(ctx))
}

func TestServer_ShutdownCleansUpAfterTimeout(t *testing.T) {
	server, _ := newDegradedServer(t)

	ctrl := gomock.NewController(t)
	mockTracker := trackingmocks.NewMockTracker(ctrl)
	server.services.Tracker = mockTracker

	entered := make(chan struct{})
	release := make(chan struct{})
	defer close(release)

	server.httpServer.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
	})

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go server.httpServer.Serve(listener)

	go func() {
		resp, err := http.Get("http://" + listener.Addr().String() + "/slow")
		if err == nil {
			resp.Body.Close()
		}
	}()

	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("requisição lenta não chegou ao servidor")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	mockTracker.EXPECT().Wait(gomock.Any()).Return(context.DeadlineExceeded)

	err = server.Shutdown(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNew_InvalidTrustedProxies(t *testing.T) {
	cfg := &config.Config{
		Server:    config.Server{TrustedProxies: []string{"not-a-proxy"}},
		RateLimit: config.RateLimit{Rate: "100-M"},
		SecretKey: "test-secret",
	}

	_, err := New(cfg, Services{})
	assert.ErrorContains(t, err, "TRUSTED_PROXIES")
}
