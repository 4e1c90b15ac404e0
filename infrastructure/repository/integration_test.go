//go:build integration

package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/storymaker/tracking-api/infrastructure/database/postgres"
	"github.com/storymaker/tracking-api/infrastructure/database/schema"
	"github.com/storymaker/tracking-api/internal/config"
	"github.com/storymaker/tracking-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startPostgres sobe um Postgres descartável e aplica o DDL principal
func startPostgres(t *testing.T) *Backend {
	t.Helper()

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "root",
			"POSTGRES_DB":       "storymaker",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		).WithStartupTimeout(90 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("falha ao encerrar container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	db := config.Database{
		Driver:   "postgres",
		URL:      fmt.Sprintf("%s:%s/storymaker", host, port.Port()),
		User:     "postgres",
		Password: "root",
		SSLMode:  "disable",
	}
	db.DSN, err = config.BuildDSN(db)
	require.NoError(t, err)

	conn, err := postgres.NewConnection(db)
	require.NoError(t, err)
	require.NoError(t, conn.Ping(ctx))

	_, err = conn.ExecContext(ctx, schema.Core)
	require.NoError(t, err)

	backend := NewBackend(conn)
	t.Cleanup(func() { _ = backend.Close() })

	return backend
}

func TestIntegration_DuplicateLead(t *testing.T) {
	backend := startPostgres(t)
	ctx := context.Background()

	first := &domain.Lead{Email: "writer@example.com", Source: "hero", MarketingConsent: true}
	require.NoError(t, backend.Leads.InsertLead(ctx, first))
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	err := backend.Leads.InsertLead(ctx, &domain.Lead{Email: "writer@example.com", Source: "footer"})
	assert.ErrorIs(t, err, ErrDuplicate)

	leads, err := backend.Leads.ListLeads(ctx, domain.LeadFilters{})
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.True(t, leads[0].MarketingConsent)
}

func TestIntegration_LeadStatsGroupsLegacySources(t *testing.T) {
	backend := startPostgres(t)
	ctx := context.Background()

	require.NoError(t, backend.Leads.InsertLead(ctx, &domain.Lead{Email: "new@example.com", Source: "hero", MarketingConsent: true}))
	_, err := backend.conn.ExecContext(ctx,
		"INSERT INTO sm_leads (email, source) VALUES ('old-yes@example.com', 'hero_marketing_yes'), ('old-no@example.com', 'hero_marketing_no')")
	require.NoError(t, err)

	stats, err := backend.Stats.LeadStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "hero", stats[0].Source)
	assert.EqualValues(t, 3, stats[0].LeadCount)

	leads, err := backend.Leads.ListLeads(ctx, domain.LeadFilters{Source: "hero"})
	require.NoError(t, err)
	for _, lead := range leads {
		assert.Equal(t, "hero", lead.Source)
	}
}

func TestIntegration_ClickStatsAggregation(t *testing.T) {
	backend := startPostgres(t)
	ctx := context.Background()

	const signups, trials = 5, 2
	var inserted []*domain.ClickEvent
	for i := 0; i < signups+trials; i++ {
		buttonType := "signup_button"
		if i >= signups {
			buttonType = "free_trial_button"
		}
		click := &domain.ClickEvent{
			ButtonType: buttonType,
			UserIP:     "unknown",
			Metadata:   map[string]any{"attempt": i},
		}
		require.NoError(t, backend.Clicks.InsertClick(ctx, click))
		inserted = append(inserted, click)
	}

	stats, err := backend.Stats.ClickStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	byType := map[string]*domain.ClickStats{}
	for _, s := range stats {
		byType[s.ButtonType] = s
	}

	require.Contains(t, byType, "signup_button")
	require.Contains(t, byType, "free_trial_button")
	assert.EqualValues(t, signups, byType["signup_button"].ClickCount)
	assert.EqualValues(t, trials, byType["free_trial_button"].ClickCount)

	assert.True(t, byType["signup_button"].FirstClick.Equal(inserted[0].CreatedAt))
	assert.True(t, byType["signup_button"].LastClick.Equal(inserted[signups-1].CreatedAt))
	assert.True(t, byType["free_trial_button"].LastClick.Equal(inserted[len(inserted)-1].CreatedAt))
}

func TestIntegration_MissingViewIsClassified(t *testing.T) {
	backend := startPostgres(t)
	ctx := context.Background()

	_, err := backend.conn.ExecContext(ctx, "DROP VIEW sm_leads_stats")
	require.NoError(t, err)

	_, err = backend.Stats.LeadStats(ctx)
	assert.ErrorIs(t, err, ErrSchemaMissing)
}
