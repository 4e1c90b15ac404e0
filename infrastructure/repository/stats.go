package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	pkgerrors "github.com/pkg/errors"
	"github.com/storymaker/tracking-api/infrastructure/database/postgres"
	"github.com/storymaker/tracking-api/infrastructure/database/schema"
	"github.com/storymaker/tracking-api/internal/domain"
)

// statsRepository lê apenas as views agregadas, nunca as tabelas
type statsRepository struct {
	conn postgres.Queryer
}

func NewStatsRepository(conn postgres.Queryer) StatsRepository {
	return &statsRepository{
		conn: conn,
	}
}

func (r *statsRepository) ClickStats(ctx context.Context) ([]*domain.ClickStats, error) {
	query, args, err := squirrel.
		Select("button_type", "click_count", "first_click", "last_click").
		From(schema.ClickStatsView).
		OrderBy("click_count DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(err, "erro ao consultar estatísticas de cliques")
	}
	defer rows.Close()

	stats := make([]*domain.ClickStats, 0)
	for rows.Next() {
		var item domain.ClickStats
		if err := rows.Scan(&item.ButtonType, &item.ClickCount, &item.FirstClick, &item.LastClick); err != nil {
			return nil, classify(err, "erro ao escanear estatística de cliques")
		}
		stats = append(stats, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err, "erro durante a iteração de linhas")
	}

	return stats, nil
}

func (r *statsRepository) LeadStats(ctx context.Context) ([]*domain.LeadStats, error) {
	query, args, err := squirrel.
		Select("source", "lead_count", "first_lead", "last_lead").
		From(schema.LeadStatsView).
		OrderBy("lead_count DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(err, "erro ao consultar estatísticas de leads")
	}
	defer rows.Close()

	stats := make([]*domain.LeadStats, 0)
	for rows.Next() {
		var (
			item   domain.LeadStats
			source sql.NullString
		)
		if err := rows.Scan(&source, &item.LeadCount, &item.FirstLead, &item.LastLead); err != nil {
			return nil, classify(err, "erro ao escanear estatística de leads")
		}
		item.Source = source.String
		stats = append(stats, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err, "erro durante a iteração de linhas")
	}

	return stats, nil
}
