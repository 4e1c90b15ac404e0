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

type leadRepository struct {
	conn postgres.Queryer
}

func NewLeadRepository(conn postgres.Queryer) LeadRepository {
	return &leadRepository{
		conn: conn,
	}
}

// InsertLead nunca faz upsert: e-mail repetido volta como ErrDuplicate
func (r *leadRepository) InsertLead(ctx context.Context, lead *domain.Lead) error {
	query, args, err := squirrel.
		Insert(schema.LeadsTable).
		Columns("email", "source", "marketing_consent").
		Values(lead.Email, nullIfEmpty(lead.Source), lead.MarketingConsent).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return pkgerrors.Wrap(err, "erro ao construir a query")
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&lead.ID, &lead.CreatedAt); err != nil {
		return classify(err, "erro ao inserir lead")
	}

	return nil
}

func (r *leadRepository) ListLeads(ctx context.Context, filters domain.LeadFilters) ([]*domain.Lead, error) {
	queryBuilder := squirrel.
		Select("id", "email", "source", "marketing_consent", "created_at").
		From(schema.LeadsTable).
		PlaceholderFormat(squirrel.Dollar)

	if filters.Source != "" {
		// Linhas antigas guardam o consentimento como sufixo de source
		queryBuilder = queryBuilder.Where(squirrel.Eq{"source": []string{
			filters.Source,
			filters.Source + domain.LegacyMarketingYesSuffix,
			filters.Source + domain.LegacyMarketingNoSuffix,
		}})
	}

	if filters.StartDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"created_at": *filters.StartDate})
	}

	if filters.EndDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.Lt{"created_at": *filters.EndDate})
	}

	if filters.Ascending {
		queryBuilder = queryBuilder.OrderBy("created_at ASC")
	} else {
		queryBuilder = queryBuilder.OrderBy("created_at DESC")
	}

	if filters.Limit > 0 {
		queryBuilder = queryBuilder.Limit(filters.Limit)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(err, "erro ao listar leads")
	}
	defer rows.Close()

	leads := make([]*domain.Lead, 0)
	for rows.Next() {
		var (
			lead   domain.Lead
			source sql.NullString
		)

		if err := rows.Scan(&lead.ID, &lead.Email, &source, &lead.MarketingConsent, &lead.CreatedAt); err != nil {
			return nil, classify(err, "erro ao escanear lead")
		}

		lead.Source = source.String
		normalizeLegacySource(&lead)

		leads = append(leads, &lead)
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err, "erro durante a iteração de linhas")
	}

	return leads, nil
}

// normalizeLegacySource remove o sufixo _marketing_yes/_marketing_no e
// reflete o valor na flag de consentimento. Apenas leitura.
func normalizeLegacySource(lead *domain.Lead) {
	base, consent, ok := domain.SplitLegacySource(lead.Source)
	if !ok {
		return
	}

	lead.Source = base
	lead.MarketingConsent = lead.MarketingConsent || consent
}
